package validate

import (
	"context"

	"go.uber.org/zap"

	"github.com/scenewright/sceneqc/stage"
	"github.com/scenewright/sceneqc/types"
)

// Attributes checks every attribute of every mesh-like prim against the
// value count implied by its interpolation domain and the geometry at each
// authored time sample (or the default time when none are authored).
//
// Errors are appended in traversal order, then attribute-declaration order,
// then time-sample order, so the sequence is deterministic for a fixed
// graph. Cancellation is checked between prims; on cancellation the errors
// collected so far are returned alongside ctx.Err().
func (s *Scanner) Attributes(ctx context.Context) ([]types.ValidationError, error) {
	var errs []types.ValidationError

	it := stage.NewPrimRange(s.st.Root())
	for it.Next() {
		if it.PostVisit() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return errs, err
		}
		prim := it.Prim()
		s.metrics.PrimVisited()
		if !prim.IsMesh() {
			continue
		}
		for _, attr := range prim.Attributes() {
			errs = append(errs, s.checkAttr(prim, attr)...)
		}
	}
	return errs, nil
}

// checkAttr evaluates one attribute across its time samples. No panic
// escapes a single attribute's evaluation: any anomaly degrades to skip,
// never aborts the scan.
func (s *Scanner) checkAttr(prim stage.Prim, attr stage.Attr) (out []types.ValidationError) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			s.metrics.AttrSkipped()
			s.log.Debug("attribute evaluation failed, skipped",
				zap.String("prim", prim.Path()),
				zap.String("attr", attr.Name()),
				zap.Any("cause", r))
		}
	}()

	interp := ClassifyInterp(prim, attr)
	if interp == types.InterpNone {
		s.metrics.AttrSkipped()
		return nil
	}
	s.metrics.AttrChecked()

	for _, tc := range attrTimes(attr) {
		counts, geometric := GeoCountsAt(prim, tc)
		if !geometric {
			s.log.Debug("not a geometry prim", zap.String("prim", prim.Path()))
		}

		value, resolved := attr.Get(tc)
		if !resolved {
			// No authored opinion at this time; nothing to check.
			continue
		}
		actual := value.Count

		if interp == types.InterpConstant {
			if actual != 1 {
				out = append(out, types.NewCountMismatch(prim.Path(), attr.Name(), interp, tc, 1, actual))
			}
			continue
		}

		expected := ExpectedCount(interp, counts)
		if expected == nil || *expected == 0 {
			// Not computable for this prim, or genuinely zero geometry
			// elements of this kind: no expectation to enforce.
			continue
		}
		if *expected != actual {
			out = append(out, types.NewCountMismatch(prim.Path(), attr.Name(), interp, tc, *expected, actual))
		}
	}
	return out
}

// attrTimes enumerates the attribute's sample times, substituting the
// synthetic default time for non-animated attributes.
func attrTimes(attr stage.Attr) []types.TimeCode {
	samples := attr.TimeSamples()
	if len(samples) == 0 {
		return []types.TimeCode{types.DefaultTime()}
	}
	out := make([]types.TimeCode, len(samples))
	for i, t := range samples {
		out[i] = types.Time(t)
	}
	return out
}
