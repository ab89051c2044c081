package validate

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/scenewright/sceneqc/stage"
	"github.com/scenewright/sceneqc/types"
)

// References checks the transitive dependency closure of the stage's layer
// stack: composed layers whose real path is missing on disk, and referenced
// asset paths that did not resolve. Errors referring to anonymous in-memory
// layers are dropped; such layers have no meaningful "missing file" state.
//
// The closure computation itself belongs to the document-model library; a
// failure there degrades to an empty result, not a scan abort.
func (s *Scanner) References(ctx context.Context) ([]types.ValidationError, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	closure, err := s.st.ComputeDependencies()
	if err != nil {
		s.log.Warn("dependency closure computation failed", zap.Error(err))
		return nil, nil
	}

	var errs []types.ValidationError
	for _, layer := range closure.Layers {
		path := layer.RealPath()
		if path == "" {
			continue
		}
		if _, statErr := os.Stat(path); statErr != nil {
			errs = append(errs, types.NewLayerMissing(path))
		}
	}
	for _, path := range closure.Unresolved {
		errs = append(errs, types.NewAssetUnresolved(path))
	}
	return dropAnonymous(errs), nil
}

// dropAnonymous filters out errors whose path refers to an anonymous
// in-memory layer identifier.
func dropAnonymous(errs []types.ValidationError) []types.ValidationError {
	out := errs[:0]
	for _, e := range errs {
		if strings.Contains(e.Path, stage.AnonPrefix) {
			continue
		}
		out = append(out, e)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
