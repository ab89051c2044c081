package types

import (
	"fmt"
	"strconv"
)

// Interp classifies how many values an attribute should carry relative to
// the geometry element counts of its prim.
type Interp string

// Interpolation domain constants. The zero value means "unclassified":
// such attributes are excluded from cardinality checking entirely.
const (
	InterpNone        Interp = ""
	InterpConstant    Interp = "constant"
	InterpUniform     Interp = "uniform"
	InterpVertex      Interp = "vertex"
	InterpFaceVarying Interp = "faceVarying"
)

// ParseInterp parses an interpolation token as authored in a document.
// Unknown tokens are an error rather than silently unclassified, so that
// loaders surface typos instead of masking checks.
func ParseInterp(s string) (Interp, error) {
	switch Interp(s) {
	case InterpConstant, InterpUniform, InterpVertex, InterpFaceVarying:
		return Interp(s), nil
	case InterpNone:
		return InterpNone, nil
	default:
		return InterpNone, fmt.Errorf("unknown interpolation %q", s)
	}
}

// TimeCode identifies a point on the document's time axis. The default
// time code selects the non-animated value of an attribute.
// Fields are exported for report serialization.
type TimeCode struct {
	// Frame is the frame value. Meaningless when Default is true.
	Frame float64 `json:"frame" msgpack:"frame"`
	// Default marks the synthetic non-animated time code.
	Default bool `json:"default,omitempty" msgpack:"default,omitempty"`
}

// DefaultTime returns the synthetic "default" time code used for
// attributes with no authored time samples.
func DefaultTime() TimeCode {
	return TimeCode{Default: true}
}

// Time returns the time code for frame t.
func Time(t float64) TimeCode {
	return TimeCode{Frame: t}
}

// String renders the time code the way scan messages cite it.
func (tc TimeCode) String() string {
	if tc.Default {
		return "default"
	}
	return strconv.FormatFloat(tc.Frame, 'g', -1, 64)
}

// GeoCounts is the geometry metadata triple for one prim at one time code.
// A nil field means that count is not applicable for the prim type, which
// callers must treat as "no expectation", never as zero.
type GeoCounts struct {
	// Points is the number of position values, when the prim is point-based.
	Points *int
	// Faces is the number of faces, when the prim is mesh-like.
	Faces *int
	// Vertices is the summed face-vertex count, when the prim is mesh-like.
	Vertices *int
}

// Count is a convenience constructor for optional count fields.
func Count(n int) *int { return &n }
