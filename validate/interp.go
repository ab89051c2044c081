package validate

import (
	"github.com/scenewright/sceneqc/stage"
	"github.com/scenewright/sceneqc/types"
)

// ClassifyInterp determines the interpolation domain of attr on prim.
//
// Explicit primvar metadata wins. Without it, the prim's canonical normals
// attribute takes the prim's declared normals interpolation, and the
// velocities/accelerations attributes of point-based prims are per-point.
// Everything else is InterpNone and excluded from cardinality checking
// entirely.
func ClassifyInterp(prim stage.Prim, attr stage.Attr) types.Interp {
	if token, ok := attr.Interpolation(); ok {
		if interp, err := types.ParseInterp(token); err == nil {
			return interp
		}
		return types.InterpNone
	}

	if prim.IsPointBased() {
		name := attr.Name()
		if normals, ok := prim.Attribute(stage.AttrNormals); ok && normals.Defined() && name == normals.Name() {
			if interp, err := types.ParseInterp(prim.NormalsInterpolation()); err == nil {
				return interp
			}
			return types.InterpNone
		}
		if name == "velocities" || name == "accelerations" {
			return types.InterpVertex
		}
	}
	return types.InterpNone
}

// ExpectedCount maps an interpolation domain and a geometry metadata triple
// to the expected value count. nil means the corresponding count is not
// applicable for this prim and no expectation can be enforced; callers must
// skip the check rather than flag a false mismatch.
func ExpectedCount(interp types.Interp, g types.GeoCounts) *int {
	switch interp {
	case types.InterpConstant:
		return types.Count(1)
	case types.InterpUniform:
		return g.Faces
	case types.InterpVertex:
		return g.Points
	case types.InterpFaceVarying:
		return g.Vertices
	default:
		return nil
	}
}
