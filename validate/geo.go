// Package validate implements the scene quality-control validators.
//
// Every validator is total over its input graph: per-item anomalies degrade
// to "no error produced for this item", never to an aborted scan. The only
// externally visible failure mode besides the aggregated error sequence is
// context cancellation, checked between prims.
package validate

import (
	"github.com/scenewright/sceneqc/stage"
	"github.com/scenewright/sceneqc/types"
)

// GeoCountsAt extracts the geometry metadata triple for prim at one time
// code. ok is false when the prim is not geometry-bearing at all, in which
// case no count is applicable; callers log that as a diagnostic, never as
// an error.
//
// Point count is 0 when the points attribute is defined but resolves empty
// at that time. Face and vertex counts are present only for mesh-like prims
// whose topology resolves at that time.
//
// Pure function of (prim, time); safe to call repeatedly and concurrently.
func GeoCountsAt(prim stage.Prim, tc types.TimeCode) (types.GeoCounts, bool) {
	if !prim.IsGeometry() {
		return types.GeoCounts{}, false
	}

	var g types.GeoCounts
	if prim.IsPointBased() {
		if attr, ok := prim.Attribute(stage.AttrPoints); ok && attr.Defined() {
			n := 0
			if v, resolved := attr.Get(tc); resolved {
				n = v.Count
			}
			g.Points = types.Count(n)
		}
	}

	if prim.IsMesh() {
		if attr, ok := prim.Attribute(stage.AttrFaceVertexCounts); ok && attr.Defined() {
			if v, resolved := attr.Get(tc); resolved && v.Ints != nil {
				sum := 0
				for _, fv := range v.Ints {
					sum += fv
				}
				g.Faces = types.Count(v.Count)
				g.Vertices = types.Count(sum)
			}
		}
	}
	return g, true
}
