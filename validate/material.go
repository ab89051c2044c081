package validate

import (
	"context"

	"github.com/scenewright/sceneqc/stage"
	"github.com/scenewright/sceneqc/types"
)

// MaterialBindings verifies every mesh-like prim resolves to an active
// bound material via the stage's binding-strength composition. Non-mesh
// imageable prims are visited but never flagged.
func (s *Scanner) MaterialBindings(ctx context.Context) ([]types.ValidationError, error) {
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
		if !prim.IsImageable() {
			continue
		}

		mat, bound := prim.BoundMaterial()
		if !prim.IsMesh() {
			continue
		}
		if !bound || !mat.Active() {
			errs = append(errs, types.NewNoMaterialBinding(prim.Path()))
		}
	}
	return errs, nil
}
