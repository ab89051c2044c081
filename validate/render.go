package validate

import (
	"context"

	"github.com/scenewright/sceneqc/stage"
	"github.com/scenewright/sceneqc/types"
)

// RenderConfig verifies the stage is render-submittable: at least one
// render-settings prim and one render-product prim exist, and every
// render-settings prim targets a camera that resolves to an existing prim.
//
// The two global presence checks are independent of the per-settings
// camera checks.
func (s *Scanner) RenderConfig(ctx context.Context) ([]types.ValidationError, error) {
	var errs []types.ValidationError
	settingsFound := 0
	productsFound := 0

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

		if prim.IsRenderSettings() {
			settingsFound++
			errs = append(errs, s.checkCamera(prim)...)
		}
		if prim.IsRenderProduct() {
			productsFound++
		}
	}

	if settingsFound == 0 {
		errs = append(errs, types.NewNoRenderSettings())
	}
	if productsFound == 0 {
		errs = append(errs, types.NewNoRenderProducts())
	}
	return errs, nil
}

// checkCamera validates the camera relationship of one render-settings prim.
func (s *Scanner) checkCamera(prim stage.Prim) []types.ValidationError {
	targets := prim.RelationshipTargets(stage.RelCamera)
	if len(targets) == 0 {
		return []types.ValidationError{types.NewNoCameraTarget(prim.Path())}
	}
	if _, ok := s.st.PrimAtPath(targets[0]); !ok {
		return []types.ValidationError{types.NewCameraNotFound(prim.Path(), targets[0])}
	}
	return nil
}
