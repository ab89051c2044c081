package validate

import (
	"context"
	"testing"

	"github.com/scenewright/sceneqc/memstage"
	"github.com/scenewright/sceneqc/stage"
	"github.com/scenewright/sceneqc/types"
)

func runMaterialBindings(t *testing.T, st *memstage.Stage) []types.ValidationError {
	t.Helper()
	errs, err := NewScanner(st).MaterialBindings(context.Background())
	if err != nil {
		t.Fatalf("MaterialBindings() error = %v", err)
	}
	return errs
}

func TestMaterialBindings_DirectBinding(t *testing.T) {
	st := memstage.New("shot.usda")
	st.MustDefinePrim("/mtl/clay", "Material")
	mesh := st.MustDefinePrim("/geo/mesh", "Mesh")
	mesh.SetRelationship(stage.RelMaterialBinding, "/mtl/clay")

	if errs := runMaterialBindings(t, st); len(errs) != 0 {
		t.Errorf("MaterialBindings() produced %d errors for a bound mesh: %v", len(errs), errs)
	}
}

func TestMaterialBindings_InheritedBinding(t *testing.T) {
	st := memstage.New("shot.usda")
	st.MustDefinePrim("/mtl/clay", "Material")
	group := st.MustDefinePrim("/geo", "Xform")
	group.SetRelationship(stage.RelMaterialBinding, "/mtl/clay")
	st.MustDefinePrim("/geo/a", "Mesh")
	st.MustDefinePrim("/geo/nested/b", "Mesh")

	if errs := runMaterialBindings(t, st); len(errs) != 0 {
		t.Errorf("MaterialBindings() produced %d errors with an ancestor binding: %v", len(errs), errs)
	}
}

func TestMaterialBindings_Unbound(t *testing.T) {
	st := memstage.New("shot.usda")
	st.MustDefinePrim("/geo/mesh", "Mesh")

	errs := runMaterialBindings(t, st)
	if len(errs) != 1 {
		t.Fatalf("MaterialBindings() produced %d errors, want 1: %v", len(errs), errs)
	}
	e := errs[0]
	if e.Reason != types.ReasonNoMaterialBinding || e.PrimPath != "/geo/mesh" {
		t.Errorf("error = %+v, want no_material_binding on /geo/mesh", e)
	}
	if want := "MAT: No material binding on /geo/mesh"; e.Message() != want {
		t.Errorf("Message() = %q, want %q", e.Message(), want)
	}
}

func TestMaterialBindings_InactiveMaterialFlagged(t *testing.T) {
	st := memstage.New("shot.usda")
	mat := st.MustDefinePrim("/mtl/clay", "Material")
	mat.SetActive(false)
	mesh := st.MustDefinePrim("/geo/mesh", "Mesh")
	mesh.SetRelationship(stage.RelMaterialBinding, "/mtl/clay")

	errs := runMaterialBindings(t, st)
	if len(errs) != 1 || errs[0].Reason != types.ReasonNoMaterialBinding {
		t.Errorf("MaterialBindings() = %v, want inactive material flagged", errs)
	}
}

func TestMaterialBindings_UnresolvableTargetFlagged(t *testing.T) {
	st := memstage.New("shot.usda")
	mesh := st.MustDefinePrim("/geo/mesh", "Mesh")
	mesh.SetRelationship(stage.RelMaterialBinding, "/mtl/deleted")

	errs := runMaterialBindings(t, st)
	if len(errs) != 1 {
		t.Errorf("MaterialBindings() = %v, want dangling binding flagged", errs)
	}
}

func TestMaterialBindings_NonMeshNeverFlagged(t *testing.T) {
	st := memstage.New("shot.usda")
	st.MustDefinePrim("/geo/curves", "BasisCurves")
	st.MustDefinePrim("/geo/pts", "Points")
	st.MustDefinePrim("/cam", "Camera")
	st.MustDefinePrim("/grp", "Xform")

	if errs := runMaterialBindings(t, st); len(errs) != 0 {
		t.Errorf("MaterialBindings() flagged non-mesh prims: %v", errs)
	}
}

func TestMaterialBindings_TraversalOrder(t *testing.T) {
	st := memstage.New("shot.usda")
	st.MustDefinePrim("/geo/a", "Mesh")
	st.MustDefinePrim("/geo/b", "Mesh")

	errs := runMaterialBindings(t, st)
	if len(errs) != 2 || errs[0].PrimPath != "/geo/a" || errs[1].PrimPath != "/geo/b" {
		t.Errorf("MaterialBindings() = %v, want errors in traversal order", errs)
	}
}

func TestMaterialBindings_Cancellation(t *testing.T) {
	st := memstage.New("shot.usda")
	st.MustDefinePrim("/geo/mesh", "Mesh")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewScanner(st).MaterialBindings(ctx); err != context.Canceled {
		t.Errorf("MaterialBindings() error = %v, want context.Canceled", err)
	}
}
