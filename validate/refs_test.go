package validate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/scenewright/sceneqc/memstage"
	"github.com/scenewright/sceneqc/types"
)

// writeLayerFile creates an empty layer file on disk and returns its path.
func writeLayerFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#usda 1.0\n"), 0o644); err != nil {
		t.Fatalf("writing layer fixture: %v", err)
	}
	return path
}

func TestReferences_AllPresent(t *testing.T) {
	dir := t.TempDir()
	root := writeLayerFile(t, dir, "shot.usda")
	sub := writeLayerFile(t, dir, "layout.usda")

	st := memstage.New(root)
	st.AddLayer(root, root)
	st.AddLayer(sub, sub)
	st.AddResolvedReference(writeLayerFile(t, dir, "asset.usda"))

	errs, err := NewScanner(st).References(context.Background())
	if err != nil {
		t.Fatalf("References() error = %v", err)
	}
	if len(errs) != 0 {
		t.Errorf("References() produced %d errors for a complete closure: %v", len(errs), errs)
	}
}

func TestReferences_MissingLayer(t *testing.T) {
	dir := t.TempDir()
	root := writeLayerFile(t, dir, "shot.usda")
	missing := filepath.Join(dir, "deleted.usda")

	st := memstage.New(root)
	st.AddLayer(root, root)
	st.AddLayer(missing, missing)

	errs, err := NewScanner(st).References(context.Background())
	if err != nil {
		t.Fatalf("References() error = %v", err)
	}
	if len(errs) != 1 {
		t.Fatalf("References() produced %d errors, want 1: %v", len(errs), errs)
	}
	e := errs[0]
	if e.Reason != types.ReasonLayerMissing || e.Path != missing {
		t.Errorf("error = %+v, want layer_missing at %s", e, missing)
	}
	if want := missing + " does not exist"; e.Message() != want {
		t.Errorf("Message() = %q, want %q", e.Message(), want)
	}
}

func TestReferences_UnresolvedAsset(t *testing.T) {
	st := memstage.New("shot.usda")
	st.AddUnresolvedReference("/assets/prop/chair.usda")

	errs, err := NewScanner(st).References(context.Background())
	if err != nil {
		t.Fatalf("References() error = %v", err)
	}
	if len(errs) != 1 {
		t.Fatalf("References() produced %d errors, want 1: %v", len(errs), errs)
	}
	e := errs[0]
	if e.Reason != types.ReasonAssetUnresolved {
		t.Errorf("Reason = %q, want %q", e.Reason, types.ReasonAssetUnresolved)
	}
	if want := "REF: /assets/prop/chair.usda does not exist"; e.Message() != want {
		t.Errorf("Message() = %q, want %q", e.Message(), want)
	}
}

func TestReferences_AnonymousLayersDropped(t *testing.T) {
	st := memstage.New("anon:0x7f:session.usda")
	// Anonymous layers have no real path and no on-disk identity.
	st.AddLayer("anon:0x7f:session.usda", "")
	st.AddUnresolvedReference("anon:0x80:edit.usda")

	errs, err := NewScanner(st).References(context.Background())
	if err != nil {
		t.Fatalf("References() error = %v", err)
	}
	if errs != nil {
		t.Errorf("References() = %v, want nil after anonymous filtering", errs)
	}
}

func TestReferences_MixedAnonymousAndReal(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "gone.usda")

	st := memstage.New("shot.usda")
	st.AddLayer(missing, missing)
	st.AddUnresolvedReference("anon:0x80:edit.usda")

	errs, err := NewScanner(st).References(context.Background())
	if err != nil {
		t.Fatalf("References() error = %v", err)
	}
	if len(errs) != 1 || errs[0].Path != missing {
		t.Errorf("References() = %v, want only the real missing layer", errs)
	}
}

func TestReferences_Cancellation(t *testing.T) {
	st := memstage.New("shot.usda")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewScanner(st).References(ctx); err != context.Canceled {
		t.Errorf("References() error = %v, want context.Canceled", err)
	}
}
