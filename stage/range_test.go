package stage

import (
	"reflect"
	"testing"
)

// fakePrim is a minimal tree node for traversal tests. Only Path and
// Children matter here.
type fakePrim struct {
	path     string
	children []Prim
}

func (p *fakePrim) Path() string                        { return p.path }
func (p *fakePrim) Active() bool                        { return true }
func (p *fakePrim) IsGeometry() bool                    { return false }
func (p *fakePrim) IsPointBased() bool                  { return false }
func (p *fakePrim) IsMesh() bool                        { return false }
func (p *fakePrim) IsImageable() bool                   { return false }
func (p *fakePrim) IsRenderSettings() bool              { return false }
func (p *fakePrim) IsRenderProduct() bool               { return false }
func (p *fakePrim) Children() []Prim                    { return p.children }
func (p *fakePrim) Attributes() []Attr                  { return nil }
func (p *fakePrim) Attribute(string) (Attr, bool)       { return nil, false }
func (p *fakePrim) RelationshipTargets(string) []string { return nil }
func (p *fakePrim) BoundMaterial() (Prim, bool)         { return nil, false }
func (p *fakePrim) NormalsInterpolation() string        { return "vertex" }

func node(path string, children ...Prim) *fakePrim {
	return &fakePrim{path: path, children: children}
}

func visits(root Prim) []string {
	var out []string
	it := NewPrimRange(root)
	for it.Next() {
		suffix := ""
		if it.PostVisit() {
			suffix = ":post"
		}
		out = append(out, it.Prim().Path()+suffix)
	}
	return out
}

func TestPrimRange_DepthFirstWithPostVisits(t *testing.T) {
	root := node("/",
		node("/a",
			node("/a/x"),
			node("/a/y")),
		node("/b"))

	want := []string{
		"/",
		"/a",
		"/a/x", "/a/x:post",
		"/a/y", "/a/y:post",
		"/a:post",
		"/b", "/b:post",
		"/:post",
	}
	if got := visits(root); !reflect.DeepEqual(got, want) {
		t.Errorf("traversal = %v, want %v", got, want)
	}
}

func TestPrimRange_SingleNode(t *testing.T) {
	want := []string{"/", "/:post"}
	if got := visits(node("/")); !reflect.DeepEqual(got, want) {
		t.Errorf("traversal = %v, want %v", got, want)
	}
}

func TestPrimRange_NilRoot(t *testing.T) {
	it := NewPrimRange(nil)
	if it.Next() {
		t.Error("Next() = true for a nil root")
	}
	if it.Prim() != nil {
		t.Errorf("Prim() = %v, want nil after exhaustion", it.Prim())
	}
}

func TestPrimRange_ExhaustionIsSticky(t *testing.T) {
	it := NewPrimRange(node("/"))
	for it.Next() {
	}
	if it.Next() {
		t.Error("Next() = true after exhaustion")
	}
}
