// Package memstage is an in-memory implementation of the stage interfaces.
// It backs the CLI's YAML scene documents and the validator test fixtures.
// Host integrations that sit on a real scene-description library supply
// their own stage.Stage adapter instead.
package memstage

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scenewright/sceneqc/stage"
	"github.com/scenewright/sceneqc/types"
)

// primType is the closed capability table for prim types. The validators
// consume these as boolean predicates only.
type primType struct {
	geometry       bool
	pointBased     bool
	mesh           bool
	imageable      bool
	renderSettings bool
	renderProduct  bool
}

var primTypes = map[string]primType{
	"Mesh":           {geometry: true, pointBased: true, mesh: true, imageable: true},
	"Points":         {geometry: true, pointBased: true, imageable: true},
	"BasisCurves":    {geometry: true, pointBased: true, imageable: true},
	"Sphere":         {geometry: true, imageable: true},
	"Xform":          {imageable: true},
	"Scope":          {imageable: true},
	"Camera":         {imageable: true},
	"RenderSettings": {renderSettings: true},
	"RenderProduct":  {renderProduct: true},
	"Material":       {},
	"Shader":         {},
	"":               {}, // typeless (auto-created ancestors)
}

// KnownPrimType reports whether typ is in the capability table.
func KnownPrimType(typ string) bool {
	_, ok := primTypes[typ]
	return ok
}

// Stage is an in-memory composed stage.
type Stage struct {
	identifier string
	root       *Prim
	byPath     map[string]*Prim

	layers     []Layer
	resolved   []string
	unresolved []string
}

// New creates an empty stage with a pseudo-root prim at "/".
func New(identifier string) *Stage {
	s := &Stage{
		identifier: identifier,
		byPath:     map[string]*Prim{},
	}
	s.root = &Prim{stage: s, path: "/", active: true}
	s.byPath["/"] = s.root
	return s
}

// Identifier implements stage.Stage.
func (s *Stage) Identifier() string { return s.identifier }

// Root implements stage.Stage.
func (s *Stage) Root() stage.Prim { return s.root }

// PrimAtPath implements stage.Stage.
func (s *Stage) PrimAtPath(path string) (stage.Prim, bool) {
	p, ok := s.byPath[path]
	if !ok {
		return nil, false
	}
	return p, true
}

// AddLayer records a layer in the dependency closure. An empty realPath
// with an "anon:"-prefixed identifier models an in-memory layer.
func (s *Stage) AddLayer(identifier, realPath string) {
	s.layers = append(s.layers, Layer{identifier: identifier, realPath: realPath})
}

// AddResolvedReference records an asset reference that resolved on disk.
func (s *Stage) AddResolvedReference(path string) {
	s.resolved = append(s.resolved, path)
}

// AddUnresolvedReference records an asset reference that did not resolve.
func (s *Stage) AddUnresolvedReference(path string) {
	s.unresolved = append(s.unresolved, path)
}

// ComputeDependencies implements stage.Stage. The in-memory closure is
// whatever the document declared; there is no recursive composition here.
func (s *Stage) ComputeDependencies() (stage.Closure, error) {
	c := stage.Closure{
		Resolved:   append([]string(nil), s.resolved...),
		Unresolved: append([]string(nil), s.unresolved...),
	}
	for _, l := range s.layers {
		c.Layers = append(c.Layers, l)
	}
	return c, nil
}

// DefinePrim creates a prim at path with the given type, creating typeless
// ancestor prims as needed. Defining an existing path re-types it.
func (s *Stage) DefinePrim(path, typ string) (*Prim, error) {
	if !strings.HasPrefix(path, "/") || path == "/" {
		return nil, fmt.Errorf("invalid prim path %q", path)
	}
	if !KnownPrimType(typ) {
		return nil, fmt.Errorf("unknown prim type %q at %s", typ, path)
	}
	if p, ok := s.byPath[path]; ok {
		p.typ = typ
		return p, nil
	}

	parentPath := "/"
	if i := strings.LastIndex(path, "/"); i > 0 {
		parentPath = path[:i]
	}
	parent, ok := s.byPath[parentPath]
	if !ok {
		var err error
		parent, err = s.DefinePrim(parentPath, "")
		if err != nil {
			return nil, err
		}
	}

	p := &Prim{stage: s, path: path, typ: typ, active: true, parent: parent}
	parent.children = append(parent.children, p)
	s.byPath[path] = p
	return p, nil
}

// MustDefinePrim is DefinePrim for fixtures where the path is known good.
func (s *Stage) MustDefinePrim(path, typ string) *Prim {
	p, err := s.DefinePrim(path, typ)
	if err != nil {
		panic(err)
	}
	return p
}

// Layer is one declared layer of an in-memory stage.
type Layer struct {
	identifier string
	realPath   string
}

// Identifier implements stage.Layer.
func (l Layer) Identifier() string { return l.identifier }

// RealPath implements stage.Layer.
func (l Layer) RealPath() string { return l.realPath }

// Anonymous implements stage.Layer.
func (l Layer) Anonymous() bool { return strings.HasPrefix(l.identifier, stage.AnonPrefix) }

// Prim is an in-memory prim.
type Prim struct {
	stage  *Stage
	path   string
	typ    string
	active bool
	parent *Prim

	children []*Prim
	attrs    []*Attr
	rels     map[string][]string

	normalsInterp string
}

// Path implements stage.Prim.
func (p *Prim) Path() string { return p.path }

// Type returns the declared prim type name.
func (p *Prim) Type() string { return p.typ }

// Active implements stage.Prim.
func (p *Prim) Active() bool { return p.active }

// SetActive marks the prim active or inactive.
func (p *Prim) SetActive(active bool) { p.active = active }

func (p *Prim) caps() primType { return primTypes[p.typ] }

// IsGeometry implements stage.Prim.
func (p *Prim) IsGeometry() bool { return p.caps().geometry }

// IsPointBased implements stage.Prim.
func (p *Prim) IsPointBased() bool { return p.caps().pointBased }

// IsMesh implements stage.Prim.
func (p *Prim) IsMesh() bool { return p.caps().mesh }

// IsImageable implements stage.Prim.
func (p *Prim) IsImageable() bool { return p.caps().imageable }

// IsRenderSettings implements stage.Prim.
func (p *Prim) IsRenderSettings() bool { return p.caps().renderSettings }

// IsRenderProduct implements stage.Prim.
func (p *Prim) IsRenderProduct() bool { return p.caps().renderProduct }

// Children implements stage.Prim.
func (p *Prim) Children() []stage.Prim {
	out := make([]stage.Prim, len(p.children))
	for i, c := range p.children {
		out[i] = c
	}
	return out
}

// Attributes implements stage.Prim.
func (p *Prim) Attributes() []stage.Attr {
	out := make([]stage.Attr, len(p.attrs))
	for i, a := range p.attrs {
		out[i] = a
	}
	return out
}

// Attribute implements stage.Prim.
func (p *Prim) Attribute(name string) (stage.Attr, bool) {
	for _, a := range p.attrs {
		if a.name == name {
			return a, true
		}
	}
	return nil, false
}

// CreateAttribute adds an attribute in declaration order and returns it
// for sample authoring. Creating an existing name returns the existing
// attribute.
func (p *Prim) CreateAttribute(name string) *Attr {
	for _, a := range p.attrs {
		if a.name == name {
			return a
		}
	}
	a := &Attr{name: name}
	p.attrs = append(p.attrs, a)
	return a
}

// SetRelationship authors a relationship's target paths.
func (p *Prim) SetRelationship(name string, targets ...string) {
	if p.rels == nil {
		p.rels = map[string][]string{}
	}
	p.rels[name] = append([]string(nil), targets...)
}

// RelationshipTargets implements stage.Prim.
func (p *Prim) RelationshipTargets(name string) []string {
	return p.rels[name]
}

// BoundMaterial implements stage.Prim using nearest-binding resolution:
// a direct binding on the prim wins, else the closest ancestor binding
// applies. A binding whose target does not resolve yields no material.
func (p *Prim) BoundMaterial() (stage.Prim, bool) {
	for cur := p; cur != nil; cur = cur.parent {
		targets, ok := cur.rels[stage.RelMaterialBinding]
		if !ok || len(targets) == 0 {
			continue
		}
		mat, found := p.stage.byPath[targets[0]]
		if !found {
			return nil, false
		}
		return mat, true
	}
	return nil, false
}

// SetNormalsInterpolation sets the prim's declared normals interpolation.
func (p *Prim) SetNormalsInterpolation(interp string) { p.normalsInterp = interp }

// NormalsInterpolation implements stage.Prim.
func (p *Prim) NormalsInterpolation() string {
	if p.normalsInterp == "" {
		return "vertex"
	}
	return p.normalsInterp
}

// Attr is an in-memory attribute with an optional default value and
// time samples kept in ascending order.
type Attr struct {
	name    string
	interp  string
	def     *stage.Value
	samples []sample
}

type sample struct {
	t float64
	v stage.Value
}

// Name implements stage.Attr.
func (a *Attr) Name() string { return a.name }

// Defined implements stage.Attr. An attribute is defined once it carries
// any authored opinion.
func (a *Attr) Defined() bool { return a.def != nil || len(a.samples) > 0 }

// SetInterpolation authors primvar-style interpolation metadata.
func (a *Attr) SetInterpolation(interp string) *Attr {
	a.interp = interp
	return a
}

// Interpolation implements stage.Attr.
func (a *Attr) Interpolation() (string, bool) {
	return a.interp, a.interp != ""
}

// SetDefault authors the non-animated default value.
func (a *Attr) SetDefault(v stage.Value) *Attr {
	a.def = &v
	return a
}

// SetSample authors one time sample, replacing any sample at the same time.
func (a *Attr) SetSample(t float64, v stage.Value) *Attr {
	for i := range a.samples {
		if a.samples[i].t == t {
			a.samples[i].v = v
			return a
		}
	}
	a.samples = append(a.samples, sample{t: t, v: v})
	sort.Slice(a.samples, func(i, j int) bool { return a.samples[i].t < a.samples[j].t })
	return a
}

// TimeSamples implements stage.Attr.
func (a *Attr) TimeSamples() []float64 {
	if len(a.samples) == 0 {
		return nil
	}
	out := make([]float64, len(a.samples))
	for i, s := range a.samples {
		out[i] = s.t
	}
	return out
}

// Get implements stage.Attr. Sample times resolve exactly; anything else
// falls back to the default value when one is authored.
func (a *Attr) Get(tc types.TimeCode) (stage.Value, bool) {
	if !tc.Default {
		for _, s := range a.samples {
			if s.t == tc.Frame {
				return s.v, true
			}
		}
	}
	if a.def != nil {
		return *a.def, true
	}
	return stage.Value{}, false
}

// Elems returns an opaque value with n elements, for attributes whose
// element contents are irrelevant to validation.
func Elems(n int) stage.Value { return stage.Value{Count: n} }

// IntElems returns an integer-typed value, used for topology attributes.
func IntElems(ints ...int) stage.Value {
	return stage.Value{Count: len(ints), Ints: append([]int(nil), ints...)}
}
