// Package stage defines the narrow document-model interface the validation
// core consumes. The scene-graph library itself (composition, time-sample
// resolution, dependency closure) lives behind this seam: host integrations
// supply an adapter, tests and the CLI use the in-memory memstage
// implementation.
//
// The core only reads through these interfaces and never mutates the graph,
// so implementations may be shared across validators without locking.
package stage

import "github.com/scenewright/sceneqc/types"

// Stage is a composed scene-description document.
type Stage interface {
	// Root returns the pseudo-root prim of the composed prim tree.
	Root() Prim

	// PrimAtPath resolves a scene-graph path to a prim.
	PrimAtPath(path string) (Prim, bool)

	// Identifier returns the root document identifier.
	Identifier() string

	// ComputeDependencies computes the transitive dependency closure over
	// the root layer stack: every layer reachable by composition, plus the
	// referenced asset paths partitioned into resolved and unresolved.
	ComputeDependencies() (Closure, error)
}

// Closure is the result of a transitive dependency-closure computation.
type Closure struct {
	// Layers is every layer reachable by composition from the root.
	Layers []Layer
	// Resolved is the referenced asset paths that resolved on disk.
	Resolved []string
	// Unresolved is the referenced asset paths that did not resolve.
	Unresolved []string
}

// Layer is one composable document unit in the layer stack.
type Layer interface {
	// Identifier returns the layer identifier. Anonymous layers carry the
	// "anon:" prefix.
	Identifier() string
	// RealPath returns the layer's filesystem path, empty for anonymous
	// in-memory layers.
	RealPath() string
	// Anonymous reports whether the layer is in-memory only.
	Anonymous() bool
}

// Prim is one node in the hierarchical scene graph. Type membership is
// exposed as closed capability predicates; the core never inspects
// concrete types.
type Prim interface {
	// Path returns the scene-graph path of the prim.
	Path() string

	// Active reports whether the prim is active in the composed stage.
	Active() bool

	// IsGeometry reports whether the prim is geometry-bearing (a gprim).
	IsGeometry() bool
	// IsPointBased reports whether the prim carries a points attribute.
	IsPointBased() bool
	// IsMesh reports whether the prim is mesh-like (faceted topology).
	IsMesh() bool
	// IsImageable reports whether the prim can appear in a rendered image.
	IsImageable() bool
	// IsRenderSettings reports whether the prim is a render-settings prim.
	IsRenderSettings() bool
	// IsRenderProduct reports whether the prim is a render-product prim.
	IsRenderProduct() bool

	// Children returns the child prims in declaration order.
	Children() []Prim

	// Attributes returns the prim's attributes in declaration order.
	Attributes() []Attr
	// Attribute looks up a single attribute by name.
	Attribute(name string) (Attr, bool)

	// RelationshipTargets returns the authored target paths of a named
	// relationship, nil when the relationship is not authored.
	RelationshipTargets(name string) []string

	// BoundMaterial resolves the prim's bound material via the
	// binding-strength composition algorithm. ok is false when no material
	// is bound.
	BoundMaterial() (mat Prim, ok bool)

	// NormalsInterpolation returns the prim's declared normals
	// interpolation. Only meaningful for point-based prims.
	NormalsInterpolation() string
}

// Attr is one typed attribute on a prim.
type Attr interface {
	// Name returns the attribute name.
	Name() string

	// Defined reports whether the attribute carries an authored definition.
	Defined() bool

	// Interpolation returns explicit primvar-style interpolation metadata.
	// ok is false when the attribute carries no such metadata.
	Interpolation() (interp string, ok bool)

	// TimeSamples returns the authored sample times in ascending order,
	// nil for non-animated attributes.
	TimeSamples() []float64

	// Get resolves the attribute value at a time code. ok is false when no
	// authored opinion resolves at that time.
	Get(tc types.TimeCode) (Value, bool)
}

// Value is a resolved attribute value. Validation needs only cardinality
// and, for integer topology attributes, the raw elements.
type Value struct {
	// Count is the number of elements in the resolved value.
	Count int
	// Ints holds the elements of integer-typed values (face vertex counts),
	// nil otherwise.
	Ints []int
}

// Canonical attribute and relationship names the validators consult.
const (
	// AttrPoints is the canonical point-positions attribute.
	AttrPoints = "points"
	// AttrNormals is the canonical normals attribute.
	AttrNormals = "normals"
	// AttrFaceVertexCounts is the canonical per-face vertex-count topology.
	AttrFaceVertexCounts = "faceVertexCounts"
	// RelCamera is the camera relationship on render-settings prims.
	RelCamera = "camera"
	// RelMaterialBinding is the direct material binding relationship.
	RelMaterialBinding = "material:binding"
	// AnonPrefix marks anonymous in-memory layer identifiers.
	AnonPrefix = "anon:"
)
