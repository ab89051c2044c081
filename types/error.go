package types

import "fmt"

// ErrorKind is the coarse validation error taxonomy.
type ErrorKind string

// Error kind constants.
const (
	// KindReference flags a layer or referenced asset path missing on disk.
	KindReference ErrorKind = "reference"
	// KindAttributeCardinality flags an attribute value count that does not
	// match the count implied by its interpolation and the geometry.
	KindAttributeCardinality ErrorKind = "attribute_cardinality"
	// KindRenderConfig flags missing render settings, products, or camera.
	KindRenderConfig ErrorKind = "render_config"
	// KindMaterialBinding flags a mesh without an active bound material.
	KindMaterialBinding ErrorKind = "material_binding"
)

// Reason is the fine-grained discriminator within an ErrorKind. It selects
// the rendered message shape.
type Reason string

// Reason constants.
const (
	ReasonLayerMissing      Reason = "layer_missing"
	ReasonAssetUnresolved   Reason = "asset_unresolved"
	ReasonCountMismatch     Reason = "count_mismatch"
	ReasonNoCameraTarget    Reason = "no_camera_target"
	ReasonCameraNotFound    Reason = "camera_not_found"
	ReasonNoRenderSettings  Reason = "no_render_settings"
	ReasonNoRenderProducts  Reason = "no_render_products"
	ReasonNoMaterialBinding Reason = "no_material_binding"
)

// Kind maps a reason to its error kind.
func (r Reason) Kind() ErrorKind {
	switch r {
	case ReasonLayerMissing, ReasonAssetUnresolved:
		return KindReference
	case ReasonCountMismatch:
		return KindAttributeCardinality
	case ReasonNoMaterialBinding:
		return KindMaterialBinding
	default:
		return KindRenderConfig
	}
}

// ValidationError is one detected violation. It is an immutable value:
// created by a validator, collected in detection order, never mutated.
// All context is carried structurally; Message renders the human-readable
// form as a separate presentation step.
type ValidationError struct {
	// Kind is the coarse taxonomy bucket.
	Kind ErrorKind `json:"kind" msgpack:"kind"`
	// Reason selects the message shape within the kind.
	Reason Reason `json:"reason" msgpack:"reason"`
	// PrimPath is the scene-graph path of the offending prim, if any.
	PrimPath string `json:"prim_path,omitempty" msgpack:"prim_path,omitempty"`
	// Attr is the offending attribute name, for cardinality errors.
	Attr string `json:"attr,omitempty" msgpack:"attr,omitempty"`
	// Interp is the classified interpolation domain, for cardinality errors.
	Interp Interp `json:"interp,omitempty" msgpack:"interp,omitempty"`
	// Time is the offending time code, for cardinality errors.
	Time *TimeCode `json:"time,omitempty" msgpack:"time,omitempty"`
	// Expected is the expected value count, for cardinality errors.
	Expected *int `json:"expected,omitempty" msgpack:"expected,omitempty"`
	// Actual is the resolved value count, for cardinality errors.
	Actual *int `json:"actual,omitempty" msgpack:"actual,omitempty"`
	// Path is the filesystem or asset path, for reference errors.
	Path string `json:"path,omitempty" msgpack:"path,omitempty"`
}

// Message renders the error in the scan report message format.
func (e ValidationError) Message() string {
	switch e.Reason {
	case ReasonLayerMissing:
		return fmt.Sprintf("%s does not exist", e.Path)
	case ReasonAssetUnresolved:
		return fmt.Sprintf("REF: %s does not exist", e.Path)
	case ReasonCountMismatch:
		return fmt.Sprintf(
			"ATTR: %s Value count mismatch: frame %s expected %d '%s' values, but found %d in attribute '%s'.",
			e.PrimPath, e.Time, deref(e.Expected), e.Interp, deref(e.Actual), e.Attr)
	case ReasonNoCameraTarget:
		return fmt.Sprintf("CAM: No camera selected in render settings node %s", e.PrimPath)
	case ReasonCameraNotFound:
		return "CAM: No camera primitive found"
	case ReasonNoRenderSettings:
		return "REN: No render settings found"
	case ReasonNoRenderProducts:
		return "REN: No render products found"
	case ReasonNoMaterialBinding:
		return fmt.Sprintf("MAT: No material binding on %s", e.PrimPath)
	default:
		return fmt.Sprintf("unknown validation error on %s", e.PrimPath)
	}
}

func deref(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

// NewLayerMissing flags a composed layer whose real path is absent on disk.
func NewLayerMissing(path string) ValidationError {
	return ValidationError{Kind: KindReference, Reason: ReasonLayerMissing, Path: path}
}

// NewAssetUnresolved flags a referenced asset path that did not resolve.
func NewAssetUnresolved(path string) ValidationError {
	return ValidationError{Kind: KindReference, Reason: ReasonAssetUnresolved, Path: path}
}

// NewCountMismatch flags an attribute value count disagreeing with its
// interpolation domain at one time code.
func NewCountMismatch(primPath, attr string, interp Interp, tc TimeCode, expected, actual int) ValidationError {
	return ValidationError{
		Kind:     KindAttributeCardinality,
		Reason:   ReasonCountMismatch,
		PrimPath: primPath,
		Attr:     attr,
		Interp:   interp,
		Time:     &tc,
		Expected: &expected,
		Actual:   &actual,
	}
}

// NewNoCameraTarget flags a render-settings prim with no authored camera.
func NewNoCameraTarget(primPath string) ValidationError {
	return ValidationError{Kind: KindRenderConfig, Reason: ReasonNoCameraTarget, PrimPath: primPath}
}

// NewCameraNotFound flags a camera target that resolves to no prim.
func NewCameraNotFound(primPath, target string) ValidationError {
	return ValidationError{Kind: KindRenderConfig, Reason: ReasonCameraNotFound, PrimPath: primPath, Path: target}
}

// NewNoRenderSettings flags a stage with zero render-settings prims.
func NewNoRenderSettings() ValidationError {
	return ValidationError{Kind: KindRenderConfig, Reason: ReasonNoRenderSettings}
}

// NewNoRenderProducts flags a stage with zero render-product prims.
func NewNoRenderProducts() ValidationError {
	return ValidationError{Kind: KindRenderConfig, Reason: ReasonNoRenderProducts}
}

// NewNoMaterialBinding flags a mesh without an active bound material.
func NewNoMaterialBinding(primPath string) ValidationError {
	return ValidationError{Kind: KindMaterialBinding, Reason: ReasonNoMaterialBinding, PrimPath: primPath}
}
