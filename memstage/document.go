package memstage

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/scenewright/sceneqc/stage"
	"github.com/scenewright/sceneqc/types"
)

// Document is the YAML scene-document schema the CLI scans when it is not
// embedded in a host application. It is a flattened description of a
// composed stage: prim declarations plus the declared dependency closure.
type Document struct {
	// Stage is the root document identifier.
	Stage string `yaml:"stage"`
	// Layers is the composed layer stack.
	Layers []LayerDoc `yaml:"layers"`
	// References is the declared asset reference closure.
	References ReferencesDoc `yaml:"references"`
	// Prims is the prim tree in declaration order.
	Prims []PrimDoc `yaml:"prims"`
}

// LayerDoc declares one composed layer.
type LayerDoc struct {
	Identifier string `yaml:"identifier"`
	// Path is the layer's filesystem path, empty for anonymous layers.
	Path string `yaml:"path"`
}

// ReferencesDoc partitions referenced asset paths by resolution outcome.
type ReferencesDoc struct {
	Resolved   []string `yaml:"resolved"`
	Unresolved []string `yaml:"unresolved"`
}

// PrimDoc declares one prim.
type PrimDoc struct {
	Path string `yaml:"path"`
	Type string `yaml:"type"`
	// Active defaults to true when omitted.
	Active               *bool               `yaml:"active"`
	NormalsInterpolation string              `yaml:"normals_interpolation"`
	Relationships        map[string][]string `yaml:"relationships"`
	Attributes           []AttrDoc           `yaml:"attributes"`
}

// AttrDoc declares one attribute. Sample keys are frame numbers.
type AttrDoc struct {
	Name          string              `yaml:"name"`
	Interpolation string              `yaml:"interpolation"`
	Default       []any               `yaml:"default"`
	Samples       map[float64][]any   `yaml:"samples"`
}

// LoadFile reads and builds a stage from a YAML scene document on disk.
func LoadFile(path string) (*Stage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("scene document not found: %s", path)
		}
		return nil, fmt.Errorf("cannot read scene document %q: %w", path, err)
	}
	return Load(data)
}

// Load builds a stage from YAML scene-document bytes.
func Load(data []byte) (*Stage, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid scene document YAML: %w", err)
	}
	return Build(&doc)
}

// Build constructs an in-memory stage from a parsed document.
func Build(doc *Document) (*Stage, error) {
	st := New(doc.Stage)

	for _, l := range doc.Layers {
		st.AddLayer(l.Identifier, l.Path)
	}
	for _, p := range doc.References.Resolved {
		st.AddResolvedReference(p)
	}
	for _, p := range doc.References.Unresolved {
		st.AddUnresolvedReference(p)
	}

	for _, pd := range doc.Prims {
		prim, err := st.DefinePrim(pd.Path, pd.Type)
		if err != nil {
			return nil, err
		}
		if pd.Active != nil {
			prim.SetActive(*pd.Active)
		}
		if pd.NormalsInterpolation != "" {
			if _, err := types.ParseInterp(pd.NormalsInterpolation); err != nil {
				return nil, fmt.Errorf("prim %s: %w", pd.Path, err)
			}
			prim.SetNormalsInterpolation(pd.NormalsInterpolation)
		}
		for name, targets := range pd.Relationships {
			prim.SetRelationship(name, targets...)
		}
		for _, ad := range pd.Attributes {
			if err := buildAttr(prim, ad); err != nil {
				return nil, fmt.Errorf("prim %s: %w", pd.Path, err)
			}
		}
	}
	return st, nil
}

func buildAttr(prim *Prim, ad AttrDoc) error {
	if ad.Name == "" {
		return fmt.Errorf("attribute with empty name")
	}
	attr := prim.CreateAttribute(ad.Name)
	if ad.Interpolation != "" {
		if _, err := types.ParseInterp(ad.Interpolation); err != nil {
			return fmt.Errorf("attribute %s: %w", ad.Name, err)
		}
		attr.SetInterpolation(ad.Interpolation)
	}
	if ad.Default != nil {
		attr.SetDefault(valueOf(ad.Default))
	}

	// Author samples in ascending frame order for determinism.
	frames := make([]float64, 0, len(ad.Samples))
	for t := range ad.Samples {
		frames = append(frames, t)
	}
	sort.Float64s(frames)
	for _, t := range frames {
		attr.SetSample(t, valueOf(ad.Samples[t]))
	}
	return nil
}

// valueOf converts a YAML element list to a resolved value. Integer lists
// keep their elements so topology attributes can be summed.
func valueOf(elems []any) stage.Value {
	v := stage.Value{Count: len(elems)}
	ints := make([]int, 0, len(elems))
	for _, e := range elems {
		n, ok := e.(int)
		if !ok {
			return v
		}
		ints = append(ints, n)
	}
	v.Ints = ints
	return v
}
