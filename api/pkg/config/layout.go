package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LayoutKind is the kind used by the wrapped form of a layout file.
const LayoutKind = "PreviewLayout"

// Layout is a scene of surfaces shown together on one display.
type Layout struct {
	Name     string          `yaml:"name,omitempty"`
	Surfaces []SurfaceLayout `yaml:"surfaces"`
}

// SurfaceLayout describes one dumb buffer surface and where it goes on screen.
type SurfaceLayout struct {
	Name   string `yaml:"name,omitempty"`
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
	// Format is a format name such as XRGB8888 or a fourcc such as XR24.
	Format string `yaml:"format,omitempty"`
	// Color is the fill color as #rgb or #rrggbb.
	Color string `yaml:"color,omitempty"`
	Label string `yaml:"label,omitempty"`

	// Display and ROI are normalized rectangles; omitted means the full frame.
	Display *Rect `yaml:"display,omitempty"`
	ROI     *Rect `yaml:"roi,omitempty"`

	// Properties are plane enum properties applied after binding, e.g.
	// {"COLOR_ENCODING": "BT.709"}.
	Properties map[string]string `yaml:"properties,omitempty"`
}

type Rect struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	W float32 `yaml:"w"`
	H float32 `yaml:"h"`
}

// FullFrame is the default display and ROI rectangle.
var FullFrame = Rect{W: 1, H: 1}

type layoutCRD struct {
	APIVersion string `yaml:"apiVersion"`
	Kind       string `yaml:"kind"`
	Metadata   struct {
		Name string `yaml:"name"`
	} `yaml:"metadata"`
	Spec Layout `yaml:"spec"`
}

// LoadLayoutFile reads and validates a layout file.
func LoadLayoutFile(path string) (*Layout, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	return ProcessLayoutYAML(content)
}

// ProcessLayoutYAML parses a layout. Both a bare layout and the wrapped
// apiVersion/kind/metadata/spec form are accepted.
func ProcessLayoutYAML(content []byte) (*Layout, error) {
	// First, unmarshal as generic map to check structure
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(content, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	_, hasAPIVersion := rawMap["apiVersion"]
	_, hasKind := rawMap["kind"]
	_, hasSpec := rawMap["spec"]

	var layout Layout
	if hasAPIVersion && hasKind && hasSpec {
		var crd layoutCRD
		if err := decodeStrict(content, &crd); err != nil {
			return nil, fmt.Errorf("file appears to be a %s but failed to parse: %w", LayoutKind, err)
		}
		if crd.Kind != LayoutKind {
			return nil, fmt.Errorf("unexpected kind %q, want %q", crd.Kind, LayoutKind)
		}
		layout = crd.Spec
		if crd.Metadata.Name != "" {
			layout.Name = crd.Metadata.Name
		}
	} else if err := decodeStrict(content, &layout); err != nil {
		return nil, fmt.Errorf("error parsing layout: %w", err)
	}

	if err := layout.normalize(); err != nil {
		return nil, err
	}
	return &layout, nil
}

func decodeStrict(content []byte, out interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	return dec.Decode(out)
}

func (l *Layout) normalize() error {
	if len(l.Surfaces) == 0 {
		return errors.New("layout has no surfaces")
	}
	for i := range l.Surfaces {
		s := &l.Surfaces[i]
		if s.Name == "" {
			s.Name = fmt.Sprintf("surface-%d", i)
		}
		if s.Width == 0 || s.Height == 0 {
			return fmt.Errorf("surface %s: width and height are required", s.Name)
		}
		if s.Format == "" {
			s.Format = "XRGB8888"
		}
		if s.Display == nil {
			full := FullFrame
			s.Display = &full
		}
		if s.ROI == nil {
			full := FullFrame
			s.ROI = &full
		}
	}
	return nil
}
