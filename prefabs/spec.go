package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const (
	BindingsFile = "bindings.yaml"
	SceneFile    = "scene.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// BindingsSpec describes the axis binding table. Sources are tried in the
// order they are listed.
type BindingsSpec struct {
	Deadzone float64           `yaml:"deadzone"`
	Axes     []AxisBindingSpec `yaml:"axes"`
}

type AxisBindingSpec struct {
	Axis    string       `yaml:"axis"`
	Sources []SourceSpec `yaml:"sources"`
}

// SourceSpec sets exactly one of Key, Gamepad or Mouse.
type SourceSpec struct {
	Key      string   `yaml:"key,omitempty"`
	Gamepad  string   `yaml:"gamepad,omitempty"`
	Mouse    string   `yaml:"mouse,omitempty"`
	Sign     float64  `yaml:"sign,omitempty"`
	Scale    float64  `yaml:"scale,omitempty"`
	Deadzone *float64 `yaml:"deadzone,omitempty"`
}

type SceneSpec struct {
	Name      string        `yaml:"name"`
	Camera    CameraSpec    `yaml:"camera"`
	Light     LightSpec     `yaml:"light"`
	Primitive PrimitiveSpec `yaml:"primitive"`
	Layout    LayoutSpec    `yaml:"layout"`
}

func LoadSceneSpec(filename string) (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// CameraSpec angles are in degrees.
type CameraSpec struct {
	Position    [3]float64 `yaml:"position"`
	Yaw         float64    `yaml:"yaw"`
	Pitch       float64    `yaml:"pitch"`
	FovY        float64    `yaml:"fov_y"`
	Near        float64    `yaml:"near"`
	Far         float64    `yaml:"far"`
	Speed       float64    `yaml:"speed"`
	Sensitivity float64    `yaml:"sensitivity"`
}

type LightSpec struct {
	Position [3]float64 `yaml:"position"`
	Color    *YAMLColor `yaml:"color"`
	Ambient  float64    `yaml:"ambient"`
}

type PrimitiveSpec struct {
	Shape string     `yaml:"shape"`
	Size  float64    `yaml:"size"`
	Color *YAMLColor `yaml:"color"`
}

// LayoutSpec places primitives either from a tengo script or from an
// explicit position list. Script wins when both are set.
type LayoutSpec struct {
	Script    string         `yaml:"script"`
	Params    map[string]any `yaml:"params"`
	Positions [][3]float64   `yaml:"positions"`
}

type YAMLColor struct {
	color.Color
}

// UnmarshalYAML accepts "#rrggbb", "#rrggbbaa" or an SVG colour name.
func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// ColorOr returns the parsed colour, or fallback when none was given.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

// MarshalCamera encodes spec as a scene fragment that can be pasted under
// a scene prefab.
func MarshalCamera(spec CameraSpec) ([]byte, error) {
	return yaml.Marshal(struct {
		Camera CameraSpec `yaml:"camera"`
	}{spec})
}
