package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flycam/prefabs"
)

var (
	ErrUnknownKey         = errors.New("input: unknown key")
	ErrUnknownGamepadAxis = errors.New("input: unknown gamepad axis")
	ErrUnknownMouseAxis   = errors.New("input: unknown mouse axis")
	ErrInvalidSource      = errors.New("input: invalid source")
)

var gamepadAxisNames = map[ebiten.StandardGamepadAxis]string{
	ebiten.StandardGamepadAxisLeftStickHorizontal:  "left_stick_x",
	ebiten.StandardGamepadAxisLeftStickVertical:    "left_stick_y",
	ebiten.StandardGamepadAxisRightStickHorizontal: "right_stick_x",
	ebiten.StandardGamepadAxisRightStickVertical:   "right_stick_y",
}

func gamepadAxisName(a ebiten.StandardGamepadAxis) string {
	if n, ok := gamepadAxisNames[a]; ok {
		return n
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

func parseGamepadAxis(name string) (ebiten.StandardGamepadAxis, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for a, s := range gamepadAxisNames {
		if s == n {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGamepadAxis, name)
}

// parseKey matches ebiten key names case-insensitively ("W", "space", "ArrowUp").
func parseKey(name string) (ebiten.Key, error) {
	n := strings.TrimSpace(name)
	if len(n) > 3 && strings.EqualFold(n[:3], "key") {
		n = n[3:]
	}
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), n) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

func parseMouseAxis(name string) (MouseAxis, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "x":
		return MouseX, nil
	case "y":
		return MouseY, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMouseAxis, name)
}

// FromSpec builds a binding table from its YAML description. Axes and
// sources keep the order they are listed in.
func FromSpec(spec prefabs.BindingsSpec) (*Bindings, error) {
	b := NewBindings()
	deadzone := spec.Deadzone
	if deadzone == 0 {
		deadzone = DefaultStickDeadzone
	}

	for i, as := range spec.Axes {
		axis, err := ParseAxis(as.Axis)
		if err != nil {
			return nil, fmt.Errorf("axes[%d]: %w", i, err)
		}
		ab := b.Axis(axis)
		for j, ss := range as.Sources {
			src, err := sourceFromSpec(ss, deadzone)
			if err != nil {
				return nil, fmt.Errorf("axes[%d] %s: sources[%d]: %w", i, axis, j, err)
			}
			ab.Add(src)
		}
	}

	return b, nil
}

func sourceFromSpec(ss prefabs.SourceSpec, deadzone float64) (Source, error) {
	set := 0
	for _, s := range []string{ss.Key, ss.Gamepad, ss.Mouse} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: exactly one of key, gamepad or mouse must be set", ErrInvalidSource)
	}

	switch {
	case ss.Key != "":
		key, err := parseKey(ss.Key)
		if err != nil {
			return nil, err
		}
		sign := ss.Sign
		if sign == 0 {
			sign = 1
		}
		if sign != 1 && sign != -1 {
			return nil, fmt.Errorf("%w: key sign must be 1 or -1, got %v", ErrInvalidSource, ss.Sign)
		}
		return KeySource{Key: key, Sign: sign}, nil
	case ss.Gamepad != "":
		axis, err := parseGamepadAxis(ss.Gamepad)
		if err != nil {
			return nil, err
		}
		dz := deadzone
		if ss.Deadzone != nil {
			dz = *ss.Deadzone
		}
		return GamepadAxisSource{Axis: axis, Scale: scaleOrOne(ss.Scale), Deadzone: dz}, nil
	default:
		axis, err := parseMouseAxis(ss.Mouse)
		if err != nil {
			return nil, err
		}
		return MouseDeltaSource{Axis: axis, Scale: scaleOrOne(ss.Scale)}, nil
	}
}

// LoadBindings reads a bindings prefab by name.
func LoadBindings(name string) (*Bindings, error) {
	spec, err := prefabs.LoadSpec[prefabs.BindingsSpec](name)
	if err != nil {
		return nil, err
	}
	b, err := FromSpec(spec)
	if err != nil {
		return nil, fmt.Errorf("input: %s: %w", name, err)
	}
	return b, nil
}
