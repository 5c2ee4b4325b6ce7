package input

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// State is the read-only view of the physical devices for the current tick.
type State interface {
	IsKeyPressed(key ebiten.Key) bool
	GamepadAxis(axis ebiten.StandardGamepadAxis) float64
	MouseDelta() (dx, dy float64)
}

// Source is one physical reading that can drive an axis.
type Source interface {
	Value(s State) float64
	String() string
}

type MouseAxis int

const (
	MouseX MouseAxis = iota
	MouseY
)

func (m MouseAxis) String() string {
	switch m {
	case MouseX:
		return "x"
	case MouseY:
		return "y"
	}
	return fmt.Sprintf("mouse(%d)", int(m))
}

// KeySource emits Sign while Key is held.
type KeySource struct {
	Key  ebiten.Key
	Sign float64
}

func (k KeySource) Value(s State) float64 {
	if s == nil || !s.IsKeyPressed(k.Key) {
		return 0
	}
	if k.Sign < 0 {
		return -1
	}
	return 1
}

func (k KeySource) String() string {
	if k.Sign < 0 {
		return "key " + k.Key.String() + " (-)"
	}
	return "key " + k.Key.String() + " (+)"
}

// GamepadAxisSource passes a standard gamepad axis through. Readings with a
// magnitude under Deadzone are reported as zero.
type GamepadAxisSource struct {
	Axis     ebiten.StandardGamepadAxis
	Scale    float64
	Deadzone float64
}

func (g GamepadAxisSource) Value(s State) float64 {
	if s == nil {
		return 0
	}
	v := s.GamepadAxis(g.Axis)
	if !finite(v) || math.Abs(v) < g.Deadzone {
		return 0
	}
	return v * scaleOrOne(g.Scale)
}

func (g GamepadAxisSource) String() string {
	return "gamepad " + gamepadAxisName(g.Axis)
}

// MouseDeltaSource reads the cursor movement since the previous tick.
type MouseDeltaSource struct {
	Axis  MouseAxis
	Scale float64
}

func (m MouseDeltaSource) Value(s State) float64 {
	if s == nil {
		return 0
	}
	dx, dy := s.MouseDelta()
	v := dx
	if m.Axis == MouseY {
		v = dy
	}
	return v * scaleOrOne(m.Scale)
}

func (m MouseDeltaSource) String() string {
	return "mouse " + m.Axis.String()
}

func scaleOrOne(scale float64) float64 {
	if scale == 0 {
		return 1
	}
	return scale
}
