package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const DefaultStickDeadzone = 0.2

// Bindings maps each axis to its candidate sources in registration order.
type Bindings struct {
	axes [axisCount][]Source
}

func NewBindings() *Bindings {
	return &Bindings{}
}

// AxisBuilder appends sources to a single axis.
type AxisBuilder struct {
	b    *Bindings
	axis Axis
}

// Axis starts (or continues) the source list for a.
func (b *Bindings) Axis(a Axis) *AxisBuilder {
	return &AxisBuilder{b: b, axis: a}
}

func (ab *AxisBuilder) Add(src Source) *AxisBuilder {
	if ab == nil || ab.b == nil || src == nil || !ab.axis.Valid() {
		return ab
	}
	ab.b.axes[ab.axis] = append(ab.b.axes[ab.axis], src)
	return ab
}

// Sources returns a copy of the sources bound to a.
func (b *Bindings) Sources(a Axis) []Source {
	if b == nil || !a.Valid() {
		return nil
	}
	return append([]Source(nil), b.axes[a]...)
}

// Len returns the total number of bound sources.
func (b *Bindings) Len() int {
	if b == nil {
		return 0
	}
	n := 0
	for _, srcs := range b.axes {
		n += len(srcs)
	}
	return n
}

// DefaultBindings is the stock fly-camera layout: WASD plus E/Q for
// movement, mouse or right stick for looking.
func DefaultBindings() *Bindings {
	b := NewBindings()

	b.Axis(AxisLongitudinal).
		Add(GamepadAxisSource{Axis: ebiten.StandardGamepadAxisLeftStickVertical, Scale: -1, Deadzone: DefaultStickDeadzone}).
		Add(KeySource{Key: ebiten.KeyW, Sign: 1}).
		Add(KeySource{Key: ebiten.KeyS, Sign: -1})

	b.Axis(AxisLatitudinal).
		Add(GamepadAxisSource{Axis: ebiten.StandardGamepadAxisLeftStickHorizontal, Scale: 1, Deadzone: DefaultStickDeadzone}).
		Add(KeySource{Key: ebiten.KeyD, Sign: 1}).
		Add(KeySource{Key: ebiten.KeyA, Sign: -1})

	b.Axis(AxisElevation).
		Add(KeySource{Key: ebiten.KeyE, Sign: 1}).
		Add(KeySource{Key: ebiten.KeyQ, Sign: -1})

	b.Axis(AxisPitch).
		Add(MouseDeltaSource{Axis: MouseY, Scale: 1}).
		Add(GamepadAxisSource{Axis: ebiten.StandardGamepadAxisRightStickVertical, Scale: 1, Deadzone: DefaultStickDeadzone})

	b.Axis(AxisYaw).
		Add(MouseDeltaSource{Axis: MouseX, Scale: 1}).
		Add(GamepadAxisSource{Axis: ebiten.StandardGamepadAxisRightStickHorizontal, Scale: 1, Deadzone: DefaultStickDeadzone})

	return b
}
