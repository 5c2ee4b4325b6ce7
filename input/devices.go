package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Devices samples keyboard, cursor and the first standard-layout gamepad
// from ebiten. Poll must be called once per tick before resolving.
type Devices struct {
	gamepadIDs []ebiten.GamepadID
	gamepad    ebiten.GamepadID
	hasGamepad bool

	lastX, lastY int
	dx, dy       float64
	primed       bool
}

func NewDevices() *Devices {
	return &Devices{}
}

func (d *Devices) Poll() {
	d.gamepadIDs = ebiten.AppendGamepadIDs(d.gamepadIDs[:0])
	d.hasGamepad = false
	for _, id := range d.gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			d.gamepad = id
			d.hasGamepad = true
			break
		}
	}

	x, y := ebiten.CursorPosition()
	if !d.primed {
		d.lastX, d.lastY = x, y
		d.primed = true
	}
	d.dx = float64(x - d.lastX)
	d.dy = float64(y - d.lastY)
	d.lastX, d.lastY = x, y
}

// Reset drops the cursor baseline so the next Poll reports no movement.
// Call it after the cursor was released, e.g. when leaving a menu.
func (d *Devices) Reset() {
	d.primed = false
	d.dx, d.dy = 0, 0
}

func (d *Devices) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (d *Devices) GamepadAxis(axis ebiten.StandardGamepadAxis) float64 {
	if !d.hasGamepad {
		return 0
	}
	return ebiten.StandardGamepadAxisValue(d.gamepad, axis)
}

func (d *Devices) MouseDelta() (float64, float64) {
	return d.dx, d.dy
}
