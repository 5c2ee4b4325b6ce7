package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// State is the per-entity first-person camera state. Angles are radians.
type State struct {
	Yaw         float32
	Pitch       float32
	Velocity    mgl32.Vec3
	Position    mgl32.Vec3
	Orientation mgl32.Quat
}

// NewState places a level camera at position. Pitch is clamped.
func NewState(position mgl32.Vec3, yaw, pitch float32) State {
	pitch = ClampPitch(pitch)
	return State{
		Yaw:         yaw,
		Pitch:       pitch,
		Position:    position,
		Orientation: Orientation(yaw, pitch, 0),
	}
}

func (s State) Pose() Pose {
	return Pose{Position: s.Position, Orientation: s.Orientation}
}

// Pose is where a camera sits and where it looks.
type Pose struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
}

func (p Pose) Forward() mgl32.Vec3 {
	return p.Orientation.Rotate(localForward)
}

func (p Pose) Up() mgl32.Vec3 {
	return p.Orientation.Rotate(worldUp)
}

// View returns the world-to-camera matrix.
func (p Pose) View() mgl32.Mat4 {
	target := p.Position.Add(p.Forward())
	return mgl32.LookAtV(p.Position, target, p.Up())
}

// Lens holds perspective projection parameters. FovY is in radians.
type Lens struct {
	FovY float32
	Near float32
	Far  float32
}

func DefaultLens() Lens {
	return Lens{FovY: mgl32.DegToRad(45), Near: 0.1, Far: 100}
}

func (l Lens) Projection(aspect float32) mgl32.Mat4 {
	d := DefaultLens()
	if l.FovY <= 0 {
		l.FovY = d.FovY
	}
	if l.Near <= 0 {
		l.Near = d.Near
	}
	if l.Far <= l.Near {
		l.Far = l.Near + d.Far
	}
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(l.FovY, aspect, l.Near, l.Far)
}
