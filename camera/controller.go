package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/flycam/input"
)

const (
	MaxPitch = float32(math.Pi / 2)
	MinPitch = -MaxPitch

	// DefaultSensitivity converts raw look-axis units (pixels, stick units)
	// into radians.
	DefaultSensitivity float32 = 0.001

	// DefaultSpeed is world units per second at full deflection.
	DefaultSpeed float32 = 1

	degenerateLength = 1e-6

	// maxAxis bounds a single axis reading so squared lengths stay finite
	// in float32.
	maxAxis = 1e6
)

var (
	worldUp      = mgl32.Vec3{0, 1, 0}
	localForward = mgl32.Vec3{0, 0, -1}
	localRight   = mgl32.Vec3{1, 0, 0}
)

// Controller integrates first-person look and movement once per tick.
type Controller struct {
	Sensitivity float32
	Speed       float32
}

func NewController() *Controller {
	return &Controller{Sensitivity: DefaultSensitivity, Speed: DefaultSpeed}
}

// Update advances s by one tick of dt seconds using the resolved axes.
// Movement is derived from the orientation s had at the start of the tick.
func (c *Controller) Update(s *State, axes input.Values, dt float64) {
	if c == nil || s == nil {
		return
	}

	forward, right := HorizontalBasis(s.Orientation)

	walk := axisValue(axes, input.AxisLongitudinal)
	strafe := axisValue(axes, input.AxisLatitudinal)
	lift := axisValue(axes, input.AxisElevation)

	move := forward.Mul(walk).Add(right.Mul(strafe)).Add(worldUp.Mul(lift))
	s.Velocity = NormalizeOrZero(move)

	sens := c.Sensitivity
	s.Yaw += -sens * axisValue(axes, input.AxisYaw)
	s.Pitch = ClampPitch(s.Pitch + -sens*axisValue(axes, input.AxisPitch))

	speed := c.Speed
	if speed == 0 {
		speed = DefaultSpeed
	}
	step := float32(0)
	if dt > 0 && !math.IsInf(dt, 0) {
		step = float32(dt)
	}
	s.Position = s.Position.Add(s.Velocity.Mul(speed * step))

	s.Orientation = Orientation(s.Yaw, s.Pitch, 0)
}

// Orientation composes yaw about Y, then pitch about X, then roll about Z.
func Orientation(yaw, pitch, roll float32) mgl32.Quat {
	qy := mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0})
	qx := mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0})
	qz := mgl32.QuatRotate(roll, mgl32.Vec3{0, 0, 1})
	return qy.Mul(qx).Mul(qz)
}

// HorizontalBasis returns the forward and right directions of q flattened
// onto the XZ plane. Either may be the zero vector when q looks straight
// up or down.
func HorizontalBasis(q mgl32.Quat) (forward, right mgl32.Vec3) {
	f := q.Rotate(localForward)
	r := q.Rotate(localRight)
	f[1] = 0
	r[1] = 0
	return NormalizeOrZero(f), NormalizeOrZero(r)
}

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v
// is too short (or not finite) to have a direction.
func NormalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < degenerateLength || math.IsNaN(float64(l)) || math.IsInf(float64(l), 0) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

func ClampPitch(p float32) float32 {
	if math.IsNaN(float64(p)) {
		return 0
	}
	return mgl32.Clamp(p, MinPitch, MaxPitch)
}

func axisValue(axes input.Values, a input.Axis) float32 {
	v := axes.Get(a)
	if math.IsNaN(v) {
		return 0
	}
	return float32(math.Max(-maxAxis, math.Min(maxAxis, v)))
}
