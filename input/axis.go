package input

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrUnknownAxis = errors.New("input: unknown axis")

// Axis is a named logical input channel.
type Axis int

const (
	AxisLongitudinal Axis = iota
	AxisLatitudinal
	AxisElevation
	AxisPitch
	AxisYaw

	axisCount
)

var axisNames = [axisCount]string{
	AxisLongitudinal: "longitudinal",
	AxisLatitudinal:  "latitudinal",
	AxisElevation:    "elevation",
	AxisPitch:        "pitch",
	AxisYaw:          "yaw",
}

// Axes lists every axis in declaration order.
func Axes() []Axis {
	out := make([]Axis, 0, axisCount)
	for a := Axis(0); a < axisCount; a++ {
		out = append(out, a)
	}
	return out
}

func (a Axis) Valid() bool {
	return a >= 0 && a < axisCount
}

func (a Axis) String() string {
	if !a.Valid() {
		return fmt.Sprintf("axis(%d)", int(a))
	}
	return axisNames[a]
}

func ParseAxis(name string) (Axis, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for a, s := range axisNames {
		if s == n {
			return Axis(a), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAxis, name)
}

// Values holds one resolved scalar per axis for a single tick.
type Values [axisCount]float64

func (v Values) Get(a Axis) float64 {
	if !a.Valid() {
		return 0
	}
	return v[a]
}

func (v *Values) Set(a Axis, value float64) {
	if v == nil || !a.Valid() {
		return
	}
	v[a] = value
}

// IsZero reports whether no axis carries input.
func (v Values) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
