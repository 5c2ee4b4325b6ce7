package component

import "github.com/milk9111/flycam/input"

// AxisInput stores the axis values resolved for an entity this tick.
type AxisInput struct {
	Values input.Values
}

var AxisInputComponent = NewComponent[AxisInput]()
