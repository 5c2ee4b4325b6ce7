package component

import "image/color"

type Shape int

const (
	ShapeCube Shape = iota
	ShapePyramid
)

func (s Shape) String() string {
	switch s {
	case ShapeCube:
		return "cube"
	case ShapePyramid:
		return "pyramid"
	}
	return "unknown"
}

// Primitive is a solid, flat-shaded mesh drawn at the entity's transform.
type Primitive struct {
	Shape Shape
	Size  float32
	Color color.Color
}

var PrimitiveComponent = NewComponent[Primitive]()
