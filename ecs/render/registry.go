package render

import "github.com/milk9111/flycam/ecs/component"

type meshKey struct {
	shape component.Shape
	size  float32
}

var meshes = map[meshKey]Mesh{}

// MeshFor returns the cached mesh for a primitive shape and size.
func MeshFor(shape component.Shape, size float32) Mesh {
	key := meshKey{shape: shape, size: size}
	if m, ok := meshes[key]; ok {
		return m
	}
	var m Mesh
	switch shape {
	case component.ShapePyramid:
		m = Pyramid(size)
	default:
		m = Cube(size)
	}
	meshes[key] = m
	return m
}
