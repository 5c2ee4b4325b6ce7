package component

import "github.com/go-gl/mathgl/mgl32"

// Transform places an entity in world space.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    float32
}

// Model returns the local-to-world matrix. A zero Scale counts as 1.
func (t Transform) Model() mgl32.Mat4 {
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	rot := t.Rotation
	if rot == (mgl32.Quat{}) {
		rot = mgl32.QuatIdent()
	}
	translate := mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2])
	return translate.Mul4(rot.Mat4()).Mul4(mgl32.Scale3D(scale, scale, scale))
}

var TransformComponent = NewComponent[Transform]()
