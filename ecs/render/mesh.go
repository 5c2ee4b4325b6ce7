package render

import "github.com/go-gl/mathgl/mgl32"

// Mesh is a list of triangles wound counter-clockwise when seen from
// outside, in model space.
type Mesh struct {
	Triangles [][3]mgl32.Vec3
}

func quad(a, b, c, d mgl32.Vec3) [][3]mgl32.Vec3 {
	return [][3]mgl32.Vec3{{a, b, c}, {a, c, d}}
}

// Cube returns an axis-aligned cube with edge length size centred on the origin.
func Cube(size float32) Mesh {
	h := size / 2
	var tris [][3]mgl32.Vec3
	tris = append(tris, quad(mgl32.Vec3{-h, -h, h}, mgl32.Vec3{h, -h, h}, mgl32.Vec3{h, h, h}, mgl32.Vec3{-h, h, h})...)
	tris = append(tris, quad(mgl32.Vec3{h, -h, -h}, mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{-h, h, -h}, mgl32.Vec3{h, h, -h})...)
	tris = append(tris, quad(mgl32.Vec3{h, -h, h}, mgl32.Vec3{h, -h, -h}, mgl32.Vec3{h, h, -h}, mgl32.Vec3{h, h, h})...)
	tris = append(tris, quad(mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{-h, -h, h}, mgl32.Vec3{-h, h, h}, mgl32.Vec3{-h, h, -h})...)
	tris = append(tris, quad(mgl32.Vec3{-h, h, h}, mgl32.Vec3{h, h, h}, mgl32.Vec3{h, h, -h}, mgl32.Vec3{-h, h, -h})...)
	tris = append(tris, quad(mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{h, -h, -h}, mgl32.Vec3{h, -h, h}, mgl32.Vec3{-h, -h, h})...)
	return Mesh{Triangles: tris}
}

// Pyramid returns a square pyramid of base and height size, apex up.
func Pyramid(size float32) Mesh {
	h := size / 2
	apex := mgl32.Vec3{0, h, 0}
	var tris [][3]mgl32.Vec3
	tris = append(tris, quad(mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{h, -h, -h}, mgl32.Vec3{h, -h, h}, mgl32.Vec3{-h, -h, h})...)
	tris = append(tris,
		[3]mgl32.Vec3{{-h, -h, h}, {h, -h, h}, apex},
		[3]mgl32.Vec3{{h, -h, h}, {h, -h, -h}, apex},
		[3]mgl32.Vec3{{h, -h, -h}, {-h, -h, -h}, apex},
		[3]mgl32.Vec3{{-h, -h, -h}, {-h, -h, h}, apex},
	)
	return Mesh{Triangles: tris}
}
