package render

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flycam/camera"
)

// Light is a single point light with an ambient floor.
type Light struct {
	Position mgl32.Vec3
	Color    color.Color
	Ambient  float32
}

// Frame holds the per-frame camera and target parameters.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Eye        mgl32.Vec3
	Width      float32
	Height     float32
	Light      Light
}

// Triangle is a shaded, screen-space triangle ready to draw.
type Triangle struct {
	Points [3]mgl32.Vec2
	Depth  float32
	Color  [4]float32
}

// Batch collects triangles for one frame and draws them far to near.
type Batch struct {
	tris     []Triangle
	sorted   bool
	vertices []ebiten.Vertex
	indices  []uint16
}

func (b *Batch) Reset() {
	b.tris = b.tris[:0]
	b.sorted = true
}

func (b *Batch) Len() int {
	return len(b.tris)
}

// Add transforms mesh by model and appends its visible triangles. Faces
// pointing away from the eye and triangles reaching behind the near plane
// are dropped.
func (b *Batch) Add(f Frame, mesh Mesh, model mgl32.Mat4, base color.Color) {
	vp := f.Projection.Mul4(f.View)
	lr, lg, lb := lightRGB(f.Light.Color)
	br, bg, bb, ba := colorRGBA(base)
	ambient := mgl32.Clamp(f.Light.Ambient, 0, 1)

	for _, tri := range mesh.Triangles {
		var world [3]mgl32.Vec3
		for i, v := range tri {
			world[i] = model.Mul4x1(v.Vec4(1)).Vec3()
		}

		normal := camera.NormalizeOrZero(world[1].Sub(world[0]).Cross(world[2].Sub(world[0])))
		if normal.Dot(f.Eye.Sub(world[0])) <= 0 {
			continue
		}

		var out Triangle
		visible := true
		for i, p := range world {
			clip := vp.Mul4x1(p.Vec4(1))
			w := clip.W()
			if w <= 1e-4 || clip.Z() < -w {
				visible = false
				break
			}
			ndc := clip.Vec3().Mul(1 / w)
			out.Points[i] = mgl32.Vec2{
				(ndc.X() + 1) * 0.5 * f.Width,
				(1 - ndc.Y()) * 0.5 * f.Height,
			}
			out.Depth += w / 3
		}
		if !visible {
			continue
		}

		centroid := world[0].Add(world[1]).Add(world[2]).Mul(1.0 / 3)
		toLight := camera.NormalizeOrZero(f.Light.Position.Sub(centroid))
		lambert := float32(math.Max(0, float64(normal.Dot(toLight))))
		k := ambient + (1-ambient)*lambert

		out.Color = [4]float32{br * lr * k * ba, bg * lg * k * ba, bb * lb * k * ba, ba}
		b.tris = append(b.tris, out)
		b.sorted = false
	}
}

// Triangles returns the collected triangles ordered far to near.
func (b *Batch) Triangles() []Triangle {
	if !b.sorted {
		sort.SliceStable(b.tris, func(i, j int) bool {
			return b.tris[i].Depth > b.tris[j].Depth
		})
		b.sorted = true
	}
	return b.tris
}

var whiteSubImage *ebiten.Image

func white() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// maxBatchVertices keeps indices within uint16.
const maxBatchVertices = 65535 / 3 * 3

// Draw renders the batch onto dst.
func (b *Batch) Draw(dst *ebiten.Image) {
	tris := b.Triangles()
	src := white()
	op := &ebiten.DrawTrianglesOptions{}

	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
	flush := func() {
		if len(b.indices) == 0 {
			return
		}
		dst.DrawTriangles(b.vertices, b.indices, src, op)
		b.vertices = b.vertices[:0]
		b.indices = b.indices[:0]
	}

	for _, t := range tris {
		if len(b.vertices)+3 > maxBatchVertices {
			flush()
		}
		for _, p := range t.Points {
			b.indices = append(b.indices, uint16(len(b.vertices)))
			b.vertices = append(b.vertices, ebiten.Vertex{
				DstX:   p.X(),
				DstY:   p.Y(),
				SrcX:   1,
				SrcY:   1,
				ColorR: t.Color[0],
				ColorG: t.Color[1],
				ColorB: t.Color[2],
				ColorA: t.Color[3],
			})
		}
	}
	flush()
}

func colorRGBA(c color.Color) (r, g, b, a float32) {
	if c == nil {
		return 1, 1, 1, 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255
}

func lightRGB(c color.Color) (r, g, b float32) {
	r, g, b, _ = colorRGBA(c)
	return r, g, b
}
