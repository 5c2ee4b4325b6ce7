package system

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flycam/camera"
	"github.com/milk9111/flycam/common"
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
	"github.com/milk9111/flycam/ecs/render"
	"golang.org/x/image/colornames"
)

var clearColor = color.RGBA{R: 0x1a, G: 0x1c, B: 0x24, A: 0xff}

type RenderSystem struct {
	camEntity ecs.Entity
	batch     render.Batch
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Frame builds the per-frame parameters for a target of the given size.
// ok is false when the world has no camera.
func (r *RenderSystem) Frame(w *ecs.World, width, height int) (render.Frame, bool) {
	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind().ID())
		if !ok {
			return render.Frame{}, false
		}
		r.camEntity = camEntity
	}

	camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent)
	if !ok {
		return render.Frame{}, false
	}
	lens := camera.DefaultLens()
	if camComp, ok := ecs.Get(w, r.camEntity, component.CameraComponent); ok {
		lens = camComp.Lens
	}

	rot := camTransform.Rotation
	if rot == (mgl32.Quat{}) {
		rot = mgl32.QuatIdent()
	}
	pose := camera.Pose{Position: camTransform.Position, Orientation: rot}

	f := render.Frame{
		View:       pose.View(),
		Projection: lens.Projection(common.Aspect(width, height)),
		Eye:        pose.Position,
		Width:      float32(width),
		Height:     float32(height),
		Light:      render.Light{Position: pose.Position, Color: color.White, Ambient: 1},
	}

	ecs.ForEach2(w, component.PointLightComponent, component.TransformComponent,
		func(_ ecs.Entity, l *component.PointLight, t *component.Transform) {
			f.Light = render.Light{Position: t.Position, Color: l.Color, Ambient: l.Ambient}
		})

	return f, true
}

// Collect fills the batch with every visible primitive.
func (r *RenderSystem) Collect(w *ecs.World, width, height int) *render.Batch {
	r.batch.Reset()
	f, ok := r.Frame(w, width, height)
	if !ok {
		return &r.batch
	}

	ecs.ForEach2(w, component.PrimitiveComponent, component.TransformComponent,
		func(_ ecs.Entity, p *component.Primitive, t *component.Transform) {
			c := p.Color
			if c == nil {
				c = colornames.White
			}
			r.batch.Add(f, render.MeshFor(p.Shape, p.Size), t.Model(), c)
		})

	return &r.batch
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	screen.Fill(clearColor)
	b := screen.Bounds()
	r.Collect(w, b.Dx(), b.Dy()).Draw(screen)
}
