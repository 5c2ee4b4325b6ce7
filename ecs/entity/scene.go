package entity

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/flycam/camera"
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
	"github.com/milk9111/flycam/prefabs"
	"golang.org/x/image/colornames"
)

var ErrUnknownShape = errors.New("entity: unknown primitive shape")

// Scene records the entities spawned from a scene prefab.
type Scene struct {
	Player     ecs.Entity
	Light      ecs.Entity
	Primitives []ecs.Entity
}

// BuildScene spawns the camera, the light and every primitive described by
// spec.
func BuildScene(w *ecs.World, spec *prefabs.SceneSpec) (*Scene, error) {
	if spec == nil {
		return nil, fmt.Errorf("scene: nil spec")
	}

	player, err := NewPlayerCamera(w, spec.Camera)
	if err != nil {
		return nil, err
	}
	light, err := NewLight(w, spec.Light)
	if err != nil {
		return nil, err
	}

	s := &Scene{Player: player, Light: light}
	if s.Primitives, err = SpawnPrimitives(w, spec.Primitive, spec.Layout); err != nil {
		return nil, err
	}
	return s, nil
}

// RespawnPrimitives swaps the scene's primitives and light settings for
// the ones in spec, leaving the camera where it is. The old primitives are
// kept when the new layout fails.
func RespawnPrimitives(w *ecs.World, s *Scene, spec *prefabs.SceneSpec) error {
	if s == nil || spec == nil {
		return fmt.Errorf("scene: nothing to respawn")
	}

	positions, err := prefabs.RunLayout(spec.Layout)
	if err != nil {
		return fmt.Errorf("scene: layout: %w", err)
	}
	prim, err := primitiveFromSpec(spec.Primitive)
	if err != nil {
		return err
	}

	for _, e := range s.Primitives {
		w.DestroyEntity(e)
	}
	s.Primitives, err = spawnAt(w, prim, positions)
	if err != nil {
		return err
	}

	if l, ok := ecs.Get(w, s.Light, component.PointLightComponent); ok {
		*l = lightFromSpec(spec.Light)
	}
	if t, ok := ecs.Get(w, s.Light, component.TransformComponent); ok {
		t.Position = vec3(spec.Light.Position)
	}

	w.Events().Push(ecs.Event{Type: ecs.EventSceneReloaded, Data: len(s.Primitives)})
	return nil
}

// NewPlayerCamera spawns the first-person camera driven by local input.
func NewPlayerCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	state := camera.NewState(
		vec3(spec.Position),
		mgl32.DegToRad(float32(spec.Yaw)),
		mgl32.DegToRad(float32(spec.Pitch)),
	)

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("camera: add player tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{
		Position: state.Position,
		Rotation: state.Orientation,
		Scale:    1,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.CameraComponent, &component.Camera{Lens: LensFromSpec(spec)}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	if err := ecs.Add(w, e, component.FPSCameraComponent, &component.FPSCamera{State: state}); err != nil {
		return 0, fmt.Errorf("camera: add fps camera: %w", err)
	}
	if err := ecs.Add(w, e, component.AxisInputComponent, &component.AxisInput{}); err != nil {
		return 0, fmt.Errorf("camera: add axis input: %w", err)
	}
	return e, nil
}

// LensFromSpec converts the prefab's degrees to a lens. Zero fields keep
// the defaults.
func LensFromSpec(spec prefabs.CameraSpec) camera.Lens {
	lens := camera.DefaultLens()
	if spec.FovY > 0 {
		lens.FovY = mgl32.DegToRad(float32(spec.FovY))
	}
	if spec.Near > 0 {
		lens.Near = float32(spec.Near)
	}
	if spec.Far > 0 {
		lens.Far = float32(spec.Far)
	}
	return lens
}

// ControllerFromSpec returns a controller tuned by the camera prefab.
func ControllerFromSpec(spec prefabs.CameraSpec) *camera.Controller {
	c := camera.NewController()
	if spec.Speed > 0 {
		c.Speed = float32(spec.Speed)
	}
	if spec.Sensitivity > 0 {
		c.Sensitivity = float32(spec.Sensitivity)
	}
	return c
}

func NewLight(w *ecs.World, spec prefabs.LightSpec) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{Position: vec3(spec.Position)}); err != nil {
		return 0, fmt.Errorf("light: add transform: %w", err)
	}
	l := lightFromSpec(spec)
	if err := ecs.Add(w, e, component.PointLightComponent, &l); err != nil {
		return 0, fmt.Errorf("light: add point light: %w", err)
	}
	return e, nil
}

func lightFromSpec(spec prefabs.LightSpec) component.PointLight {
	return component.PointLight{
		Color:   spec.Color.ColorOr(color.White),
		Ambient: float32(spec.Ambient),
	}
}

// SpawnPrimitives places one primitive at every position of the layout.
func SpawnPrimitives(w *ecs.World, spec prefabs.PrimitiveSpec, layout prefabs.LayoutSpec) ([]ecs.Entity, error) {
	prim, err := primitiveFromSpec(spec)
	if err != nil {
		return nil, err
	}
	positions, err := prefabs.RunLayout(layout)
	if err != nil {
		return nil, fmt.Errorf("scene: layout: %w", err)
	}
	return spawnAt(w, prim, positions)
}

func spawnAt(w *ecs.World, prim component.Primitive, positions [][3]float64) ([]ecs.Entity, error) {
	out := make([]ecs.Entity, 0, len(positions))
	for _, p := range positions {
		e := w.CreateEntity()
		if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{Position: vec3(p), Scale: 1}); err != nil {
			return out, fmt.Errorf("primitive: add transform: %w", err)
		}
		c := prim
		if err := ecs.Add(w, e, component.PrimitiveComponent, &c); err != nil {
			return out, fmt.Errorf("primitive: add primitive: %w", err)
		}
		out = append(out, e)
	}
	return out, nil
}

func primitiveFromSpec(spec prefabs.PrimitiveSpec) (component.Primitive, error) {
	shape, err := ParseShape(spec.Shape)
	if err != nil {
		return component.Primitive{}, err
	}
	size := float32(spec.Size)
	if size <= 0 {
		size = 1
	}
	return component.Primitive{
		Shape: shape,
		Size:  size,
		Color: spec.Color.ColorOr(colornames.White),
	}, nil
}

// ParseShape accepts "cube" or "pyramid". An empty name is a cube.
func ParseShape(name string) (component.Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "cube":
		return component.ShapeCube, nil
	case "pyramid":
		return component.ShapePyramid, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

func vec3(p [3]float64) mgl32.Vec3 {
	return mgl32.Vec3{float32(p[0]), float32(p[1]), float32(p[2])}
}

// CameraSpecFor describes a live camera in prefab form, angles in degrees.
func CameraSpecFor(state camera.State, lens camera.Lens, c *camera.Controller) prefabs.CameraSpec {
	spec := prefabs.CameraSpec{
		Position: [3]float64{float64(state.Position[0]), float64(state.Position[1]), float64(state.Position[2])},
		Yaw:      float64(mgl32.RadToDeg(state.Yaw)),
		Pitch:    float64(mgl32.RadToDeg(state.Pitch)),
		FovY:     float64(mgl32.RadToDeg(lens.FovY)),
		Near:     float64(lens.Near),
		Far:      float64(lens.Far),
	}
	if c != nil {
		spec.Speed = float64(c.Speed)
		spec.Sensitivity = float64(c.Sensitivity)
	}
	return spec
}
