package system

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flycam/camera"
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
	"github.com/milk9111/flycam/input"
)

type fakeDevices struct {
	keys   map[ebiten.Key]bool
	mx, my float64
	polls  int
}

func (f *fakeDevices) Poll() { f.polls++ }

func (f *fakeDevices) IsKeyPressed(k ebiten.Key) bool { return f.keys[k] }

func (f *fakeDevices) GamepadAxis(ebiten.StandardGamepadAxis) float64 { return 0 }

func (f *fakeDevices) MouseDelta() (float64, float64) { return f.mx, f.my }

func spawnPlayer(t *testing.T, w *ecs.World, pos mgl32.Vec3) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	state := camera.NewState(pos, 0, 0)
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{Position: pos, Rotation: state.Orientation}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.CameraComponent, &component.Camera{Lens: camera.DefaultLens()}); err != nil {
		t.Fatalf("add camera: %v", err)
	}
	if err := ecs.Add(w, e, component.FPSCameraComponent, &component.FPSCamera{State: state}); err != nil {
		t.Fatalf("add fps camera: %v", err)
	}
	if err := ecs.Add(w, e, component.AxisInputComponent, &component.AxisInput{}); err != nil {
		t.Fatalf("add axis input: %v", err)
	}
	return e
}

func TestInputSystemWritesResolvedAxes(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnPlayer(t, w, mgl32.Vec3{})
	dev := &fakeDevices{keys: map[ebiten.Key]bool{ebiten.KeyW: true}, mx: 12}

	sys := NewInputSystem(nil, dev)
	sys.Update(w)

	in, ok := ecs.Get(w, e, component.AxisInputComponent)
	if !ok {
		t.Fatalf("axis input missing")
	}
	if dev.polls != 1 {
		t.Fatalf("polls = %d, want 1", dev.polls)
	}
	if got := in.Values.Get(input.AxisLongitudinal); got != 1 {
		t.Fatalf("longitudinal = %v, want 1", got)
	}
	if got := in.Values.Get(input.AxisYaw); got != 12 {
		t.Fatalf("yaw = %v, want 12", got)
	}
}

func TestInputSystemSwapsBindingsOnEvent(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnPlayer(t, w, mgl32.Vec3{})
	dev := &fakeDevices{keys: map[ebiten.Key]bool{ebiten.KeySpace: true}}

	b := input.NewBindings()
	b.Axis(input.AxisElevation).Add(input.KeySource{Key: ebiten.KeySpace, Sign: 1})
	w.Events().Push(ecs.Event{Type: ecs.EventBindingsChanged, Data: b})

	sys := NewInputSystem(nil, dev)
	sys.Update(w)

	if sys.Resolver().Bindings() != b {
		t.Fatalf("bindings were not replaced")
	}
	if w.Events().Len() != 0 {
		t.Fatalf("bindings event left in queue")
	}
	in, _ := ecs.Get(w, e, component.AxisInputComponent)
	if got := in.Values.Get(input.AxisElevation); got != 1 {
		t.Fatalf("elevation = %v, want 1", got)
	}
}

func TestInputSystemWithoutDevicesClearsValues(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnPlayer(t, w, mgl32.Vec3{})
	in, _ := ecs.Get(w, e, component.AxisInputComponent)
	in.Values.Set(input.AxisPitch, 3)

	NewInputSystem(nil, nil).Update(w)
	if !in.Values.IsZero() {
		t.Fatalf("values = %v, want zero", in.Values)
	}
}

func TestFPSCameraSystemMovesTransform(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnPlayer(t, w, mgl32.Vec3{0, 0, 8})
	in, _ := ecs.Get(w, e, component.AxisInputComponent)
	in.Values.Set(input.AxisLongitudinal, 1)

	NewFPSCameraSystem(nil, 1).Update(w)

	tr, _ := ecs.Get(w, e, component.TransformComponent)
	want := mgl32.Vec3{0, 0, 7}
	if !tr.Position.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("position = %v, want %v", tr.Position, want)
	}
	cam, _ := ecs.Get(w, e, component.FPSCameraComponent)
	if cam.State.Position != tr.Position {
		t.Fatalf("state and transform disagree: %v vs %v", cam.State.Position, tr.Position)
	}
}

func TestFPSCameraSystemRotatesTransform(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnPlayer(t, w, mgl32.Vec3{})
	in, _ := ecs.Get(w, e, component.AxisInputComponent)
	in.Values.Set(input.AxisYaw, math.Pi/2*1000)

	NewFPSCameraSystem(nil, 1.0/60).Update(w)

	tr, _ := ecs.Get(w, e, component.TransformComponent)
	forward := tr.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
	if !forward.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-4) {
		t.Fatalf("forward = %v, want +X", forward)
	}
}

func TestRenderSystemCollect(t *testing.T) {
	w := ecs.NewWorld()
	spawnPlayer(t, w, mgl32.Vec3{0, 0, 8})

	light := w.CreateEntity()
	_ = ecs.Add(w, light, component.TransformComponent, &component.Transform{Position: mgl32.Vec3{0, 5, 5}})
	_ = ecs.Add(w, light, component.PointLightComponent, &component.PointLight{Color: color.White, Ambient: 0.2})

	for _, x := range []float32{-1, 0, 1} {
		e := w.CreateEntity()
		_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{Position: mgl32.Vec3{x, 0, 0}})
		_ = ecs.Add(w, e, component.PrimitiveComponent, &component.Primitive{Shape: component.ShapeCube, Size: 0.45})
	}

	r := NewRenderSystem()
	f, ok := r.Frame(w, 800, 600)
	if !ok {
		t.Fatalf("frame not built")
	}
	if f.Light.Position != (mgl32.Vec3{0, 5, 5}) {
		t.Fatalf("light position = %v", f.Light.Position)
	}

	b := r.Collect(w, 800, 600)
	if b.Len() == 0 {
		t.Fatalf("no triangles collected")
	}
}

func TestRenderSystemWithoutCamera(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{})
	_ = ecs.Add(w, e, component.PrimitiveComponent, &component.Primitive{Size: 1})

	r := NewRenderSystem()
	if _, ok := r.Frame(w, 800, 600); ok {
		t.Fatalf("frame built without a camera")
	}
	if b := r.Collect(w, 800, 600); b.Len() != 0 {
		t.Fatalf("collected %d triangles without a camera", b.Len())
	}
}
