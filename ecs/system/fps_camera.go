package system

import (
	"github.com/milk9111/flycam/camera"
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
)

// FPSCameraSystem advances every first-person camera by one fixed tick and
// mirrors the result onto its transform.
type FPSCameraSystem struct {
	controller *camera.Controller
	dt         float64
}

func NewFPSCameraSystem(controller *camera.Controller, dt float64) *FPSCameraSystem {
	if controller == nil {
		controller = camera.NewController()
	}
	return &FPSCameraSystem{controller: controller, dt: dt}
}

func (s *FPSCameraSystem) Controller() *camera.Controller {
	return s.controller
}

func (s *FPSCameraSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach3(w, component.FPSCameraComponent, component.AxisInputComponent, component.TransformComponent,
		func(_ ecs.Entity, cam *component.FPSCamera, in *component.AxisInput, t *component.Transform) {
			s.controller.Update(&cam.State, in.Values, s.dt)
			t.Position = cam.State.Position
			t.Rotation = cam.State.Orientation
		})
}
