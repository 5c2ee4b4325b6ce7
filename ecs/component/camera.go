package component

import "github.com/milk9111/flycam/camera"

// Camera marks the entity the scene is rendered from.
type Camera struct {
	Lens camera.Lens
}

var CameraComponent = NewComponent[Camera]()

// FPSCamera carries the controller state of a first-person camera.
type FPSCamera struct {
	State camera.State
}

var FPSCameraComponent = NewComponent[FPSCamera]()
