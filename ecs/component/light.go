package component

import "image/color"

// PointLight lights primitives from the entity's transform position.
// Ambient is the fraction of Color applied to faces turned away from it.
type PointLight struct {
	Color   color.Color
	Ambient float32
}

var PointLightComponent = NewComponent[PointLight]()
