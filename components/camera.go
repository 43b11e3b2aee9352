package components

import (
	"github.com/automoto/tilerunner/camera"
	"github.com/automoto/tilerunner/geom"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	*camera.Transform

	// Glide eases the origin from GlideFrom to the follow target after
	// switching to play mode. Nil when not gliding.
	Glide     *gween.Tween
	GlideFrom geom.V2
}

var Camera = donburi.NewComponentType[CameraData]()
