package systems

import (
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/geom"
	"github.com/automoto/tilerunner/render"
)

// drawCollisionBox outlines a collision box when debug boxes are on.
func drawCollisionBox(dst *render.PixelBuffer, cam *components.CameraData, box geom.AABB) {
	if !cfg.Render.DebugBoxes {
		return
	}
	r := cam.BoxToScreen(box)
	render.Outline(dst, r.Min, r.Max, cfg.Render.OutlineColor, 1)
}
