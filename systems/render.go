package systems

import (
	"image"

	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/geom"
	"github.com/automoto/tilerunner/render"
	"github.com/yohamta/donburi/ecs"
)

// Renderer draws part of the world into the frame's draw buffer.
type Renderer func(ecs *ecs.ECS, dst *render.PixelBuffer)

// DrawBackground clears the frame.
func DrawBackground(ecs *ecs.ECS, dst *render.PixelBuffer) {
	render.Clear(dst, cfg.Render.Background)
}

// drawCentered blits img with its center half a tile up and left of pos.
func drawCentered(dst *render.PixelBuffer, cam *components.CameraData, img *render.PixelBuffer, pos geom.V2) {
	half := cam.TileSize / 2
	render.BlitAlpha(dst, img, cam.ToScreen(pos).Sub(image.Pt(half, half)))
}

// DrawHitbox shades the active attack area and draws the hook sprite.
func DrawHitbox(ecs *ecs.ECS, dst *render.PixelBuffer) {
	for e := range components.Hitbox.Iter(ecs.World) {
		hitbox := components.Hitbox.Get(e)
		if !hitbox.Active {
			continue
		}
		cam := getCamera(ecs)
		r := cam.BoxToScreen(hitbox.Box)
		render.Fill(dst, r.Min, r.Max, cfg.Render.HitboxColor)
		render.BlitAlpha(dst, getResources(ecs).Sprites.Hook, cam.ToScreen(hitbox.Hook))
	}
}
