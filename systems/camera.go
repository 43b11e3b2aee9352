package systems

import (
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/geom"
	"github.com/automoto/tilerunner/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the player centered, clamped to the level. Right
// after leaving the editor it glides there from the edited view.
func UpdateCamera(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return // no player, nothing to follow
	}
	cam := getCamera(ecs)
	grid := getLevel(ecs).Grid

	from := cam.Origin
	world := geom.V2{X: float64(grid.Width()), Y: float64(grid.Height())}
	cam.Follow(components.Body.Get(playerEntry).Pos, world)

	if getState(ecs).Switched && cfg.Camera.GlideDuration > 0 {
		cam.Glide = gween.New(0, 1, float32(cfg.Camera.GlideDuration), ease.OutQuad)
		cam.GlideFrom = from
	}
	if cam.Glide == nil {
		return
	}

	t, done := cam.Glide.Update(float32(getInput(ecs).Dt))
	if done {
		cam.Glide = nil
		return
	}
	target := cam.Origin
	cam.Origin = cam.GlideFrom.Add(target.Sub(cam.GlideFrom).Scale(float64(t)))
}
