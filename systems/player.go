package systems

import (
	"github.com/automoto/tilerunner/combat"
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/motion"
	"github.com/automoto/tilerunner/render"
	"github.com/automoto/tilerunner/systems/factory"
	"github.com/automoto/tilerunner/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRestart respawns the player on Escape.
func UpdateRestart(ecs *ecs.ECS) {
	if !cfg.Pressed(getInput(ecs).Snapshot, cfg.ActionRestart) {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	factory.ResetPlayer(playerEntry)
	log.Info("Player restarted")
}

// UpdatePlayer moves the player from keyboard input, or from knockback
// while knocked.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	in := getInput(ecs)
	body := components.Body.Get(playerEntry)

	cmd, knocked := combat.Recover(components.Health.Get(playerEntry), in.Dt, cfg.Combat)
	if !knocked {
		cmd = motion.Drive{
			Dir: motion.Direction(cfg.Axis(in.Snapshot, cfg.ActionMoveLeft, cfg.ActionMoveRight)),
			// Ctrl+K switches mode and must not jump on the way out.
			Jump: cfg.Pressed(in.Snapshot, cfg.ActionJump) && !in.Down(cfg.Input.Modifier),
		}
	}
	motion.Step(body, getLevel(ecs).Grid, cmd, in.Dt, cfg.Physics)
}

// DrawPlayer draws the player sprite centered on its position, then its
// collision box.
func DrawPlayer(ecs *ecs.ECS, dst *render.PixelBuffer) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	cam := getCamera(ecs)
	body := components.Body.Get(playerEntry)
	sprite := components.Sprite.Get(playerEntry)

	drawCentered(dst, cam, sprite.For(body.Facing), body.Pos)
	drawCollisionBox(dst, cam, body.AABB())
}
