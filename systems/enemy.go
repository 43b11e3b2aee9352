package systems

import (
	"slices"

	"github.com/automoto/tilerunner/combat"
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/motion"
	"github.com/automoto/tilerunner/render"
	"github.com/automoto/tilerunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// enemiesInOrder returns the enemies sorted by spawn index.
func enemiesInOrder(ecs *ecs.ECS) []*donburi.Entry {
	var enemies []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})
	slices.SortFunc(enemies, func(a, b *donburi.Entry) int {
		return components.Enemy.Get(a).Index - components.Enemy.Get(b).Index
	})
	return enemies
}

// UpdateEnemies moves every living enemy, in spawn order.
func UpdateEnemies(ecs *ecs.ECS) {
	in := getInput(ecs)
	snap := components.Snapshot.Get(components.Snapshot.MustFirst(ecs.World))
	grid := getLevel(ecs).Grid

	for _, e := range enemiesInOrder(ecs) {
		health := components.Health.Get(e)
		if !health.Alive() {
			continue
		}
		body := components.Body.Get(e)
		motion.Step(body, grid, enemyCommand(e, health, body, snap, in.Dt), in.Dt, cfg.Physics)
	}
}

// enemyCommand picks what drives an enemy this tick. An enemy hit this
// tick stands still; its knockback impulse comes next tick.
func enemyCommand(e *donburi.Entry, health *combat.Health, body *motion.Body, snap *components.SnapshotData, dt float64) motion.Command {
	enemy := components.Enemy.Get(e)
	if enemy.Struck {
		enemy.Struck = false
		return motion.Drive{}
	}
	cmd, knocked := combat.Recover(health, dt, cfg.Combat)
	if !knocked {
		cmd = chase(body, snap)
	}
	return cmd
}

// chase walks toward the player while it is far away, jumping when the
// player is higher up, and stands still once close.
func chase(body *motion.Body, snap *components.SnapshotData) motion.Command {
	if !snap.Valid || body.Pos.DistSq(snap.Player) < cfg.Enemy.ChaseDistanceSq {
		return motion.Drive{}
	}
	var dir motion.Direction
	switch {
	case body.Pos.X < snap.Player.X:
		dir = motion.Right
	case body.Pos.X > snap.Player.X:
		dir = motion.Left
	}
	return motion.Drive{Dir: dir, Jump: body.Pos.Y < snap.Player.Y}
}

// DrawEnemies draws each enemy and its collision box. Knocked enemies
// blink.
func DrawEnemies(ecs *ecs.ECS, dst *render.PixelBuffer) {
	cam := getCamera(ecs)
	for _, e := range enemiesInOrder(ecs) {
		body := components.Body.Get(e)
		if !components.Health.Get(e).Hidden(cfg.Combat.FlickerRate) {
			drawCentered(dst, cam, components.Sprite.Get(e).For(body.Facing), body.Pos)
		}
		drawCollisionBox(dst, cam, body.AABB())
	}
}

