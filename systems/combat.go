package systems

import (
	"github.com/automoto/tilerunner/combat"
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/geom"
	"github.com/automoto/tilerunner/tags"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerAttack runs the attack timer and applies the hitbox to every
// enemy it overlaps. Hurtboxes in the space still hold last tick's
// positions, so the outcome does not depend on update order.
func UpdatePlayerAttack(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	in := getInput(ecs)
	attack := components.MeleeAttack.Get(playerEntry)
	hitbox := components.Hitbox.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	attack.Tick(cfg.Pressed(in.Snapshot, cfg.ActionAttack), in.Dt, cfg.Combat)
	hitbox.Active = attack.Active()
	if !hitbox.Active {
		return
	}

	box := body.AABB()
	reach := geom.V2{X: float64(body.Facing) * cfg.Combat.AttackReach}
	hitbox.Hitbox = combat.AttackBox(box, body.Facing, cfg.Combat.AttackReach)
	hitbox.Hook = box.TopLeft().Add(reach)

	// The player's own hurtbox, shifted by the reach, covers the hitbox.
	ts := float64(cfg.Render.TileSize)
	playerObject := components.Object.Get(playerEntry).Object
	check := playerObject.Check(reach.X*ts, reach.Y*ts, tags.ResolvEnemy)
	if check == nil {
		return
	}
	for _, obj := range check.Objects {
		enemyEntry, ok := obj.Data.(*donburi.Entry)
		if !ok || !enemyEntry.Valid() {
			continue
		}
		health := components.Health.Get(enemyEntry)
		if combat.Strike(hitbox.Hitbox, health, objectBox(obj, ts), cfg.Combat) {
			enemy := components.Enemy.Get(enemyEntry)
			enemy.Struck = true
			log.Debug("Enemy hit", "enemy", enemy.Index, "hp", health.HP)
		}
	}
}

// objectBox converts a broad-phase object back to game space.
func objectBox(obj *resolv.Object, ts float64) geom.AABB {
	bl := geom.V2{X: obj.X / ts, Y: obj.Y / ts}
	return geom.AABB{Min: bl, Max: bl.Add(geom.V2{X: obj.W / ts, Y: obj.H / ts})}
}
