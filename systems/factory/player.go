package factory

import (
	"github.com/automoto/tilerunner/archetypes"
	"github.com/automoto/tilerunner/assets"
	"github.com/automoto/tilerunner/combat"
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/geom"
	"github.com/automoto/tilerunner/motion"
	"github.com/automoto/tilerunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, spawn geom.V2, sprites assets.Pair) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{Spawn: spawn})
	ResetPlayer(player)
	components.Sprite.SetValue(player, components.SpriteData{Pair: sprites})

	body := components.Body.Get(player)
	obj := NewHurtbox(player, body.AABB(), cfg.Render.TileSize, tags.ResolvPlayer)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}

// ResetPlayer puts the player back at its spawn with full health.
func ResetPlayer(player *donburi.Entry) {
	spawn := components.Player.Get(player).Spawn
	components.Body.SetValue(player, motion.NewCharacter(spawn))
	components.Health.SetValue(player, combat.NewHealth(cfg.Player.Health))
	components.MeleeAttack.SetValue(player, combat.Attack{})
	components.Hitbox.SetValue(player, components.HitboxData{})
}
