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

func CreateEnemy(ecs *ecs.ECS, index int, pos geom.V2, sprites assets.Pair) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	body := motion.NewCharacter(pos)
	components.Enemy.SetValue(enemy, components.EnemyData{Index: index})
	components.Body.SetValue(enemy, body)
	components.Health.SetValue(enemy, combat.NewHealth(cfg.Enemy.Health))
	components.Sprite.SetValue(enemy, components.SpriteData{Pair: sprites})

	obj := NewHurtbox(enemy, body.AABB(), cfg.Render.TileSize, tags.ResolvEnemy)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return enemy
}

// CreateEnemies spawns one enemy per configured spawn point, in order.
func CreateEnemies(ecs *ecs.ECS, sprites assets.Pair) []*donburi.Entry {
	enemies := make([]*donburi.Entry, 0, len(cfg.Enemy.Spawns))
	for i, pos := range cfg.Enemy.Spawns {
		enemies = append(enemies, CreateEnemy(ecs, i, pos, sprites))
	}
	return enemies
}
