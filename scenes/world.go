package scenes

import (
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/systems"
	"github.com/automoto/tilerunner/systems/factory"
	"github.com/automoto/tilerunner/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldOptions is what NewWorld needs from outside the game.
type WorldOptions struct {
	Store     tilemap.Store // nil runs without loading or saving
	LevelName string
	Resources components.ResourcesData
}

// NewWorld creates the level, camera, player, enemies and frame singletons.
func NewWorld(opts WorldOptions) donburi.World {
	world := donburi.NewWorld()
	e := ecs.NewECS(world)

	level := factory.CreateLevel(e, opts.Store, opts.LevelName)
	factory.CreateSpace(e, components.Level.Get(level).Grid, cfg.Render.TileSize)
	factory.CreateCamera(e, cfg.Render.TileSize, cfg.Render.Scale)
	factory.CreateFrame(e, opts.Resources)

	sprites := opts.Resources.Sprites
	factory.CreatePlayer(e, cfg.Player.Spawn, sprites.Player)
	factory.CreateEnemies(e, sprites.Enemy)

	return world
}

// PlatformerScene runs the game.
type PlatformerScene struct {
	scene
}

func NewPlatformerScene(world donburi.World) *PlatformerScene {
	e := ecs.NewECS(world)

	e.AddSystem(systems.UpdateSnapshot)
	e.AddSystem(systems.UpdateRestart)
	e.AddSystem(systems.UpdatePlayerAttack)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateEnemies)
	e.AddSystem(systems.UpdateDeaths)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateMode)

	return &PlatformerScene{scene{
		ecs: e,
		renderers: []systems.Renderer{
			systems.DrawBackground,
			systems.DrawLevel,
			systems.DrawPlayer,
			systems.DrawHitbox,
			systems.DrawEnemies,
		},
	}}
}
