package factory

import (
	"github.com/automoto/tilerunner/archetypes"
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/tilemap"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LoadLevel reads name from store. Any failure, including a nil store,
// yields an empty grid of the configured default size.
func LoadLevel(store tilemap.Store, name string) *tilemap.Grid {
	if store != nil {
		grid, err := store.LoadLevel(name)
		if err == nil {
			return grid
		}
		log.Warn("Could not load level, starting with an empty one", "level", name, "err", err)
	}
	return tilemap.New(cfg.Level.DefaultWidth, cfg.Level.DefaultHeight)
}

func CreateLevel(ecs *ecs.ECS, store tilemap.Store, name string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Grid:  LoadLevel(store, name),
		Name:  name,
		Store: store,
	})
	return level
}
