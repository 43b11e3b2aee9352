package systems

import (
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every hurtbox onto its body's collision box. The
// space is rebuilt first when the level changed size.
func UpdateObjects(ecs *ecs.ECS) {
	ts := cfg.Render.TileSize
	fitSpace(ecs, ts)

	for e := range components.Object.Iter(ecs.World) {
		if !e.HasComponent(components.Body) {
			continue
		}
		obj := components.Object.Get(e)
		factory.PlaceObject(obj.Object, components.Body.Get(e).AABB(), ts)
	}
}

// fitSpace replaces the space when it no longer covers the grid, moving
// every object over.
func fitSpace(ecs *ecs.ECS, ts int) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	grid := getLevel(ecs).Grid
	space := components.Space.Get(spaceEntry)
	if space.Width() == grid.Width() && space.Height() == grid.Height() {
		return
	}

	next := factory.NewSpace(grid, ts)
	objects := space.Objects()
	space.Remove(objects...)
	next.Add(objects...)
	components.Space.Set(spaceEntry, next)
}
