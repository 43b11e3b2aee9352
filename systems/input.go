package systems

import (
	"github.com/automoto/tilerunner/components"
	"github.com/automoto/tilerunner/tags"
	"github.com/yohamta/donburi/ecs"
)

func getInput(ecs *ecs.ECS) *components.InputData {
	return components.Input.Get(components.Input.MustFirst(ecs.World))
}

func getState(ecs *ecs.ECS) *components.StateData {
	return components.State.Get(components.State.MustFirst(ecs.World))
}

func getLevel(ecs *ecs.ECS) *components.LevelData {
	return components.Level.Get(components.Level.MustFirst(ecs.World))
}

func getCamera(ecs *ecs.ECS) *components.CameraData {
	return components.Camera.Get(components.Camera.MustFirst(ecs.World))
}

func getResources(ecs *ecs.ECS) *components.ResourcesData {
	return components.Resources.Get(components.Resources.MustFirst(ecs.World))
}

// UpdateSnapshot records the player position before anything moves this
// tick. Enemies steer by the snapshot. Must run first.
func UpdateSnapshot(ecs *ecs.ECS) {
	snap := components.Snapshot.Get(components.Snapshot.MustFirst(ecs.World))

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		snap.Valid = false
		return
	}
	snap.Player = components.Body.Get(playerEntry).Pos
	snap.Valid = true
}
