package systems

import (
	"github.com/automoto/tilerunner/components"
	"github.com/automoto/tilerunner/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths removes enemies with no hit points left from the world and
// the broad-phase space.
func UpdateDeaths(ecs *ecs.ECS) {
	var dead []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Health.Get(e).Alive() {
			dead = append(dead, e)
		}
	})
	if len(dead) == 0 {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	for _, e := range dead {
		if ok {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
		}
		log.Info("Enemy defeated", "enemy", components.Enemy.Get(e).Index)
		ecs.World.Remove(e.Entity())
	}
}
