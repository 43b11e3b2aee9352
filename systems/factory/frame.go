package factory

import (
	"github.com/automoto/tilerunner/archetypes"
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/input"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFrame spawns the singleton holding input, game mode, the status
// message and shared assets.
func CreateFrame(ecs *ecs.ECS, res components.ResourcesData) *donburi.Entry {
	frame := archetypes.Frame.Spawn(ecs)

	components.Input.SetValue(frame, components.InputData{Snapshot: &input.Snapshot{}})
	mode := components.ModePlaying
	if cfg.Editor.StartInEditor {
		mode = components.ModeEditor
	}
	components.State.SetValue(frame, components.StateData{Mode: mode})
	components.Resources.SetValue(frame, res)

	return frame
}
