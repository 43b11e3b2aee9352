package systems

import (
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMode switches between play and edit on Ctrl+K. The switch takes
// effect on the next tick, so the key never reaches the other mode's
// systems. Must run last.
func UpdateMode(ecs *ecs.ECS) {
	state := getState(ecs)
	state.Switched = false

	if !cfg.Modified(getInput(ecs).Snapshot, cfg.ActionToggleEditor) {
		return
	}
	switch state.Mode {
	case components.ModePlaying:
		state.Mode = components.ModeEditor
	case components.ModeEditor:
		state.Mode = components.ModePlaying
	}
	state.Switched = true
	log.Debug("Mode switched", "mode", state.Mode)
}
