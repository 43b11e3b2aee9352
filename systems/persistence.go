package systems

import (
	"encoding/json"

	cfg "github.com/automoto/tilerunner/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEditorSave writes the level to its store on Ctrl+S and reports the
// outcome as a status message.
func UpdateEditorSave(ecs *ecs.ECS) {
	if !cfg.Modified(getInput(ecs).Snapshot, cfg.ActionSave) {
		return
	}
	if err := SaveLevel(ecs); err != nil {
		log.Error("Could not save level", "err", err)
		ShowMessage(ecs, "Error saving level")
		return
	}
	ShowMessage(ecs, "Saved")
}

// SaveLevel writes the current level to its store.
func SaveLevel(ecs *ecs.ECS) error {
	level := getLevel(ecs)
	if level.Store == nil {
		return errNoStore
	}
	if err := level.Store.SaveLevel(level.Name, level.Grid); err != nil {
		return err
	}
	log.Info("Level saved", "level", level.Name, "width", level.Grid.Width(), "height", level.Grid.Height())
	return nil
}

// SavedSettings represents the window settings stored on disk
type SavedSettings struct {
	Fullscreen bool `json:"fullscreen"`
	Scale      int  `json:"scale"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.C.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was
// saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return gdataManager.SaveItem("settings", data)
}
