package components

import "github.com/yohamta/donburi"

// Mode is the top-level game state.
type Mode int

const (
	ModePlaying Mode = iota
	ModeEditor
)

func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "Playing"
	case ModeEditor:
		return "LevelEditor"
	}
	return "unknown"
}

type StateData struct {
	Mode Mode
	// Switched is set on the tick the mode changed.
	Switched bool
}

var State = donburi.NewComponentType[StateData]()
