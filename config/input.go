package config

import "github.com/automoto/tilerunner/input"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionRestart
	ActionToggleEditor // with Modifier held
	ActionSave         // with Modifier held
	ActionToggleScale
	ActionFullscreen
	ActionPanLeft
	ActionPanRight
	ActionPanUp
	ActionPanDown
	ActionGrowWidth
	ActionShrinkWidth
	ActionGrowHeight
	ActionShrinkHeight
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID][]input.Key
	// Modifier turns K into the editor toggle and S into save.
	Modifier input.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Modifier: input.KeyCtrl,
		Bindings: map[ActionID][]input.Key{
			ActionMoveLeft:     {input.KeyA},
			ActionMoveRight:    {input.KeyD},
			ActionJump:         {input.KeyK},
			ActionAttack:       {input.KeyJ},
			ActionRestart:      {input.KeyEscape},
			ActionToggleEditor: {input.KeyK},
			ActionSave:         {input.KeyS},
			ActionToggleScale:  {input.KeyF12},
			ActionFullscreen:   {input.KeyF11},
			ActionPanLeft:      {input.KeyA},
			ActionPanRight:     {input.KeyD},
			ActionPanUp:        {input.KeyW},
			ActionPanDown:      {input.KeyS},
			ActionGrowWidth:    {input.KeyRight},
			ActionShrinkWidth:  {input.KeyLeft},
			ActionGrowHeight:   {input.KeyUp},
			ActionShrinkHeight: {input.KeyDown},
		},
	}
}

// Down reports whether any key bound to action is held.
func Down(s *input.Snapshot, action ActionID) bool {
	for _, k := range Input.Bindings[action] {
		if s.Down(k) {
			return true
		}
	}
	return false
}

// Pressed reports whether any key bound to action went down this frame.
func Pressed(s *input.Snapshot, action ActionID) bool {
	for _, k := range Input.Bindings[action] {
		if s.Pressed(k) {
			return true
		}
	}
	return false
}

// Axis folds two opposing actions into -1, 0 or 1.
func Axis(s *input.Snapshot, neg, pos ActionID) int {
	n, p := Down(s, neg), Down(s, pos)
	switch {
	case p && !n:
		return 1
	case n && !p:
		return -1
	}
	return 0
}

// AxisPressed is Axis over keys that went down this frame.
func AxisPressed(s *input.Snapshot, neg, pos ActionID) int {
	n, p := Pressed(s, neg), Pressed(s, pos)
	switch {
	case p && !n:
		return 1
	case n && !p:
		return -1
	}
	return 0
}

// Modified reports whether action was pressed with the modifier held.
func Modified(s *input.Snapshot, action ActionID) bool {
	return s.Down(Input.Modifier) && Pressed(s, action)
}
