// Package input holds the per-frame keyboard and mouse snapshot the host
// hands to the game.
package input

// Key identifies a keyboard key the game reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyA
	KeyD
	KeyJ
	KeyK
	KeyS
	KeyW
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyCtrl
	KeyAlt
	KeyEnter
	KeyEscape
	KeyF11
	KeyF12
	KeyCount // Must be last - used for array sizing
)

var keyNames = [KeyCount]string{
	KeyNone:   "none",
	KeyA:      "A",
	KeyD:      "D",
	KeyJ:      "J",
	KeyK:      "K",
	KeyS:      "S",
	KeyW:      "W",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyCtrl:   "Ctrl",
	KeyAlt:    "Alt",
	KeyEnter:  "Enter",
	KeyEscape: "Escape",
	KeyF11:    "F11",
	KeyF12:    "F12",
}

func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "unknown"
	}
	return keyNames[k]
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseButtonCount
)

// Digital is the state of one key or button over the last two frames.
type Digital struct {
	Current, Previous bool
}

func (d Digital) Down() bool { return d.Current }
func (d Digital) Pressed() bool { return d.Current && !d.Previous }
func (d Digital) Released() bool { return !d.Current && d.Previous }

// Snapshot is everything the game reads from input in one frame.
type Snapshot struct {
	Keys   [KeyCount]Digital
	Mouse  [MouseButtonCount]Digital
	MouseX int
	MouseY int
}

// Advance starts a new frame: every current state becomes the previous one.
func (s *Snapshot) Advance() {
	for i := range s.Keys {
		s.Keys[i].Previous = s.Keys[i].Current
	}
	for i := range s.Mouse {
		s.Mouse[i].Previous = s.Mouse[i].Current
	}
}

// SetKey records whether k is held in the current frame.
func (s *Snapshot) SetKey(k Key, down bool) {
	if k <= KeyNone || k >= KeyCount {
		return
	}
	s.Keys[k].Current = down
}

// SetMouse records the cursor position and button state in window pixels.
func (s *Snapshot) SetMouse(x, y int, buttons [MouseButtonCount]bool) {
	s.MouseX, s.MouseY = x, y
	for i, down := range buttons {
		s.Mouse[i].Current = down
	}
}

func (s *Snapshot) Down(k Key) bool { return s.key(k).Down() }
func (s *Snapshot) Pressed(k Key) bool { return s.key(k).Pressed() }
func (s *Snapshot) Released(k Key) bool { return s.key(k).Released() }

func (s *Snapshot) key(k Key) Digital {
	if k <= KeyNone || k >= KeyCount {
		return Digital{}
	}
	return s.Keys[k]
}

// MouseDown reports whether button b is held.
func (s *Snapshot) MouseDown(b MouseButton) bool {
	if b < 0 || b >= MouseButtonCount {
		return false
	}
	return s.Mouse[b].Current
}

// Axis folds two opposing keys into -1, 0 or 1. Holding both gives 0.
func (s *Snapshot) Axis(neg, pos Key) int {
	switch n, p := s.Down(neg), s.Down(pos); {
	case p && !n:
		return 1
	case n && !p:
		return -1
	}
	return 0
}

// AxisPressed is Axis for keys that went down this frame.
func (s *Snapshot) AxisPressed(neg, pos Key) int {
	switch n, p := s.Pressed(neg), s.Pressed(pos); {
	case p && !n:
		return 1
	case n && !p:
		return -1
	}
	return 0
}
