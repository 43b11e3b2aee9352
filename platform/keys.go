package platform

import (
	"github.com/automoto/tilerunner/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyMap lists the ebiten keys behind each game key. Ctrl and Alt match
// either side.
var keyMap = [input.KeyCount][]ebiten.Key{
	input.KeyA:      {ebiten.KeyA},
	input.KeyD:      {ebiten.KeyD},
	input.KeyJ:      {ebiten.KeyJ},
	input.KeyK:      {ebiten.KeyK},
	input.KeyS:      {ebiten.KeyS},
	input.KeyW:      {ebiten.KeyW},
	input.KeyLeft:   {ebiten.KeyArrowLeft},
	input.KeyRight:  {ebiten.KeyArrowRight},
	input.KeyUp:     {ebiten.KeyArrowUp},
	input.KeyDown:   {ebiten.KeyArrowDown},
	input.KeyCtrl:   {ebiten.KeyControlLeft, ebiten.KeyControlRight},
	input.KeyAlt:    {ebiten.KeyAltLeft, ebiten.KeyAltRight},
	input.KeyEnter:  {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	input.KeyEscape: {ebiten.KeyEscape},
	input.KeyF11:    {ebiten.KeyF11},
	input.KeyF12:    {ebiten.KeyF12},
}

var mouseMap = [input.MouseButtonCount]ebiten.MouseButton{
	input.MouseLeft:   ebiten.MouseButtonLeft,
	input.MouseRight:  ebiten.MouseButtonRight,
	input.MouseMiddle: ebiten.MouseButtonMiddle,
}

// pollInput starts a new frame in s and fills it from ebiten.
func pollInput(s *input.Snapshot) {
	s.Advance()
	for k, keys := range keyMap {
		down := false
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				down = true
				break
			}
		}
		s.SetKey(input.Key(k), down)
	}

	var buttons [input.MouseButtonCount]bool
	for b, mb := range mouseMap {
		buttons[b] = ebiten.IsMouseButtonPressed(mb)
	}
	x, y := ebiten.CursorPosition()
	s.SetMouse(x, y, buttons)
}
