package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// MessageData is a singleton holding the transient status line.
type MessageData struct {
	Text  string
	Timer float64 // Seconds left on screen
	// Fade runs the text opacity from 1 to 0 over the message lifetime.
	Fade    *gween.Tween
	Opacity float64
}

var Message = donburi.NewComponentType[MessageData]()

// Show shows text for duration seconds, restarting the fade.
func (m *MessageData) Show(text string, duration float64) {
	m.Text = text
	m.Timer = duration
	m.Opacity = 1
	m.Fade = gween.New(1, 0, float32(duration), ease.InQuad)
}
