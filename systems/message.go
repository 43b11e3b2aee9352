package systems

import (
	"image"

	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/render"
	"github.com/yohamta/donburi/ecs"
)

func getMessage(ecs *ecs.ECS) *components.MessageData {
	return components.Message.Get(components.Message.MustFirst(ecs.World))
}

// ShowMessage puts text on screen for the configured duration.
func ShowMessage(ecs *ecs.ECS, text string) {
	getMessage(ecs).Show(text, cfg.Editor.MessageDuration)
}

// UpdateMessage counts the status message down and fades it out.
func UpdateMessage(ecs *ecs.ECS) {
	msg := getMessage(ecs)
	if msg.Timer <= 0 {
		return
	}
	dt := getInput(ecs).Dt
	msg.Timer -= dt
	if msg.Fade != nil {
		o, _ := msg.Fade.Update(float32(dt))
		msg.Opacity = float64(o)
	}
}

// DrawMessage draws the status message in the top-left corner.
func DrawMessage(ecs *ecs.ECS, dst *render.PixelBuffer) {
	msg := getMessage(ecs)
	if msg.Timer <= 0 {
		return
	}
	font := getResources(ecs).Font
	font.DrawStringColor(dst, image.Pt(10, 10), msg.Text, render.Opacity(render.White, msg.Opacity))
}
