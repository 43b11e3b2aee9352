package systems

import (
	"fmt"
	"image"

	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/fonts"
	"github.com/automoto/tilerunner/render"
	"github.com/yohamta/donburi/ecs"
)

// DrawEditorHUD draws the level size box, the help box under it and the
// cursor coordinates next to the mouse.
func DrawEditorHUD(ecs *ecs.ECS, dst *render.PixelBuffer) {
	font := getResources(ecs).Font
	grid := getLevel(ecs).Grid

	size := fmt.Sprintf("%dx%d", grid.Width(), grid.Height())
	corner := drawTextBox(dst, font, size, image.Pt(50, 50))
	drawTextBox(dst, font, cfg.Editor.HelpText, image.Pt(50, corner.Y))

	in := getInput(ecs)
	cam := getCamera(ecs)
	mouse := image.Pt(in.MouseX/cam.Scale, in.MouseY/cam.Scale)
	if !mouse.In(dst.Bounds()) {
		return
	}
	x, y := cursorTile(ecs)
	text := fmt.Sprintf("%d : %d", x, y)
	drawTextBox(dst, font, text, cursorBoxPos(mouse, font.Width(text), font.Height(), dst.Bounds()))
}

// cursorBoxPos places a w by h box past the cursor, flipping it to the
// other side of the cursor on an axis where it would leave the screen.
func cursorBoxPos(mouse image.Point, w, h int, screen image.Rectangle) image.Point {
	m := cfg.Editor.CursorMargin
	p := mouse.Add(image.Pt(m, m))
	if p.X+w > screen.Max.X {
		p.X = mouse.X - w - m
	}
	if p.Y+h > screen.Max.Y {
		p.Y = mouse.Y - h - m
	}
	return p
}

// drawTextBox draws text on a black box with a white border and returns
// the box's bottom-right corner.
func drawTextBox(dst *render.PixelBuffer, font *fonts.GlyphAtlas, text string, p image.Point) image.Point {
	margin := image.Pt(cfg.Editor.BoxMargin, cfg.Editor.BoxMargin)
	end := p.Add(image.Pt(font.Width(text), font.Height())).Add(margin.Mul(2))

	render.Fill(dst, p, end, render.Black)
	render.Outline(dst, p, end, render.White, 1)
	font.DrawString(dst, p.Add(margin), text)
	return end
}

// DrawBorder frames the screen in the editor.
func DrawBorder(ecs *ecs.ECS, dst *render.PixelBuffer) {
	b := dst.Bounds()
	render.Outline(dst, b.Min, b.Max, cfg.Render.OutlineColor, cfg.Editor.BorderThickness)
}
