package systems

import (
	"image"

	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/geom"
	"github.com/automoto/tilerunner/input"
	"github.com/automoto/tilerunner/tilemap"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEditorResize grows or shrinks the level by one tile per arrow key
// press. Sizes below one tile are ignored.
func UpdateEditorResize(ecs *ecs.ECS) {
	in := getInput(ecs).Snapshot
	dw := cfg.AxisPressed(in, cfg.ActionShrinkWidth, cfg.ActionGrowWidth)
	dh := cfg.AxisPressed(in, cfg.ActionShrinkHeight, cfg.ActionGrowHeight)
	if dw == 0 && dh == 0 {
		return
	}

	grid := getLevel(ecs).Grid
	w, h := grid.Width()+dw, grid.Height()+dh
	if w <= 0 || h <= 0 {
		return
	}
	grid.Resize(w, h)
	log.Debug("Level resized", "width", w, "height", h)
}

// UpdateEditorPan moves the camera with WASD unless the modifier is held.
func UpdateEditorPan(ecs *ecs.ECS) {
	in := getInput(ecs)
	if in.Down(cfg.Input.Modifier) {
		return
	}
	dir := geom.V2{
		X: float64(cfg.Axis(in.Snapshot, cfg.ActionPanLeft, cfg.ActionPanRight)),
		Y: float64(cfg.Axis(in.Snapshot, cfg.ActionPanDown, cfg.ActionPanUp)),
	}
	getCamera(ecs).Pan(dir.Scale(cfg.Editor.CameraSpeed * in.Dt))
}

// UpdateEditorPaint sets the tile under the cursor: ground with the left
// button, empty with the right one.
func UpdateEditorPaint(ecs *ecs.ECS) {
	in := getInput(ecs)
	var tile tilemap.Tile
	switch {
	case in.MouseDown(input.MouseLeft):
		tile = tilemap.Ground
	case in.MouseDown(input.MouseRight):
		tile = tilemap.Empty
	default:
		return
	}

	x, y := cursorTile(ecs)
	grid := getLevel(ecs).Grid
	if _, ok := grid.Get(x, y); ok {
		grid.Set(x, y, tile)
	}
}

// cursorTile returns the tile under the mouse.
func cursorTile(ecs *ecs.ECS) (int, int) {
	in := getInput(ecs)
	p := getCamera(ecs).ToGame(image.Pt(in.MouseX, in.MouseY))
	return geom.Floor(p.X), geom.Floor(p.Y)
}
