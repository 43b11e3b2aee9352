package systems

import (
	"image"

	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/geom"
	"github.com/automoto/tilerunner/render"
	"github.com/automoto/tilerunner/tilemap"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel blits the sprite of every visible tile in view.
func DrawLevel(ecs *ecs.ECS, dst *render.PixelBuffer) {
	grid := getLevel(ecs).Grid
	cam := getCamera(ecs)
	ground := getResources(ecs).Sprites.Ground

	view := cam.VisibleTiles().Intersect(image.Rect(0, 0, grid.Width(), grid.Height()))
	for y := view.Min.Y; y < view.Max.Y; y++ {
		for x := view.Min.X; x < view.Max.X; x++ {
			tile := grid.At(x, y)
			if !tile.Visible() {
				continue
			}
			// Tile (x, y) spans up to y+1, so its top-left corner is one tile above.
			p := cam.ToScreen(geom.V2{X: float64(x), Y: float64(y)})
			render.BlitAlpha(dst, tileSprite(tile, ground), p.Sub(image.Pt(0, cam.TileSize)))
		}
	}
}

func tileSprite(t tilemap.Tile, ground *render.PixelBuffer) *render.PixelBuffer {
	switch t {
	case tilemap.Ground:
		return ground
	}
	panic("systems: no sprite for tile " + t.String())
}

// DrawGrid draws the inner grid lines of the level.
func DrawGrid(ecs *ecs.ECS, dst *render.PixelBuffer) {
	grid := getLevel(ecs).Grid
	cam := getCamera(ecs)
	w, h := float64(grid.Width()), float64(grid.Height())

	for y := 1; y < grid.Height(); y++ {
		p0 := cam.ToScreen(geom.V2{X: 0, Y: float64(y)})
		p1 := cam.ToScreen(geom.V2{X: w, Y: float64(y)})
		if p0.Y < 0 || p0.Y >= dst.Height() {
			continue
		}
		p0.X, p1.X = clampInt(p0.X, 0, dst.Width()), clampInt(p1.X, 0, dst.Width())
		render.Line(dst, p0, p1, cfg.Render.GridColor)
	}
	for x := 1; x < grid.Width(); x++ {
		p0 := cam.ToScreen(geom.V2{X: float64(x), Y: h})
		p1 := cam.ToScreen(geom.V2{X: float64(x), Y: 0})
		if p0.X < 0 || p0.X >= dst.Width() {
			continue
		}
		p0.Y, p1.Y = clampInt(p0.Y, 0, dst.Height()), clampInt(p1.Y, 0, dst.Height())
		render.Line(dst, p0, p1, cfg.Render.GridColor)
	}
}

// DrawLevelOutline outlines the whole level.
func DrawLevelOutline(ecs *ecs.ECS, dst *render.PixelBuffer) {
	grid := getLevel(ecs).Grid
	r := getCamera(ecs).BoxToScreen(geom.AABB{
		Max: geom.V2{X: float64(grid.Width()), Y: float64(grid.Height())},
	})
	render.Outline(dst, r.Min, r.Max, cfg.Render.OutlineColor, 1)
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
