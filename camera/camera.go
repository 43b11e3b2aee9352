// Package camera maps between game space (tiles, Y up) and the pixels of
// the draw buffer (Y down).
package camera

import (
	"image"
	"math"

	"github.com/automoto/tilerunner/geom"
)

// Transform is the game to screen mapping for one draw buffer.
type Transform struct {
	GameToScreen geom.Mat2
	ScreenToGame geom.Mat2

	// Origin is the game-space point shown at the bottom-left corner of the buffer.
	Origin geom.V2

	TileSize int
	// Scale is how many window pixels one draw buffer pixel covers.
	Scale int

	// Width and Height are the draw buffer size in pixels.
	Width, Height int
}

// New returns a transform for tiles of tileSize pixels, upscaled by scale.
func New(tileSize, scale int) *Transform {
	t := &Transform{TileSize: tileSize, Scale: max(scale, 1)}
	t.GameToScreen = geom.Diag(float64(tileSize), -float64(tileSize))
	t.ScreenToGame = t.GameToScreen.Inverse()
	return t
}

// SetViewport records the draw buffer size.
func (t *Transform) SetViewport(width, height int) {
	t.Width, t.Height = width, height
}

// View returns the size of the visible area in tiles.
func (t *Transform) View() geom.V2 {
	return geom.V2{
		X: float64(t.Width) / float64(t.TileSize),
		Y: float64(t.Height) / float64(t.TileSize),
	}
}

// ToScreen maps a game-space point to a draw buffer pixel.
func (t *Transform) ToScreen(p geom.V2) image.Point {
	d := t.GameToScreen.MulV(p.Sub(t.Origin))
	return image.Pt(geom.Floor(d.X), geom.Floor(float64(t.Height)+d.Y))
}

// BoxToScreen maps a game-space box to the pixel rectangle it covers.
func (t *Transform) BoxToScreen(b geom.AABB) image.Rectangle {
	return image.Rectangle{
		Min: t.ToScreen(b.TopLeft()),
		Max: t.ToScreen(geom.V2{X: b.Max.X, Y: b.Min.Y}),
	}
}

// ToGame maps a window pixel, such as the mouse position, back to game space.
func (t *Transform) ToGame(window image.Point) geom.V2 {
	s := geom.V2{
		X: float64(window.X) / float64(t.Scale),
		Y: float64(window.Y)/float64(t.Scale) - float64(t.Height),
	}
	return t.ScreenToGame.MulV(s).Add(t.Origin)
}

// Follow centers the view on target, keeping it inside a world of the
// given size in tiles. A world smaller than the view pins the origin at 0.
func (t *Transform) Follow(target, world geom.V2) {
	view := t.View()
	t.Origin = geom.V2{
		X: clamp(target.X-view.X/2, 0, world.X-view.X),
		Y: clamp(target.Y-view.Y/2, 0, world.Y-view.Y),
	}
}

// Pan moves the origin without any bounds.
func (t *Transform) Pan(d geom.V2) {
	t.Origin = t.Origin.Add(d)
}

// VisibleTiles returns the tile index range touched by the view. The
// result is not clipped to any grid.
func (t *Transform) VisibleTiles() image.Rectangle {
	view := t.View()
	return image.Rect(
		geom.Floor(t.Origin.X),
		geom.Floor(t.Origin.Y),
		int(math.Ceil(t.Origin.X+view.X))+1,
		int(math.Ceil(t.Origin.Y+view.Y))+1,
	)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, math.Max(lo, hi)))
}
