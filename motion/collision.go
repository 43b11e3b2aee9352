package motion

import (
	"github.com/automoto/tilerunner/geom"
	"github.com/automoto/tilerunner/tilemap"
)

// TileSource is the read-only view of the level used for collision.
type TileSource interface {
	Get(x, y int) (tilemap.Tile, bool)
}

// Axis selects the direction of a sweep.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Sweep moves box by delta along axis and returns the index of the first
// tile column (AxisX) or row (AxisY) that blocks it.
//
// The walk starts at the tile holding the leading edge and ends at the tile
// the leading edge would end up in, both included. At every step the two
// tiles at the ends of the perpendicular extent are sampled. A Ground tile
// or a cell outside the grid blocks. A zero delta never blocks.
func Sweep(grid TileSource, box geom.AABB, axis Axis, delta float64) (int, bool) {
	if delta == 0 {
		return 0, false
	}

	var lead, lo, hi float64
	switch axis {
	case AxisX:
		lead, lo, hi = box.Max.X, box.Min.Y, box.Max.Y
		if delta < 0 {
			lead = box.Min.X
		}
	case AxisY:
		lead, lo, hi = box.Max.Y, box.Min.X, box.Max.X
		if delta < 0 {
			lead = box.Min.Y
		}
	default:
		panic("motion: unknown axis")
	}

	step := 1
	if delta < 0 {
		step = -1
	}
	from, to := geom.Floor(lead), geom.Floor(lead+delta)
	a, b := geom.Floor(lo), geom.Floor(hi)

	for i := from; ; i += step {
		if blocked(grid, axis, i, a) || blocked(grid, axis, i, b) {
			return i, true
		}
		if i == to {
			return 0, false
		}
	}
}

func blocked(grid TileSource, axis Axis, along, across int) bool {
	x, y := along, across
	if axis == AxisY {
		x, y = across, along
	}
	t, ok := grid.Get(x, y)
	return !ok || t.Obstacle()
}
