// Package tilemap stores the level as a grid of tiles and reads and writes
// it in the level file format.
//
// Row 0 is the bottom row of the level, matching game space where Y points up.
package tilemap

import (
	"fmt"
	"slices"
)

// Tile is the kind of a single grid cell.
type Tile uint8

const (
	Empty Tile = iota
	Ground
)

// tileKinds is one past the largest valid Tile.
const tileKinds = 2

// Visible reports whether the tile is drawn.
func (t Tile) Visible() bool {
	switch t {
	case Empty:
		return false
	case Ground:
		return true
	}
	panic(fmt.Sprintf("tilemap: unknown tile %d", t))
}

// Obstacle reports whether the tile blocks movement.
func (t Tile) Obstacle() bool {
	switch t {
	case Empty:
		return false
	case Ground:
		return true
	}
	panic(fmt.Sprintf("tilemap: unknown tile %d", t))
}

func (t Tile) String() string {
	switch t {
	case Empty:
		return "empty"
	case Ground:
		return "ground"
	}
	return fmt.Sprintf("Tile(%d)", uint8(t))
}

// Grid is a resizable width x height array of tiles in row-major order.
type Grid struct {
	width, height int
	tiles         []Tile
}

// New returns an all-Empty grid. Non-positive dimensions panic.
func New(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tilemap: invalid grid size %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

func (g *Grid) Width() int { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the tile at (x, y) and false when the cell is outside the grid.
func (g *Grid) Get(x, y int) (Tile, bool) {
	if !g.contains(x, y) {
		return Empty, false
	}
	return g.tiles[y*g.width+x], true
}

// At is Get for callers that already know the cell exists. It panics otherwise.
func (g *Grid) At(x, y int) Tile {
	if !g.contains(x, y) {
		panic(fmt.Sprintf("tilemap: cell (%d, %d) out of bounds %dx%d", x, y, g.width, g.height))
	}
	return g.tiles[y*g.width+x]
}

// Set writes a tile. Cells outside the grid are ignored.
func (g *Grid) Set(x, y int, t Tile) {
	if !g.contains(x, y) {
		return
	}
	g.tiles[y*g.width+x] = t
}

// Resize changes the grid dimensions, keeping every tile that is still in
// range at the same (x, y). New cells are Empty.
//
// Rows are shifted in place by rotating the tail of the backing array, so a
// width change never allocates a second grid.
func (g *Grid) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tilemap: invalid resize to %dx%d", width, height))
	}

	oldWidth := g.width
	g.width = width
	switch {
	case width > oldWidth:
		d := width - oldWidth
		g.tiles = resizeTiles(g.tiles, width*g.height)
		for cursor := oldWidth; cursor < len(g.tiles); cursor += width {
			rotateRight(g.tiles[cursor:], d)
		}
	case width < oldWidth:
		d := oldWidth - width
		for cursor := width; cursor < len(g.tiles); cursor += width {
			rotateLeft(g.tiles[cursor:], d)
		}
		g.tiles = resizeTiles(g.tiles, width*g.height)
	}

	if height != g.height {
		g.tiles = resizeTiles(g.tiles, width*height)
		g.height = height
	}
}

// resizeTiles truncates s or extends it with Empty tiles.
func resizeTiles(s []Tile, n int) []Tile {
	if n <= len(s) {
		clear(s[n:])
		return s[:n]
	}
	return append(s, make([]Tile, n-len(s))...)
}

func rotateLeft(s []Tile, k int) {
	if len(s) == 0 {
		return
	}
	k %= len(s)
	slices.Reverse(s[:k])
	slices.Reverse(s[k:])
	slices.Reverse(s)
}

func rotateRight(s []Tile, k int) {
	if len(s) == 0 {
		return
	}
	rotateLeft(s, len(s)-k%len(s))
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	return &Grid{width: g.width, height: g.height, tiles: slices.Clone(g.tiles)}
}

// Equal reports whether two grids have the same size and tiles.
func (g *Grid) Equal(o *Grid) bool {
	return g.width == o.width && g.height == o.height && slices.Equal(g.tiles, o.tiles)
}

// Count returns how many cells hold t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, c := range g.tiles {
		if c == t {
			n++
		}
	}
	return n
}
