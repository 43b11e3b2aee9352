package factory

import (
	"github.com/automoto/tilerunner/archetypes"
	"github.com/automoto/tilerunner/components"
	"github.com/automoto/tilerunner/geom"
	"github.com/automoto/tilerunner/tilemap"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewSpace sizes a broad-phase space to cover grid, one cell per tile.
func NewSpace(grid *tilemap.Grid, tileSize int) *resolv.Space {
	return resolv.NewSpace(grid.Width()*tileSize, grid.Height()*tileSize, tileSize, tileSize)
}

func CreateSpace(ecs *ecs.ECS, grid *tilemap.Grid, tileSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, NewSpace(grid, tileSize))
	return space
}

// NewHurtbox creates a broad-phase object for entry covering box.
func NewHurtbox(entry *donburi.Entry, box geom.AABB, tileSize int, tag string) *resolv.Object {
	w, h := box.Width()*float64(tileSize), box.Height()*float64(tileSize)
	obj := resolv.NewObject(box.Left()*float64(tileSize), box.Bottom()*float64(tileSize), w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry
	return obj
}

// PlaceObject moves obj onto box, converting tiles to pixels, and
// refreshes its cells.
func PlaceObject(obj *resolv.Object, box geom.AABB, tileSize int) {
	ts := float64(tileSize)
	obj.X, obj.Y = box.Left()*ts, box.Bottom()*ts
	obj.W, obj.H = box.Width()*ts, box.Height()*ts
	obj.Update()
}
