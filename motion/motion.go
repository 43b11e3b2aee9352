// Package motion integrates entity movement against the tile grid.
//
// Each tick an entity accelerates from its command, then moves along X and
// resolves collisions, then along Y against the already resolved X. Moving
// more than one tile in a tick can pass through a one tile thick wall, and
// diagonal motion into a concave corner can stick for a tick because the
// axes are resolved one after the other.
package motion

import (
	"fmt"
	"math"

	"github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/geom"
)

// Direction is a horizontal facing or input direction.
type Direction int

const (
	None  Direction = 0
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case None:
		return "none"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// MovementState is either Grounded or Airborne.
type MovementState interface {
	isMovementState()
}

// Grounded entities stand on a tile and may jump.
type Grounded struct{}

// Airborne entities fall under gravity. They may jump once more until
// DoubleJumped is set.
type Airborne struct {
	DoubleJumped bool
}

func (Grounded) isMovementState() {}
func (Airborne) isMovementState() {}

// Command is what drives an entity for one tick: Drive or Impulse.
type Command interface {
	isCommand()
}

// Drive is directional input plus a jump edge.
type Drive struct {
	Dir  Direction
	Jump bool
}

// Impulse replaces the entity's velocity for this tick, ignoring input.
type Impulse struct {
	Vel geom.V2
}

func (Drive) isCommand()   {}
func (Impulse) isCommand() {}

// Body is the physical part of an entity.
type Body struct {
	Pos geom.V2
	Vel geom.V2

	// Offset runs from Pos to the bottom-left corner of the collision box.
	Offset geom.V2
	Size   geom.V2

	Facing Direction
	State  MovementState
}

// NewBody returns a body at rest, facing right. New bodies start airborne
// with their double jump spent so they drop onto the level first.
func NewBody(pos, offset, size geom.V2) Body {
	return Body{
		Pos:    pos,
		Offset: offset,
		Size:   size,
		Facing: Right,
		State:  Airborne{DoubleJumped: true},
	}
}

// NewCharacter returns a body using the shared character box.
func NewCharacter(pos geom.V2) Body {
	return NewBody(pos, config.Character.Offset, config.Character.Size)
}

// AABB returns the collision box in game space.
func (b *Body) AABB() geom.AABB {
	bl := b.Pos.Add(b.Offset)
	return geom.AABB{Min: bl, Max: bl.Add(b.Size)}
}

// Grounded reports whether the body stands on a tile.
func (b *Body) Grounded() bool {
	_, ok := b.State.(Grounded)
	return ok
}

func (b *Body) String() string {
	var mark string
	switch s := b.State.(type) {
	case Grounded:
		mark = "_"
	case Airborne:
		mark = "-"
		if s.DoubleJumped {
			mark = "^"
		}
	default:
		panic(fmt.Sprintf("motion: unhandled movement state %T", s))
	}
	return fmt.Sprintf("pos: (%+5.2f, %+5.2f), vel: (%+5.2f, %+5.2f) |%s|",
		b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, mark)
}

// Step advances b by dt seconds. A nil cmd behaves like a Drive with no input.
func Step(b *Body, grid TileSource, cmd Command, dt float64, p config.PhysicsConfig) {
	if cmd == nil {
		cmd = Drive{}
	}

	var acc geom.V2
	switch c := cmd.(type) {
	case Drive:
		if c.Dir != None {
			b.Facing = c.Dir
		}
		acc.X = float64(c.Dir) * p.Acceleration
		acc.Y = -p.Gravity

		switch s := b.State.(type) {
		case Grounded:
			acc.X -= b.Vel.X * p.GroundFriction
			if c.Jump {
				b.State = Airborne{}
				b.Vel.Y = p.JumpSpeed
				acc.Y = 0
			} else {
				// Standing still: the floor cancels gravity.
				b.Vel.Y = 0
				acc.Y = 0
			}
		case Airborne:
			acc.X -= acc.X * p.AirControlPenalty
			if c.Jump && !s.DoubleJumped {
				b.State = Airborne{DoubleJumped: true}
				b.Vel.Y = p.DoubleJumpSpeed
				acc.Y = 0
			}
		default:
			panic(fmt.Sprintf("motion: unhandled movement state %T", s))
		}
	case Impulse:
		b.Vel = c.Vel
		if c.Vel.Y > 0 {
			b.State = Airborne{}
		}
	default:
		panic(fmt.Sprintf("motion: unhandled command %T", c))
	}
	b.Vel = clampVel(b.Vel, p)

	delta := geom.V2{
		X: 0.5*acc.X*dt*dt + b.Vel.X*dt,
		Y: 0.5*acc.Y*dt*dt + b.Vel.Y*dt,
	}
	b.Vel = clampVel(b.Vel.Add(acc.Scale(dt)), p)

	b.moveX(grid, delta.X, p.CollisionInset)
	b.moveY(grid, delta.Y, p.CollisionInset)
	b.checkLedge(grid)
}

func (b *Body) moveX(grid TileSource, dx, inset float64) {
	tx, hit := Sweep(grid, b.AABB(), AxisX, dx)
	if !hit {
		b.Pos.X += dx
		return
	}
	b.Vel.X = 0
	if dx > 0 {
		b.Pos.X = float64(tx) - (b.Offset.X + b.Size.X) - inset
	} else {
		b.Pos.X = float64(tx+1) - b.Offset.X + inset
	}
}

func (b *Body) moveY(grid TileSource, dy, inset float64) {
	ty, hit := Sweep(grid, b.AABB(), AxisY, dy)
	if !hit {
		b.Pos.Y += dy
		return
	}
	b.Vel.Y = 0
	if dy > 0 {
		b.Pos.Y = float64(ty) - (b.Offset.Y + b.Size.Y) - inset
	} else {
		b.Pos.Y = float64(ty+1) - b.Offset.Y + inset
		b.State = Grounded{}
	}
}

// checkLedge drops a grounded body whose supporting tile is gone. Only an
// in-grid Empty tile counts as gone; the grid edge keeps it standing.
func (b *Body) checkLedge(grid TileSource) {
	switch b.State.(type) {
	case Grounded:
		under, ok := grid.Get(geom.Floor(b.Pos.X), geom.Floor(b.Pos.Y)-1)
		if ok && !under.Obstacle() {
			b.State = Airborne{}
		}
	case Airborne:
	default:
		panic(fmt.Sprintf("motion: unhandled movement state %T", b.State))
	}
}

func clampVel(v geom.V2, p config.PhysicsConfig) geom.V2 {
	return geom.V2{
		X: math.Max(-p.MaxSpeedX, math.Min(p.MaxSpeedX, v.X)),
		Y: math.Max(-p.MaxSpeedY, math.Min(p.MaxSpeedY, v.Y)),
	}
}
