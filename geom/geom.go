// Package geom holds the small amount of 2D math shared by the simulation
// and the renderer. Game space is measured in tiles with Y pointing up.
package geom

import (
	"fmt"
	"math"
)

// V2 is a point or displacement in game space.
type V2 struct {
	X, Y float64
}

func (v V2) Add(o V2) V2 { return V2{v.X + o.X, v.Y + o.Y} }
func (v V2) Sub(o V2) V2 { return V2{v.X - o.X, v.Y - o.Y} }
func (v V2) Scale(k float64) V2 { return V2{v.X * k, v.Y * k} }

// DistSq returns the squared distance between two points.
func (v V2) DistSq(o V2) float64 {
	d := v.Sub(o)
	return d.X*d.X + d.Y*d.Y
}

func (v V2) String() string {
	return fmt.Sprintf("(%+.2f, %+.2f)", v.X, v.Y)
}

// AABB is an axis-aligned box. Min is the bottom-left corner and Max the top-right.
type AABB struct {
	Min, Max V2
}

func (a AABB) Left() float64 { return a.Min.X }
func (a AABB) Right() float64 { return a.Max.X }
func (a AABB) Bottom() float64 { return a.Min.Y }
func (a AABB) Top() float64 { return a.Max.Y }
func (a AABB) Width() float64 { return a.Max.X - a.Min.X }
func (a AABB) Height() float64 { return a.Max.Y - a.Min.Y }

// TopLeft returns the corner that maps to the top-left pixel on screen.
func (a AABB) TopLeft() V2 {
	return V2{a.Min.X, a.Max.Y}
}

func (a AABB) Translate(d V2) AABB {
	return AABB{Min: a.Min.Add(d), Max: a.Max.Add(d)}
}

// Overlaps reports whether two boxes share interior area. Boxes that only
// touch along an edge do not overlap.
func (a AABB) Overlaps(b AABB) bool {
	return a.Right() > b.Left() &&
		a.Left() < b.Right() &&
		a.Top() > b.Bottom() &&
		a.Bottom() < b.Top()
}

// Mat2 is a 2x2 matrix in row-major order:
//
//	| A B |
//	| C D |
type Mat2 struct {
	A, B, C, D float64
}

// Diag returns a diagonal matrix.
func Diag(x, y float64) Mat2 {
	return Mat2{A: x, D: y}
}

func (m Mat2) MulV(v V2) V2 {
	return V2{m.A*v.X + m.B*v.Y, m.C*v.X + m.D*v.Y}
}

func (m Mat2) Mul(o Mat2) Mat2 {
	return Mat2{
		A: m.A*o.A + m.B*o.C,
		B: m.A*o.B + m.B*o.D,
		C: m.C*o.A + m.D*o.C,
		D: m.C*o.B + m.D*o.D,
	}
}

func (m Mat2) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Inverse panics on a singular matrix.
func (m Mat2) Inverse() Mat2 {
	det := m.Det()
	if det == 0 || math.IsNaN(det) {
		panic(fmt.Sprintf("geom: singular matrix %+v", m))
	}
	inv := 1 / det
	return Mat2{A: m.D * inv, B: -m.B * inv, C: -m.C * inv, D: m.A * inv}
}

// Floor returns the integer tile coordinate containing f.
func Floor(f float64) int {
	return int(math.Floor(f))
}
