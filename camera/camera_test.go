package camera

import (
	"image"
	"math"
	"testing"

	"github.com/automoto/tilerunner/geom"
)

func newTestTransform() *Transform {
	t := New(16, 4)
	t.SetViewport(320, 240)
	return t
}

func TestToScreenFlipsY(t *testing.T) {
	c := newTestTransform()
	tests := []struct {
		p    geom.V2
		want image.Point
	}{
		{geom.V2{X: 0, Y: 0}, image.Pt(0, 240)},
		{geom.V2{X: 1, Y: 1}, image.Pt(16, 224)},
		{geom.V2{X: 2.5, Y: 15}, image.Pt(40, 0)},
	}
	for _, tt := range tests {
		if got := c.ToScreen(tt.p); got != tt.want {
			t.Errorf("ToScreen(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	c.Origin = geom.V2{X: 1, Y: 2}
	if got := c.ToScreen(geom.V2{X: 1, Y: 2}); got != image.Pt(0, 240) {
		t.Errorf("origin maps to %v, want bottom-left", got)
	}
}

func TestBoxToScreen(t *testing.T) {
	c := newTestTransform()
	r := c.BoxToScreen(geom.AABB{Min: geom.V2{X: 1, Y: 1}, Max: geom.V2{X: 2, Y: 3}})
	if r != image.Rect(16, 192, 32, 224) {
		t.Errorf("BoxToScreen = %v", r)
	}
}

func TestToGameRoundTrip(t *testing.T) {
	c := newTestTransform()
	c.Origin = geom.V2{X: 3, Y: 1}
	p := geom.V2{X: 5.5, Y: 4.25}
	s := c.ToScreen(p)
	g := c.ToGame(image.Pt(s.X*c.Scale, s.Y*c.Scale))
	if math.Abs(g.X-p.X) > 1.0/16 || math.Abs(g.Y-p.Y) > 1.0/16 {
		t.Errorf("round trip %v -> %v -> %v", p, s, g)
	}
}

func TestFollowClamps(t *testing.T) {
	c := newTestTransform() // view is 20x15 tiles
	world := geom.V2{X: 40, Y: 30}
	tests := []struct {
		name   string
		target geom.V2
		want   geom.V2
	}{
		{"centered", geom.V2{X: 20, Y: 15}, geom.V2{X: 10, Y: 7.5}},
		{"bottom-left", geom.V2{X: 1, Y: 1}, geom.V2{X: 0, Y: 0}},
		{"top-right", geom.V2{X: 39, Y: 29}, geom.V2{X: 20, Y: 15}},
	}
	for _, tt := range tests {
		c.Follow(tt.target, world)
		if c.Origin != tt.want {
			t.Errorf("%s: origin = %v, want %v", tt.name, c.Origin, tt.want)
		}
	}

	c.Follow(geom.V2{X: 5, Y: 5}, geom.V2{X: 10, Y: 10})
	if c.Origin != (geom.V2{}) {
		t.Errorf("small world origin = %v, want zero", c.Origin)
	}
}

func TestVisibleTiles(t *testing.T) {
	c := newTestTransform()
	c.Origin = geom.V2{X: 1.5, Y: 0}
	if got := c.VisibleTiles(); got != image.Rect(1, 0, 23, 16) {
		t.Errorf("VisibleTiles = %v", got)
	}
}
