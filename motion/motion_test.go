package motion

import (
	"math"
	"testing"

	"github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/geom"
	"github.com/automoto/tilerunner/tilemap"
)

const dt = 1.0 / 60

// floorGrid returns a 10x10 grid with a solid bottom row.
func floorGrid() *tilemap.Grid {
	g := tilemap.New(10, 10)
	for x := 0; x < g.Width(); x++ {
		g.Set(x, 0, tilemap.Ground)
	}
	return g
}

// standingAt returns a grounded character resting on top of row 0.
func standingAt(x float64) Body {
	b := NewCharacter(geom.V2{X: x})
	b.Pos.Y = 1 - b.Offset.Y + config.Physics.CollisionInset
	b.State = Grounded{}
	return b
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSweep(t *testing.T) {
	g := floorGrid()
	g.Set(6, 1, tilemap.Ground)
	box := geom.AABB{Min: geom.V2{X: 4.2, Y: 1.1}, Max: geom.V2{X: 4.8, Y: 1.9}}

	tests := []struct {
		name  string
		axis  Axis
		delta float64
		want  int
		hit   bool
	}{
		{"zero", AxisX, 0, 0, false},
		{"clear right", AxisX, 0.5, 0, false},
		{"wall right", AxisX, 1.5, 6, true},
		{"clear left", AxisX, -2, 0, false},
		{"grid edge left", AxisX, -4.5, -1, true},
		{"floor", AxisY, -0.5, 0, true},
		{"clear up", AxisY, 3, 0, false},
		{"ceiling is grid edge", AxisY, 9, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := Sweep(g, box, tt.axis, tt.delta)
			if hit != tt.hit || (hit && got != tt.want) {
				t.Errorf("Sweep = %d, %v; want %d, %v", got, hit, tt.want, tt.hit)
			}
		})
	}
}

func TestSweepZeroDeltaInsideWall(t *testing.T) {
	g := floorGrid()
	inside := geom.AABB{Min: geom.V2{X: 1.2, Y: 0.2}, Max: geom.V2{X: 1.8, Y: 0.8}}
	if _, hit := Sweep(g, inside, AxisY, 0); hit {
		t.Error("zero displacement reported a collision")
	}
}

func TestRestingStaysPut(t *testing.T) {
	g := floorGrid()
	b := standingAt(2.5)
	start := b

	for i := 0; i < 120; i++ {
		Step(&b, g, Drive{}, dt, config.Physics)
	}

	if !near(b.Pos.X, start.Pos.X) || !near(b.Pos.Y, start.Pos.Y) {
		t.Errorf("pos = %v, want %v", b.Pos, start.Pos)
	}
	if b.Vel != (geom.V2{}) {
		t.Errorf("vel = %v, want zero", b.Vel)
	}
	if !b.Grounded() {
		t.Errorf("state = %T, want Grounded", b.State)
	}
}

func TestRestingAgainstWallIsStable(t *testing.T) {
	g := floorGrid()
	g.Set(3, 1, tilemap.Ground)
	b := standingAt(0)
	b.Pos.X = 3 - (b.Offset.X + b.Size.X) - config.Physics.CollisionInset
	start := b

	Step(&b, g, nil, dt, config.Physics)

	if b.Pos != start.Pos || b.Vel != start.Vel {
		t.Errorf("body moved from %v to %v", start, &b)
	}
}

func TestLanding(t *testing.T) {
	g := floorGrid()
	b := NewCharacter(geom.V2{X: 2.5, Y: 3})
	b.State = Airborne{}
	b.Vel.Y = -5

	landed := false
	for i := 0; i < 120 && !landed; i++ {
		Step(&b, g, Drive{}, dt, config.Physics)
		landed = b.Grounded()
	}

	if !landed {
		t.Fatalf("never landed, body %v", &b)
	}
	if b.Vel.Y != 0 {
		t.Errorf("vel.y = %v, want 0", b.Vel.Y)
	}
	wantY := 1 - b.Offset.Y + config.Physics.CollisionInset
	if !near(b.Pos.Y, wantY) {
		t.Errorf("pos.y = %v, want %v", b.Pos.Y, wantY)
	}
}

func TestJumpAndDoubleJump(t *testing.T) {
	g := floorGrid()
	p := config.Physics
	b := standingAt(2.5)

	Step(&b, g, Drive{Jump: true}, dt, p)
	if b.State != (Airborne{}) || b.Vel.Y != p.JumpSpeed {
		t.Fatalf("after jump: state %#v vel.y %v", b.State, b.Vel.Y)
	}

	Step(&b, g, Drive{}, dt, p)
	if !near(b.Vel.Y, p.JumpSpeed-p.Gravity*dt) {
		t.Errorf("gravity not applied, vel.y = %v", b.Vel.Y)
	}

	Step(&b, g, Drive{Jump: true}, dt, p)
	if b.State != (Airborne{DoubleJumped: true}) || b.Vel.Y != p.DoubleJumpSpeed {
		t.Fatalf("after double jump: state %#v vel.y %v", b.State, b.Vel.Y)
	}

	Step(&b, g, Drive{Jump: true}, dt, p)
	if !near(b.Vel.Y, p.DoubleJumpSpeed-p.Gravity*dt) {
		t.Errorf("third jump should be ignored, vel.y = %v", b.Vel.Y)
	}
}

func TestWalkOffLedge(t *testing.T) {
	g := tilemap.New(10, 10)
	for x := 0; x < 3; x++ {
		g.Set(x, 0, tilemap.Ground)
	}
	b := standingAt(2.2)

	for i := 0; i < 120; i++ {
		Step(&b, g, Drive{Dir: Right}, dt, config.Physics)
		if geom.Floor(b.Pos.X) == 3 {
			break
		}
		if !b.Grounded() {
			t.Fatalf("left the ground early at %v", &b)
		}
	}
	if b.State != (Airborne{}) {
		t.Errorf("state = %#v, want Airborne{}", b.State)
	}
}

func TestWallStopsHorizontalMotion(t *testing.T) {
	g := floorGrid()
	for y := 1; y < 10; y++ {
		g.Set(5, y, tilemap.Ground)
	}
	b := standingAt(3.5)
	limit := 5 - (b.Offset.X + b.Size.X) - config.Physics.CollisionInset

	for i := 0; i < 120; i++ {
		Step(&b, g, Drive{Dir: Right}, dt, config.Physics)
		if b.AABB().Max.X >= 5 {
			t.Fatalf("entered the wall at tick %d: %v", i, &b)
		}
	}
	if !near(b.Pos.X, limit) || b.Vel.X != 0 {
		t.Errorf("pos.x = %v vel.x = %v, want %v and 0", b.Pos.X, b.Vel.X, limit)
	}
}

func TestGridEdgeIsSolid(t *testing.T) {
	g := floorGrid()
	b := standingAt(0.6)

	for i := 0; i < 60; i++ {
		Step(&b, g, Drive{Dir: Left}, dt, config.Physics)
	}
	if b.AABB().Min.X < 0 {
		t.Errorf("left the grid: %v", &b)
	}
	if b.Facing != Left {
		t.Errorf("facing = %v, want left", b.Facing)
	}
}

func TestSpeedIsClamped(t *testing.T) {
	g := floorGrid()
	b := NewCharacter(geom.V2{X: 5, Y: 5})

	Step(&b, g, Impulse{Vel: geom.V2{X: -100, Y: 300}}, dt, config.Physics)

	if b.Vel.X != -config.Physics.MaxSpeedX || b.Vel.Y != config.Physics.MaxSpeedY {
		t.Errorf("vel = %v, want clamped", b.Vel)
	}
	if b.State != (Airborne{}) {
		t.Errorf("upward impulse should reset to Airborne{}, got %#v", b.State)
	}
}

func TestStepIsDeterministic(t *testing.T) {
	g := floorGrid()
	g.Set(7, 1, tilemap.Ground)
	g.Set(7, 2, tilemap.Ground)
	cmds := []Command{
		Drive{Dir: Right}, Drive{Dir: Right, Jump: true}, Drive{Dir: Right},
		Drive{Jump: true}, Impulse{Vel: geom.V2{X: -3, Y: 4}}, nil, Drive{Dir: Left},
	}

	a, b := standingAt(2.5), standingAt(2.5)
	for i := 0; i < 300; i++ {
		cmd := cmds[i%len(cmds)]
		Step(&a, g, cmd, dt, config.Physics)
		Step(&b, g, cmd, dt, config.Physics)
		if a != b {
			t.Fatalf("diverged at tick %d: %v vs %v", i, &a, &b)
		}
	}
}

func TestBodyString(t *testing.T) {
	b := NewCharacter(geom.V2{X: 2.5, Y: 2.5})
	want := "pos: (+2.50, +2.50), vel: (+0.00, +0.00) |^|"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	b.State = Grounded{}
	if got := b.String(); got[len(got)-3:] != "|_|" {
		t.Errorf("grounded marker missing in %q", got)
	}
}
