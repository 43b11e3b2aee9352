package game

import (
	"strings"
	"testing"

	"github.com/automoto/tilerunner/combat"
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/input"
	"github.com/automoto/tilerunner/render"
	"github.com/automoto/tilerunner/tags"
	"github.com/automoto/tilerunner/tilemap"
)

const (
	screenW = 320
	screenH = 240
	dt      = 1.0 / 60
)

type harness struct {
	t     *testing.T
	state *State
	dst   *render.PixelBuffer
	in    *input.Snapshot
}

func newHarness(t *testing.T, store tilemap.Store) *harness {
	t.Helper()
	s, err := Startup(screenW, screenH, Options{Store: store})
	if err != nil {
		t.Fatal(err)
	}
	return &harness{
		t:     t,
		state: s,
		dst:   render.NewPixelBuffer(screenW, screenH),
		in:    &input.Snapshot{},
	}
}

// frame runs one frame with exactly keys held.
func (h *harness) frame(keys ...input.Key) string {
	h.in.Advance()
	for k := input.KeyNone + 1; k < input.KeyCount; k++ {
		h.in.SetKey(k, false)
	}
	for _, k := range keys {
		h.in.SetKey(k, true)
	}
	return h.state.UpdateAndRender(h.dst, h.in, dt)
}

func (h *harness) message() string {
	return components.Message.Get(h.state.frame).Text
}

// groundStore holds a default-size level with a solid bottom row.
func groundStore(t *testing.T) tilemap.MemStore {
	t.Helper()
	g := tilemap.New(cfg.Level.DefaultWidth, cfg.Level.DefaultHeight)
	for x := 0; x < g.Width(); x++ {
		g.Set(x, 0, tilemap.Ground)
	}
	store := tilemap.MemStore{}
	if err := store.SaveLevel(cfg.Level.Name, g); err != nil {
		t.Fatal(err)
	}
	return store
}

func startPlaying(t *testing.T) {
	t.Helper()
	t.Cleanup(cfg.Reset)
	cfg.Editor.StartInEditor = false
}

func TestStartupFallsBackToEmptyLevel(t *testing.T) {
	h := newHarness(t, tilemap.MemStore{})

	g := h.state.Level()
	if g.Width() != 15 || g.Height() != 15 {
		t.Errorf("level is %dx%d, want 15x15", g.Width(), g.Height())
	}
	if n := g.Count(tilemap.Ground); n != 0 {
		t.Errorf("fallback level has %d ground tiles", n)
	}
	if h.state.Mode() != components.ModeEditor {
		t.Errorf("mode = %v, want editor", h.state.Mode())
	}
}

func TestEditorFrame(t *testing.T) {
	h := newHarness(t, nil)

	info := h.frame()
	if !strings.HasPrefix(info, "text: ") {
		t.Errorf("editor info = %q", info)
	}
	if got := h.dst.At(0, 0); got != render.Yellow {
		t.Errorf("screen corner = %#08x, want the yellow border", uint32(got))
	}
	if got := h.state.draw.Width(); got != screenW/cfg.Render.Scale {
		t.Errorf("draw buffer width = %d, want %d", got, screenW/cfg.Render.Scale)
	}
}

func TestToggleMode(t *testing.T) {
	h := newHarness(t, nil)

	h.frame(input.KeyCtrl, input.KeyK)
	if h.state.Mode() != components.ModePlaying {
		t.Fatalf("mode = %v after Ctrl+K, want playing", h.state.Mode())
	}

	// Still held, so not pressed again.
	info := h.frame(input.KeyCtrl, input.KeyK)
	if h.state.Mode() != components.ModePlaying {
		t.Fatalf("holding Ctrl+K switched mode again")
	}
	if !strings.HasPrefix(info, "pos: ") {
		t.Errorf("playing info = %q", info)
	}

	h.frame()
	h.frame(input.KeyCtrl, input.KeyK)
	if h.state.Mode() != components.ModeEditor {
		t.Errorf("mode = %v, want editor", h.state.Mode())
	}
}

func TestEditorSave(t *testing.T) {
	store := tilemap.MemStore{}
	h := newHarness(t, store)

	h.frame(input.KeyCtrl, input.KeyS)
	if h.message() != "Saved" {
		t.Errorf("message = %q, want Saved", h.message())
	}
	data, ok := store[cfg.Level.Name]
	if !ok {
		t.Fatal("level was not written to the store")
	}
	if want := tilemap.HeaderSize + 15*15; len(data) != want {
		t.Errorf("saved %d bytes, want %d", len(data), want)
	}
}

func TestEditorSaveWithoutStore(t *testing.T) {
	h := newHarness(t, nil)

	h.frame(input.KeyCtrl, input.KeyS)
	if h.message() != "Error saving level" {
		t.Errorf("message = %q", h.message())
	}

	// The message disappears after its duration.
	for range int(cfg.Editor.MessageDuration/dt) + 2 {
		h.frame()
	}
	if timer := components.Message.Get(h.state.frame).Timer; timer > 0 {
		t.Errorf("message timer = %v after its duration", timer)
	}
}

func TestEditorPaint(t *testing.T) {
	h := newHarness(t, nil)

	// Window (80, 160) at scale 4 is draw pixel (20, 40). With the origin
	// at 0 and a 60 pixel tall buffer that is game point (1.25, 1.25).
	h.in.SetMouse(80, 160, [input.MouseButtonCount]bool{input.MouseLeft: true})
	h.frame()
	if got := h.state.Level().At(1, 1); got != tilemap.Ground {
		t.Fatalf("tile (1,1) = %v after left click, want ground", got)
	}

	h.in.SetMouse(80, 160, [input.MouseButtonCount]bool{input.MouseRight: true})
	h.frame()
	if got := h.state.Level().At(1, 1); got != tilemap.Empty {
		t.Errorf("tile (1,1) = %v after right click, want empty", got)
	}

	// Pan left of the level, then click: nothing happens.
	h.in.SetMouse(0, 0, [input.MouseButtonCount]bool{})
	for range 60 {
		h.frame(input.KeyA)
	}
	h.in.SetMouse(0, 0, [input.MouseButtonCount]bool{input.MouseLeft: true})
	h.frame()
	if n := h.state.Level().Count(tilemap.Ground); n != 0 {
		t.Errorf("%d ground tiles after clicking outside the level", n)
	}
}

func TestEditorResize(t *testing.T) {
	h := newHarness(t, nil)

	h.frame(input.KeyRight)
	h.frame(input.KeyUp)
	g := h.state.Level()
	if g.Width() != 16 || g.Height() != 16 {
		t.Fatalf("level is %dx%d, want 16x16", g.Width(), g.Height())
	}

	for range 20 {
		h.frame(input.KeyLeft)
		h.frame()
	}
	if g := h.state.Level(); g.Width() != 1 || g.Height() != 16 {
		t.Errorf("level is %dx%d, want 1x16", g.Width(), g.Height())
	}
}

func TestEditorPan(t *testing.T) {
	h := newHarness(t, nil)

	for range 60 {
		h.frame(input.KeyD)
	}
	cam := components.Camera.Get(components.Camera.MustFirst(h.state.world))
	if x := cam.Origin.X; x < 9.9 || x > 10.1 {
		t.Errorf("origin x = %v after one second of D, want 10", x)
	}

	// Ctrl+S must not pan down.
	y := cam.Origin.Y
	h.frame(input.KeyCtrl, input.KeyS)
	if cam.Origin.Y != y {
		t.Errorf("Ctrl+S moved the camera")
	}
}

func TestScaleToggle(t *testing.T) {
	h := newHarness(t, nil)

	h.frame(input.KeyF12)
	if got := h.state.draw.Width(); got != screenW {
		t.Errorf("draw buffer width = %d after F12, want %d", got, screenW)
	}
	h.frame()
	h.frame(input.KeyF12)
	if got := h.state.draw.Width(); got != screenW/cfg.Render.Scale {
		t.Errorf("draw buffer width = %d after second F12", got)
	}
}

func TestPlayerLandsAndStrikes(t *testing.T) {
	startPlaying(t)
	h := newHarness(t, groundStore(t))

	for range 60 {
		h.frame()
	}
	player, ok := tags.Player.First(h.state.world)
	if !ok {
		t.Fatal("no player")
	}
	body := components.Body.Get(player)
	if !body.Grounded() {
		t.Fatalf("player not grounded after one second: %v", body)
	}
	if got := body.AABB().Bottom(); got < 1 || got > 1.02 {
		t.Errorf("player bottom = %v, want just above 1", got)
	}

	enemy, ok := tags.Enemy.First(h.state.world)
	if !ok {
		t.Fatal("no enemy")
	}
	health := components.Health.Get(enemy)

	h.frame(input.KeyJ)
	if health.HP != cfg.Enemy.Health-1 {
		t.Errorf("enemy hp = %d, want %d", health.HP, cfg.Enemy.Health-1)
	}
	if _, ok := health.Knockback.(combat.Knocked); !ok {
		t.Errorf("enemy knockback = %#v, want knocked", health.Knockback)
	}

	// Holding J does not swing again.
	h.frame(input.KeyJ)
	if health.HP != cfg.Enemy.Health-1 {
		t.Errorf("held attack hit again, hp = %d", health.HP)
	}
	if components.Body.Get(enemy).Grounded() {
		t.Error("knockback should lift the enemy")
	}
}

func TestKnockbackStartsTickAfterHit(t *testing.T) {
	startPlaying(t)
	h := newHarness(t, groundStore(t))

	for range 60 {
		h.frame()
	}
	enemy, ok := tags.Enemy.First(h.state.world)
	if !ok {
		t.Fatal("no enemy")
	}
	health := components.Health.Get(enemy)
	body := components.Body.Get(enemy)

	h.frame(input.KeyJ)
	k, ok := health.Knockback.(combat.Knocked)
	if !ok || !k.JustHit || k.Remaining != cfg.Combat.KnockbackDuration {
		t.Fatalf("hit tick knockback = %#v, want fresh Knocked", health.Knockback)
	}
	if !body.Grounded() || body.Vel.Y != 0 {
		t.Errorf("enemy moved on the hit tick: %v", body)
	}

	h.frame()
	k, ok = health.Knockback.(combat.Knocked)
	if !ok || k.JustHit {
		t.Fatalf("next tick knockback = %#v, want impulse consumed", health.Knockback)
	}
	if body.Grounded() || body.Vel.Y <= 0 {
		t.Errorf("enemy not launched the tick after the hit: %v", body)
	}
}

func TestDefeatedEnemyIsRemoved(t *testing.T) {
	startPlaying(t)
	cfg.Enemy.Health = 1
	h := newHarness(t, groundStore(t))

	for range 60 {
		h.frame()
	}
	h.frame(input.KeyJ)
	if _, ok := tags.Enemy.First(h.state.world); ok {
		t.Error("enemy with no hit points is still in the world")
	}
}

func TestRestart(t *testing.T) {
	startPlaying(t)
	h := newHarness(t, groundStore(t))

	for range 30 {
		h.frame(input.KeyA)
	}
	h.frame(input.KeyEscape)

	// The restart frame still applies one tick of gravity.
	player, _ := tags.Player.First(h.state.world)
	body := components.Body.Get(player)
	spawn := cfg.Player.Spawn
	if body.Pos.X != spawn.X || body.Pos.Y > spawn.Y || body.Pos.Y < spawn.Y-0.1 {
		t.Errorf("player at %v after restart, want near %v", body.Pos, spawn)
	}
	if body.Grounded() {
		t.Error("restarted player should start airborne")
	}
}
