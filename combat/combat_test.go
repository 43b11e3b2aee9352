package combat

import (
	"testing"

	"github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/geom"
	"github.com/automoto/tilerunner/motion"
)

const dt = 1.0 / 60

func box(x, y float64) geom.AABB {
	return geom.AABB{Min: geom.V2{X: x, Y: y}, Max: geom.V2{X: x + 0.75, Y: y + 0.9}}
}

func TestStrikeAppliesOncePerKnockback(t *testing.T) {
	cfg := config.Combat
	target := NewHealth(5)
	hb := AttackBox(box(1, 1), motion.Right, cfg.AttackReach)
	hurt := box(2.2, 1)

	if !Strike(hb, &target, hurt, cfg) {
		t.Fatal("first strike missed")
	}
	if target.HP != 4 {
		t.Errorf("HP = %d, want 4", target.HP)
	}
	want := Knocked{Remaining: cfg.KnockbackDuration, JustHit: true, Dir: motion.Right}
	if target.Knockback != want {
		t.Errorf("knockback = %#v, want %#v", target.Knockback, want)
	}

	if Strike(hb, &target, hurt, cfg) {
		t.Error("second strike on a knocked target landed")
	}
	if target.HP != 4 {
		t.Errorf("HP = %d after second strike, want 4", target.HP)
	}
}

func TestStrikeMisses(t *testing.T) {
	cfg := config.Combat
	hb := AttackBox(box(1, 1), motion.Left, cfg.AttackReach)

	tests := []struct {
		name   string
		health Health
		hurt   geom.AABB
	}{
		{"behind attacker", NewHealth(3), box(2.2, 1)},
		{"touching edge only", NewHealth(3), box(-0.75, 1)},
		{"dead", NewHealth(0), box(0.2, 1)},
		{"already knocked", Health{HP: 3, Knockback: Knocked{Remaining: 0.5}}, box(0.2, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.health
			if Strike(hb, &h, tt.hurt, cfg) {
				t.Error("strike landed")
			}
			if h.HP != tt.health.HP {
				t.Errorf("HP changed to %d", h.HP)
			}
		})
	}
}

func TestRecoverImpulseThenCountdown(t *testing.T) {
	cfg := config.Combat
	cfg.KnockbackDuration = 2.5 * dt
	h := NewHealth(2)
	Strike(AttackBox(box(0, 0), motion.Left, 1), &h, box(-1, 0), cfg)

	cmd, knocked := Recover(&h, dt, cfg)
	imp, ok := cmd.(motion.Impulse)
	if !knocked || !ok {
		t.Fatalf("first tick: cmd %#v knocked %v, want impulse", cmd, knocked)
	}
	if imp.Vel.X != -cfg.KnockbackSpeedX || imp.Vel.Y != cfg.KnockbackSpeedY {
		t.Errorf("impulse = %v", imp.Vel)
	}
	if k := h.Knockback.(Knocked); k.JustHit {
		t.Error("JustHit not cleared")
	}

	cmd, knocked = Recover(&h, dt, cfg)
	if !knocked || cmd != (motion.Drive{}) {
		t.Errorf("second tick: cmd %#v knocked %v, want empty drive", cmd, knocked)
	}

	Recover(&h, dt, cfg)
	if h.Knocked() {
		t.Errorf("still knocked after the full duration: %#v", h.Knockback)
	}

	if cmd, knocked := Recover(&h, dt, cfg); knocked || cmd != nil {
		t.Errorf("free entity got cmd %#v", cmd)
	}
}

func TestRecoverZeroValueHealth(t *testing.T) {
	var h Health
	if _, knocked := Recover(&h, dt, config.Combat); knocked {
		t.Error("zero Health should not be knocked")
	}
}

func TestAttackTimer(t *testing.T) {
	cfg := config.Combat
	cfg.AttackDuration = 2 * dt
	cfg.AttackCooldown = 2 * dt
	var a Attack

	if !a.Tick(true, dt, cfg) || !a.Active() {
		t.Fatal("ready attack did not start")
	}
	steps := []struct {
		trigger bool
		started bool
		active  bool
	}{
		{true, false, true},   // still swinging
		{true, false, false},  // swing over, cooldown begins
		{true, false, false},  // cooling down
		{true, false, false},  // cooldown over
		{false, false, false}, // ready but idle
		{true, true, true},
	}
	for i, s := range steps {
		started := a.Tick(s.trigger, dt, cfg)
		if started != s.started || a.Active() != s.active {
			t.Errorf("tick %d: started %v active %v, want %v %v", i, started, a.Active(), s.started, s.active)
		}
	}
}

func TestHiddenFlicker(t *testing.T) {
	h := Health{HP: 1, Knockback: Knocked{Remaining: 0.05}}
	if !h.Hidden(20) {
		t.Error("sin(1) > 0 should hide")
	}
	h.Knockback = Knocked{Remaining: 0.2}
	if h.Hidden(20) {
		t.Error("sin(4) < 0 should show")
	}
	h.Knockback = NotKnocked{}
	if h.Hidden(20) {
		t.Error("free entity should show")
	}
}
