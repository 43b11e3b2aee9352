// Package combat resolves melee hits and the knockback that follows them.
package combat

import (
	"fmt"
	"math"

	"github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/geom"
	"github.com/automoto/tilerunner/motion"
)

// Knockback is either NotKnocked or Knocked.
type Knockback interface {
	isKnockback()
}

// NotKnocked entities move from their own input.
type NotKnocked struct{}

// Knocked entities ignore input until Remaining runs out. JustHit is set
// until the knockback impulse has been applied.
type Knocked struct {
	Remaining float64
	JustHit   bool
	// Dir is the way the entity gets pushed.
	Dir motion.Direction
}

func (NotKnocked) isKnockback() {}
func (Knocked) isKnockback()    {}

// Health is an entity's hit points and knockback state. A nil Knockback
// counts as NotKnocked.
type Health struct {
	HP        int
	Knockback Knockback
}

func NewHealth(hp int) Health {
	return Health{HP: hp, Knockback: NotKnocked{}}
}

func (h *Health) Alive() bool { return h.HP > 0 }

// Knocked reports whether the entity is in knockback.
func (h *Health) Knocked() bool {
	switch k := h.Knockback.(type) {
	case nil, NotKnocked:
		return false
	case Knocked:
		return true
	default:
		panic(fmt.Sprintf("combat: unhandled knockback %T", k))
	}
}

// Hidden reports whether a knocked entity is in the off phase of its flicker.
func (h *Health) Hidden(rate float64) bool {
	k, ok := h.Knockback.(Knocked)
	return ok && math.Sin(k.Remaining*rate) > 0
}

// Attack is the timer behind one entity's melee swing.
type Attack struct {
	Remaining float64 // active time left
	Cooldown  float64 // time left before the next swing may start
}

// Tick advances the timer and starts a swing when trigger is set and the
// attack is ready. It reports whether a swing started.
func (a *Attack) Tick(trigger bool, dt float64, cfg config.CombatConfig) bool {
	switch {
	case a.Remaining > 0:
		a.Remaining -= dt
		if a.Remaining <= 0 {
			a.Remaining = 0
			a.Cooldown = cfg.AttackCooldown
		}
	case a.Cooldown > 0:
		a.Cooldown = math.Max(0, a.Cooldown-dt)
	case trigger:
		a.Remaining = cfg.AttackDuration
		return true
	}
	return false
}

// Active reports whether the hitbox exists this tick.
func (a *Attack) Active() bool { return a.Remaining > 0 }

// Hitbox is an active attack area and the way it pushes what it hits.
type Hitbox struct {
	Box geom.AABB
	Dir motion.Direction
}

// AttackBox places a hitbox the size of the attacker's box, reach tiles
// ahead of it.
func AttackBox(attacker geom.AABB, facing motion.Direction, reach float64) Hitbox {
	return Hitbox{
		Box: attacker.Translate(geom.V2{X: float64(facing) * reach}),
		Dir: facing,
	}
}

// Strike applies hb to a target. A living target that is not already
// knocked and whose hurtbox overlaps the hitbox loses cfg.Damage hit points
// and enters knockback. It reports whether the hit landed.
func Strike(hb Hitbox, target *Health, hurtbox geom.AABB, cfg config.CombatConfig) bool {
	if !target.Alive() || !hb.Box.Overlaps(hurtbox) || target.Knocked() {
		return false
	}
	target.HP -= cfg.Damage
	target.Knockback = Knocked{
		Remaining: cfg.KnockbackDuration,
		JustHit:   true,
		Dir:       hb.Dir,
	}
	return true
}

// Recover advances knockback by one tick and returns the command that
// drives the entity instead of its own input. The first tick after a hit
// yields the knockback impulse; later ticks yield an empty Drive. It returns
// false when the entity is free to move on its own.
func Recover(h *Health, dt float64, cfg config.CombatConfig) (motion.Command, bool) {
	switch k := h.Knockback.(type) {
	case nil, NotKnocked:
		return nil, false
	case Knocked:
		var cmd motion.Command = motion.Drive{}
		if k.JustHit {
			k.JustHit = false
			cmd = motion.Impulse{Vel: geom.V2{
				X: float64(k.Dir) * cfg.KnockbackSpeedX,
				Y: cfg.KnockbackSpeedY,
			}}
		}
		k.Remaining -= dt
		if k.Remaining <= 0 {
			h.Knockback = NotKnocked{}
		} else {
			h.Knockback = k
		}
		return cmd, true
	default:
		panic(fmt.Sprintf("combat: unhandled knockback %T", k))
	}
}
