package spell

import (
	"log/slog"

	"github.com/mirrodan/arcanum/internal/combat"
	"github.com/mirrodan/arcanum/internal/stats"
)

// State is the projectile lifecycle state. Destroyed is terminal and
// idempotent: reaching it twice (racing collision and expiry) must not
// double-fire teardown hooks.
type State int8

const (
	StateSpawned State = iota
	StateFlying
	StateExpiring
	StateDestroyed
)

// Environment supplies world queries and scheduling to effects. The host
// simulation implements it; tests use small fakes.
type Environment interface {
	// NearestTarget returns the closest valid damageable within radius of
	// pos, excluding any whose registry is exclude, with its position.
	NearestTarget(pos Vec2, radius float64, exclude *stats.Registry) (combat.Damageable, Vec2, bool)
	// Schedule runs fn after delay seconds of simulation time,
	// independent of any projectile's lifetime.
	Schedule(delay float64, fn func())
}

// DeliverFunc delivers a compiled hit to its target and reports the
// resolved result.
type DeliverFunc func(*combat.HitContext) combat.Result

// Projectile is a projectile-like entity: straight-line motion, a
// remaining lifetime, and an ordered list of cloned effects hooked into
// its lifecycle.
type Projectile struct {
	Position     Vec2
	Direction    Vec2 // unit vector
	Speed        float64
	Lifetime     float64
	Size         float64
	TickInterval float64

	owner   *stats.Registry
	env     Environment
	deliver DeliverFunc
	effects []Effect

	elapsed  float64
	nextTick float64
	state    State
}

// Launch spawns a projectile from def: effects are cloned in authoring
// order, initialized once, and the projectile transitions to flight.
func Launch(def *Definition, owner *stats.Registry, pos, dir Vec2, env Environment, deliver DeliverFunc) *Projectile {
	p := &Projectile{
		Position:  pos,
		Direction: dir.Normalized(),
		owner:     owner,
		env:       env,
		deliver:   deliver,
		effects:   def.cloneEffects(),
		state:     StateSpawned,
	}
	for _, e := range p.effects {
		if init, ok := e.(Initializer); ok {
			init.Initialize(p)
		}
	}
	p.nextTick = p.TickInterval
	p.state = StateFlying
	slog.Debug("projectile launched", "spell", def.Name, "speed", p.Speed, "lifetime", p.Lifetime)
	return p
}

// Owner returns the stat registry of the entity that fired the spell.
func (p *Projectile) Owner() *stats.Registry {
	return p.owner
}

// Env returns the world environment the projectile was launched into.
func (p *Projectile) Env() Environment {
	return p.env
}

// State returns the current lifecycle state.
func (p *Projectile) State() State {
	return p.state
}

// Done reports whether the projectile has reached its terminal state.
func (p *Projectile) Done() bool {
	return p.state == StateDestroyed
}

// Step advances the projectile by dt seconds of flight: integrate
// position, expire if the lifetime has elapsed, otherwise run OnUpdate on
// every effect and at most one OnTick. Missed tick intervals are not
// caught up; the deadline advances by exactly one interval per step.
func (p *Projectile) Step(dt float64) {
	if p.state != StateFlying {
		return
	}
	p.elapsed += dt
	p.Position = p.Position.Add(p.Direction.Scale(p.Speed * dt))

	if p.elapsed >= p.Lifetime {
		p.expire()
		return
	}

	for _, e := range p.effects {
		if u, ok := e.(Updater); ok {
			u.OnUpdate(p, dt)
		}
	}

	if p.TickInterval > 0 && p.elapsed >= p.nextTick {
		for _, e := range p.effects {
			if tk, ok := e.(Ticker); ok {
				tk.OnTick(p)
			}
		}
		p.nextTick += p.TickInterval
	}
}

// HandleImpact resolves a collision with target: effects compile the hit
// context in order, the hit is delivered, post-hit hooks run, and the
// projectile is destroyed. Impacts on the owner, on registry-less
// targets, or on a projectile that is no longer flying are ignored.
func (p *Projectile) HandleImpact(target combat.Damageable) {
	if p.state != StateFlying {
		return
	}
	if target == nil || target.StatRegistry() == nil || target.StatRegistry() == p.owner {
		return
	}

	hit := combat.NewHitContext(target, p.owner)
	for _, e := range p.effects {
		if c, ok := e.(HitCompiler); ok {
			c.OnCompileHit(p, hit)
		}
	}
	res := p.deliver(hit)
	for _, e := range p.effects {
		if o, ok := e.(HitObserver); ok {
			o.OnHit(p, hit, res)
		}
	}
	p.state = StateDestroyed
}

// Expire forces lifetime expiry, as if the remaining flight time had
// elapsed. No-op unless flying.
func (p *Projectile) Expire() {
	if p.state != StateFlying {
		return
	}
	p.expire()
}

func (p *Projectile) expire() {
	p.state = StateExpiring
	for _, e := range p.effects {
		if f, ok := e.(Finalizer); ok {
			f.OnLifetimeEnd(p)
		}
	}
	p.state = StateDestroyed
}

// Deliver hands a hit context to the projectile's delivery sink. Exposed
// for effects that fire additional, independent hits.
func (p *Projectile) Deliver(hit *combat.HitContext) combat.Result {
	return p.deliver(hit)
}
