// Package spell implements the projectile lifecycle and its composable
// effect pipeline: ordered behavior units hooking spawn, flight, hit
// compilation and expiry.
package spell

import "github.com/mirrodan/arcanum/internal/combat"

// Effect is the base contract every spell effect satisfies. Authored
// effect objects are templates: Clone is called once per spawned
// projectile so each instance owns independent runtime state.
//
// Lifecycle hooks are optional capability interfaces; an effect
// implements only the hooks it needs and the projectile treats absent
// hooks as no-ops. All hooks on all effects run in authoring order —
// order is behavior (a damage-doubling effect listed after damage-adding
// effects doubles them; before, it does not).
type Effect interface {
	Name() string
	Clone() Effect
}

// Initializer runs once when the projectile is spawned, before flight.
type Initializer interface {
	Initialize(p *Projectile)
}

// Updater runs every simulation step while the projectile flies.
type Updater interface {
	OnUpdate(p *Projectile, dt float64)
}

// Ticker runs at the projectile's tick interval during flight.
type Ticker interface {
	OnTick(p *Projectile)
}

// HitCompiler mutates the shared hit context when the projectile lands.
type HitCompiler interface {
	OnCompileHit(p *Projectile, hit *combat.HitContext)
}

// HitObserver runs after the hit has been delivered to the target.
type HitObserver interface {
	OnHit(p *Projectile, hit *combat.HitContext, res combat.Result)
}

// Finalizer runs once when the projectile's lifetime ends without a hit.
type Finalizer interface {
	OnLifetimeEnd(p *Projectile)
}

// Definition is an authored spell: a name plus its effect templates in
// authoring order. Shared and immutable; projectiles clone the effects.
type Definition struct {
	Name    string
	Effects []Effect
}

func (d *Definition) cloneEffects() []Effect {
	clones := make([]Effect, len(d.Effects))
	for i, e := range d.Effects {
		clones[i] = e.Clone()
	}
	return clones
}
