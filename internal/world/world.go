package world

import (
	"log/slog"

	"github.com/mirrodan/arcanum/internal/combat"
	"github.com/mirrodan/arcanum/internal/spell"
	"github.com/mirrodan/arcanum/internal/stats"
)

type delayedCall struct {
	remaining float64
	fn        func()
}

// World drives the single-threaded cooperative step: the host calls
// Step(dt) once per frame and every mutation happens synchronously inside
// it. World implements spell.Environment for homing queries and delayed
// hits.
type World struct {
	entities    []*Entity
	projectiles []*spell.Projectile
	delayed     []delayedCall
}

func New() *World {
	return &World{}
}

// AddEntity inserts an entity into the simulation.
func (w *World) AddEntity(e *Entity) {
	w.entities = append(w.entities, e)
}

// Entities returns the live entity list (not a copy).
func (w *World) Entities() []*Entity {
	return w.entities
}

// CastSpell launches def from owner toward dir. The projectile delivers
// its hits through combat.ResolveHit.
func (w *World) CastSpell(def *spell.Definition, owner *Entity, dir spell.Vec2) *spell.Projectile {
	p := spell.Launch(def, owner.StatRegistry(), owner.Position, dir, w, combat.ResolveHit)
	w.projectiles = append(w.projectiles, p)
	return p
}

// ProjectileCount returns the number of in-flight projectiles.
func (w *World) ProjectileCount() int {
	return len(w.projectiles)
}

// NearestTarget implements spell.Environment: the closest alive entity
// within radius of pos whose registry is not exclude.
func (w *World) NearestTarget(pos spell.Vec2, radius float64, exclude *stats.Registry) (combat.Damageable, spell.Vec2, bool) {
	var best *Entity
	bestDist := radius
	for _, e := range w.entities {
		if e.StatRegistry() == exclude || !e.Alive() {
			continue
		}
		if d := e.Position.Sub(pos).Len(); d <= bestDist {
			best = e
			bestDist = d
		}
	}
	if best == nil {
		return nil, spell.Vec2{}, false
	}
	return best, best.Position, true
}

// Schedule implements spell.Environment: fn runs after delay seconds of
// simulation time, at the end of the step that reaches the deadline.
func (w *World) Schedule(delay float64, fn func()) {
	w.delayed = append(w.delayed, delayedCall{remaining: delay, fn: fn})
}

// Step advances the simulation by dt seconds: registries tick first
// (modifier timers, clamping, regen), then contact damage, then
// projectile flight and collision, then due delayed calls.
func (w *World) Step(dt float64) {
	for _, e := range w.entities {
		e.StatRegistry().Tick(dt)
	}

	w.stepContactDamage(dt)
	w.stepProjectiles(dt)
	w.runDelayed(dt)
}

func (w *World) stepProjectiles(dt float64) {
	for _, p := range w.projectiles {
		p.Step(dt)
		if p.State() != spell.StateFlying {
			continue
		}
		for _, e := range w.entities {
			if !e.Alive() || e.StatRegistry() == p.Owner() {
				continue
			}
			if e.Position.Sub(p.Position).Len() <= e.Radius+p.Size {
				p.HandleImpact(e)
				break
			}
		}
	}

	n := 0
	for _, p := range w.projectiles {
		if !p.Done() {
			w.projectiles[n] = p
			n++
		}
	}
	w.projectiles = w.projectiles[:n]
}

func (w *World) runDelayed(dt float64) {
	var due []func()
	n := 0
	for _, c := range w.delayed {
		c.remaining -= dt
		if c.remaining <= 0 {
			due = append(due, c.fn)
		} else {
			w.delayed[n] = c
			n++
		}
	}
	w.delayed = w.delayed[:n]

	// Run after compaction: a due call may schedule again.
	for _, fn := range due {
		fn()
	}
	if len(due) > 0 {
		slog.Debug("delayed calls executed", "count", len(due))
	}
}
