// Package combat resolves hit events into final damage against a target's
// stat registry.
package combat

import (
	"github.com/mirrodan/arcanum/internal/stats"
	"github.com/mirrodan/arcanum/internal/status"
)

// Damageable is anything a hit can land on.
type Damageable interface {
	// StatRegistry returns the target's registry, or nil if it has none
	// (in which case hits resolve to zero damage).
	StatRegistry() *stats.Registry
}

// DamageInstance is one typed damage contribution inside a hit.
type DamageInstance struct {
	Kind   stats.DamageKind
	Amount float64
}

// HitContext accumulates the damage instances and status applications of
// a single hit attempt while effect callbacks mutate it. Created fresh
// per hit; lives only for the duration of one resolution.
type HitContext struct {
	Target   Damageable
	Attacker *stats.Registry // not owned; nil for attackerless hits
	Damages  []DamageInstance
	Statuses []*status.Effect
}

// NewHitContext creates an empty hit against target from attacker.
func NewHitContext(target Damageable, attacker *stats.Registry) *HitContext {
	return &HitContext{Target: target, Attacker: attacker}
}

// AddDamage appends one damage instance.
func (h *HitContext) AddDamage(kind stats.DamageKind, amount float64) {
	h.Damages = append(h.Damages, DamageInstance{Kind: kind, Amount: amount})
}

// AddStatus queues a status effect to apply to the target on delivery.
func (h *HitContext) AddStatus(e *status.Effect) {
	h.Statuses = append(h.Statuses, e)
}

// Result is the outcome of resolving one hit.
type Result struct {
	Total    float64
	Critical bool
}
