// Package world hosts the cooperative simulation step: it owns entities
// and projectiles, advances registries and flight, detects impacts, and
// runs scheduled delayed hits.
package world

import (
	"github.com/google/uuid"

	"github.com/mirrodan/arcanum/internal/spell"
	"github.com/mirrodan/arcanum/internal/stats"
)

// Entity is a damageable simulation participant: a position, a collision
// radius, and an owned stat registry.
type Entity struct {
	ID       string
	Name     string
	Position spell.Vec2
	Radius   float64

	registry *stats.Registry

	// Remaining cooldown before this entity may deal contact damage
	// again. Counts down every step.
	contactCooldown float64
}

// NewEntity creates an entity with a registry built from cfg.
func NewEntity(name string, pos spell.Vec2, radius float64, cfg stats.Config) *Entity {
	return &Entity{
		ID:       uuid.NewString(),
		Name:     name,
		Position: pos,
		Radius:   radius,
		registry: stats.NewRegistry(cfg),
	}
}

// StatRegistry implements combat.Damageable.
func (e *Entity) StatRegistry() *stats.Registry {
	return e.registry
}

// Alive reports whether the entity's Health resource is above zero.
// Entities without a Health resource are indestructible scenery and
// count as alive.
func (e *Entity) Alive() bool {
	res := e.registry.Resource(stats.StatHealth)
	return res == nil || res.Current() > 0
}
