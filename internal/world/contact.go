package world

import (
	"github.com/mirrodan/arcanum/internal/combat"
	"github.com/mirrodan/arcanum/internal/stats"
)

// stepContactDamage deals touch damage between overlapping entities.
// An entity with a positive ContactDamage stat hits any overlapping alive
// entity, then waits its ContactCooldown stat before hitting again.
// Contact hits go through the same resolver as projectile hits, so armor
// and crit stats apply.
func (w *World) stepContactDamage(dt float64) {
	for _, attacker := range w.entities {
		if attacker.contactCooldown > 0 {
			attacker.contactCooldown -= dt
		}
	}

	for _, attacker := range w.entities {
		if !attacker.Alive() || attacker.contactCooldown > 0 {
			continue
		}
		reg := attacker.StatRegistry()
		if !reg.Has(stats.StatContactDamage) {
			continue
		}
		damage := reg.Value(stats.StatContactDamage)
		if damage <= 0 {
			continue
		}

		for _, target := range w.entities {
			if target == attacker || !target.Alive() {
				continue
			}
			if target.Position.Sub(attacker.Position).Len() > target.Radius+attacker.Radius {
				continue
			}

			ctx := combat.NewHitContext(target, reg)
			ctx.AddDamage(stats.DamagePhysical, damage)
			combat.ResolveHit(ctx)

			if reg.Has(stats.StatContactCooldown) {
				attacker.contactCooldown = reg.Value(stats.StatContactCooldown)
			}
			break // one contact hit per cooldown window
		}
	}
}
