package combat

import (
	"log/slog"
	"math/rand"

	"github.com/mirrodan/arcanum/internal/stats"
)

// CalculateHit resolves a hit context into a final damage result.
//
// The ordering is a fixed balance contract: type bonus before mitigation,
// mitigation before summation (each instance clamped to ≥ 0 on its own),
// crit applied once to the sum.
//
//  1. No target registry → zero, non-critical (recoverable).
//  2. One crit roll per hit: rand < CritChance/100.
//  3. Per instance: Fire gains ×(1 + FireDamageBonus); Physical loses the
//     target's Armor flat; Fire loses ×(1 - clamp01(FireResistance/100));
//     clamp to ≥ 0; sum.
//  4. On crit, sum ×(1 + CritDamage/100).
func CalculateHit(ctx *HitContext) Result {
	if ctx == nil || ctx.Target == nil {
		slog.Warn("hit without target")
		return Result{}
	}
	target := ctx.Target.StatRegistry()
	if target == nil {
		slog.Warn("hit target has no stat registry")
		return Result{}
	}

	var critChance, critDamage, fireBonus float64
	if ctx.Attacker != nil {
		critChance = ctx.Attacker.Value(stats.StatCritChance)
		critDamage = ctx.Attacker.Value(stats.StatCritDamage)
		fireBonus = ctx.Attacker.Value(stats.StatFireDamageBonus)
	}

	critical := rand.Float64() < critChance/100.0

	total := 0.0
	for _, d := range ctx.Damages {
		amount := d.Amount
		switch d.Kind {
		case stats.DamageFire:
			amount *= 1.0 + fireBonus
			amount *= 1.0 - clamp01(target.Value(stats.StatFireResistance)/100.0)
		case stats.DamagePhysical:
			amount -= target.Value(stats.StatArmor)
		}
		if amount < 0 {
			amount = 0
		}
		total += amount
	}

	if critical {
		total *= 1.0 + critDamage/100.0
	}

	return Result{Total: total, Critical: critical}
}

// ResolveHit calculates a hit and delivers it: damage is taken from the
// target's Health resource and queued statuses are applied. Returns the
// same result as CalculateHit. Fully synchronous; a zero-damage hit still
// applies statuses.
func ResolveHit(ctx *HitContext) Result {
	res := CalculateHit(ctx)
	if ctx == nil || ctx.Target == nil {
		return res
	}
	reg := ctx.Target.StatRegistry()
	if reg == nil {
		return res
	}
	if res.Total > 0 {
		reg.ModifyResource(stats.StatHealth, -res.Total)
	}
	for _, st := range ctx.Statuses {
		st.Apply(reg)
	}
	return res
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
