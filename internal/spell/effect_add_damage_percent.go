package spell

import (
	"github.com/mirrodan/arcanum/internal/combat"
	"github.com/mirrodan/arcanum/internal/stats"
)

// AddDamagePercent multiplies every already-compiled damage instance of a
// matching kind by a percentage. Position in the effect list matters: it
// only sees instances added before it.
// Params: "kind", "percent" (e.g. "50" for +50%).
type AddDamagePercent struct {
	Kind    stats.DamageKind
	Percent float64
}

func NewAddDamagePercent(params map[string]string) (Effect, error) {
	kind, err := stats.ParseDamageKind(params["kind"])
	if err != nil {
		return nil, err
	}
	percent, err := floatParam(params, "percent", 0)
	if err != nil {
		return nil, err
	}
	return &AddDamagePercent{Kind: kind, Percent: percent}, nil
}

func (e *AddDamagePercent) Name() string { return "AddDamagePercent" }

func (e *AddDamagePercent) Clone() Effect {
	c := *e
	return &c
}

func (e *AddDamagePercent) OnCompileHit(_ *Projectile, hit *combat.HitContext) {
	for i, d := range hit.Damages {
		if d.Kind == e.Kind {
			hit.Damages[i].Amount = d.Amount * (1.0 + e.Percent/100.0)
		}
	}
}

func init() {
	RegisterEffect("AddDamagePercent", NewAddDamagePercent)
}
