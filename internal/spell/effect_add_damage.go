package spell

import (
	"github.com/mirrodan/arcanum/internal/combat"
	"github.com/mirrodan/arcanum/internal/stats"
)

// AddDamage appends one fixed damage instance when the hit is compiled.
// Params: "kind" (damage kind name), "amount".
type AddDamage struct {
	Kind   stats.DamageKind
	Amount float64
}

func NewAddDamage(params map[string]string) (Effect, error) {
	kind, err := stats.ParseDamageKind(params["kind"])
	if err != nil {
		return nil, err
	}
	amount, err := floatParam(params, "amount", 0)
	if err != nil {
		return nil, err
	}
	return &AddDamage{Kind: kind, Amount: amount}, nil
}

func (e *AddDamage) Name() string { return "AddDamage" }

func (e *AddDamage) Clone() Effect {
	c := *e
	return &c
}

func (e *AddDamage) OnCompileHit(_ *Projectile, hit *combat.HitContext) {
	hit.AddDamage(e.Kind, e.Amount)
}

func init() {
	RegisterEffect("AddDamage", NewAddDamage)
}
