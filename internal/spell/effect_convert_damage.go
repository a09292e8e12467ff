package spell

import (
	"github.com/mirrodan/arcanum/internal/combat"
	"github.com/mirrodan/arcanum/internal/stats"
)

// ConvertDamage rewrites compiled damage instances of one kind to
// another, keeping amounts. Mitigation then follows the new kind.
// Params: "from", "to" (damage kind names).
type ConvertDamage struct {
	From stats.DamageKind
	To   stats.DamageKind
}

func NewConvertDamage(params map[string]string) (Effect, error) {
	from, err := stats.ParseDamageKind(params["from"])
	if err != nil {
		return nil, err
	}
	to, err := stats.ParseDamageKind(params["to"])
	if err != nil {
		return nil, err
	}
	return &ConvertDamage{From: from, To: to}, nil
}

func (e *ConvertDamage) Name() string { return "ConvertDamage" }

func (e *ConvertDamage) Clone() Effect {
	c := *e
	return &c
}

func (e *ConvertDamage) OnCompileHit(_ *Projectile, hit *combat.HitContext) {
	for i, d := range hit.Damages {
		if d.Kind == e.From {
			hit.Damages[i].Kind = e.To
		}
	}
}

func init() {
	RegisterEffect("ConvertDamage", NewConvertDamage)
}
