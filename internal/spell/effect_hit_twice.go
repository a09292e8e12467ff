package spell

import (
	"log/slog"

	"github.com/mirrodan/arcanum/internal/combat"
)

// HitTwice schedules a second, delayed, scaled-down hit against the same
// target after the first lands. The echo is an independent hit — its own
// crit roll and mitigation — delivered through the world scheduler, so it
// survives the projectile's destruction and never recurses into the
// pipeline (it carries no effects and no statuses).
// Params: "delay" (seconds), "scale" (fraction of the original amounts).
type HitTwice struct {
	Delay float64
	Scale float64
}

func NewHitTwice(params map[string]string) (Effect, error) {
	e := &HitTwice{}
	var err error
	if e.Delay, err = floatParam(params, "delay", 0.3); err != nil {
		return nil, err
	}
	if e.Scale, err = floatParam(params, "scale", 0.5); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *HitTwice) Name() string { return "HitTwice" }

func (e *HitTwice) Clone() Effect {
	c := *e
	return &c
}

func (e *HitTwice) OnHit(p *Projectile, hit *combat.HitContext, _ combat.Result) {
	env := p.Env()
	if env == nil || len(hit.Damages) == 0 {
		return
	}

	echo := combat.NewHitContext(hit.Target, hit.Attacker)
	for _, d := range hit.Damages {
		echo.AddDamage(d.Kind, d.Amount*e.Scale)
	}

	deliver := p.Deliver
	env.Schedule(e.Delay, func() {
		res := deliver(echo)
		slog.Debug("echo hit delivered", "damage", res.Total, "crit", res.Critical)
	})
}

func init() {
	RegisterEffect("HitTwice", NewHitTwice)
}
