package spell

// BaseProjectileStats sets the projectile's flight parameters once at
// spawn. Usually the first effect of a spell; later effects may still
// override individual fields.
// Params: "speed", "lifetime", "size", "tickInterval".
type BaseProjectileStats struct {
	Speed        float64
	Lifetime     float64
	Size         float64
	TickInterval float64
}

func NewBaseProjectileStats(params map[string]string) (Effect, error) {
	e := &BaseProjectileStats{}
	var err error
	if e.Speed, err = floatParam(params, "speed", 10); err != nil {
		return nil, err
	}
	if e.Lifetime, err = floatParam(params, "lifetime", 3); err != nil {
		return nil, err
	}
	if e.Size, err = floatParam(params, "size", 0.5); err != nil {
		return nil, err
	}
	if e.TickInterval, err = floatParam(params, "tickInterval", 0); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *BaseProjectileStats) Name() string { return "BaseProjectileStats" }

func (e *BaseProjectileStats) Clone() Effect {
	c := *e
	return &c
}

func (e *BaseProjectileStats) Initialize(p *Projectile) {
	p.Speed = e.Speed
	p.Lifetime = e.Lifetime
	p.Size = e.Size
	p.TickInterval = e.TickInterval
}

func init() {
	RegisterEffect("BaseProjectileStats", NewBaseProjectileStats)
}
