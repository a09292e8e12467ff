package spell

// Homing re-aims the projectile toward the nearest valid target within a
// radius, turning at a bounded rate rather than snapping. Target lookup
// runs at most once per scan interval; between scans the projectile keeps
// steering toward the last known position.
// Params: "radius", "turnRate" (radians/second), "scanInterval" (seconds).
type Homing struct {
	Radius       float64
	TurnRate     float64
	ScanInterval float64

	// Per-instance runtime state, reset on Clone.
	sinceScan float64
	aim       Vec2
	hasAim    bool
}

func NewHoming(params map[string]string) (Effect, error) {
	e := &Homing{}
	var err error
	if e.Radius, err = floatParam(params, "radius", 8); err != nil {
		return nil, err
	}
	if e.TurnRate, err = floatParam(params, "turnRate", 3); err != nil {
		return nil, err
	}
	if e.ScanInterval, err = floatParam(params, "scanInterval", 0.1); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Homing) Name() string { return "Homing" }

func (e *Homing) Clone() Effect {
	return &Homing{Radius: e.Radius, TurnRate: e.TurnRate, ScanInterval: e.ScanInterval}
}

func (e *Homing) OnUpdate(p *Projectile, dt float64) {
	env := p.Env()
	if env == nil {
		return
	}

	e.sinceScan += dt
	if !e.hasAim || e.sinceScan >= e.ScanInterval {
		e.sinceScan = 0
		if _, pos, ok := env.NearestTarget(p.Position, e.Radius, p.Owner()); ok {
			e.aim = pos
			e.hasAim = true
		} else {
			e.hasAim = false
		}
	}
	if !e.hasAim {
		return
	}

	want := e.aim.Sub(p.Position)
	p.Direction = RotateToward(p.Direction, want, e.TurnRate*dt)
}

func init() {
	RegisterEffect("Homing", NewHoming)
}
