package spell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirrodan/arcanum/internal/combat"
	"github.com/mirrodan/arcanum/internal/stats"
)

// probe records every hook invocation into a shared log for ordering and
// idempotence checks.
type probe struct {
	label string
	log   *[]string
}

func (p *probe) Name() string { return p.label }

func (p *probe) Clone() Effect { return &probe{label: p.label, log: p.log} }

func (p *probe) record(hook string) { *p.log = append(*p.log, p.label+"."+hook) }

func (p *probe) Initialize(*Projectile) { p.record("init") }

func (p *probe) OnUpdate(*Projectile, float64) { p.record("update") }

func (p *probe) OnTick(*Projectile) { p.record("tick") }

func (p *probe) OnCompileHit(*Projectile, *combat.HitContext) { p.record("compile") }

func (p *probe) OnHit(*Projectile, *combat.HitContext, combat.Result) { p.record("hit") }

func (p *probe) OnLifetimeEnd(*Projectile) { p.record("end") }

type scheduledCall struct {
	delay float64
	fn    func()
}

type fakeEnv struct {
	target    combat.Damageable
	targetPos Vec2
	scheduled []scheduledCall
}

func (f *fakeEnv) NearestTarget(pos Vec2, radius float64, exclude *stats.Registry) (combat.Damageable, Vec2, bool) {
	if f.target == nil || f.target.StatRegistry() == exclude {
		return nil, Vec2{}, false
	}
	if f.targetPos.Sub(pos).Len() > radius {
		return nil, Vec2{}, false
	}
	return f.target, f.targetPos, true
}

func (f *fakeEnv) Schedule(delay float64, fn func()) {
	f.scheduled = append(f.scheduled, scheduledCall{delay: delay, fn: fn})
}

type fakeTarget struct {
	reg *stats.Registry
}

func (f *fakeTarget) StatRegistry() *stats.Registry { return f.reg }

func newFakeTarget(t *testing.T) *fakeTarget {
	t.Helper()
	return &fakeTarget{reg: stats.NewRegistry(stats.Config{
		Stats:     []stats.Definition{{Kind: stats.StatHealth, Base: 100}},
		Resources: []stats.StatKind{stats.StatHealth},
	})}
}

func baseStats(speed, lifetime, tick float64) Effect {
	return &BaseProjectileStats{Speed: speed, Lifetime: lifetime, Size: 0.5, TickInterval: tick}
}

func launchTest(t *testing.T, env Environment, deliver DeliverFunc, effects ...Effect) *Projectile {
	t.Helper()
	if deliver == nil {
		deliver = combat.ResolveHit
	}
	def := &Definition{Name: "test", Effects: effects}
	return Launch(def, nil, Vec2{}, Vec2{X: 1}, env, deliver)
}

func TestLaunch_InitializesInOrderAndFlies(t *testing.T) {
	var log []string
	p := launchTest(t, &fakeEnv{}, nil,
		baseStats(10, 3, 0),
		&probe{label: "a", log: &log},
		&probe{label: "b", log: &log},
	)

	assert.Equal(t, StateFlying, p.State())
	assert.Equal(t, 10.0, p.Speed)
	assert.Equal(t, []string{"a.init", "b.init"}, log)
}

func TestStep_IntegratesMotion(t *testing.T) {
	p := launchTest(t, &fakeEnv{}, nil, baseStats(10, 3, 0))
	p.Step(0.5)
	assert.InDelta(t, 5.0, p.Position.X, 1e-9)
	assert.InDelta(t, 0.0, p.Position.Y, 1e-9)
}

func TestStep_OneTickPerStepNoCatchUp(t *testing.T) {
	var log []string
	p := launchTest(t, &fakeEnv{}, nil,
		baseStats(1, 100, 0.1),
		&probe{label: "p", log: &log},
	)

	// A single big step past several tick deadlines fires exactly one
	// tick; the deadline advances by one interval only.
	p.Step(0.55)
	ticks := countSuffix(log, ".tick")
	assert.Equal(t, 1, ticks)

	// The next deadline is 0.2, already passed: one more tick per step.
	p.Step(0.01)
	assert.Equal(t, 2, countSuffix(log, ".tick"))
}

func countSuffix(log []string, suffix string) int {
	n := 0
	for _, s := range log {
		if strings.HasSuffix(s, suffix) {
			n++
		}
	}
	return n
}

func TestStep_ExpiryFiresLifetimeEndOnce(t *testing.T) {
	var log []string
	p := launchTest(t, &fakeEnv{}, nil,
		baseStats(1, 1, 0),
		&probe{label: "p", log: &log},
	)

	p.Step(2.0)
	assert.Equal(t, StateDestroyed, p.State())
	assert.Equal(t, 1, countSuffix(log, ".end"))

	// Racing a second transition into the terminal state must not
	// double-fire teardown.
	p.Step(2.0)
	p.Expire()
	p.HandleImpact(newFakeTarget(t))
	assert.Equal(t, 1, countSuffix(log, ".end"))
	assert.Equal(t, 0, countSuffix(log, ".hit"))
}

func TestHandleImpact_PipelineOrder(t *testing.T) {
	var log []string
	target := newFakeTarget(t)
	p := launchTest(t, &fakeEnv{}, nil,
		baseStats(1, 10, 0),
		&probe{label: "a", log: &log},
		&probe{label: "b", log: &log},
	)

	p.HandleImpact(target)
	assert.Equal(t, StateDestroyed, p.State())
	assert.Equal(t,
		[]string{"a.init", "b.init", "a.compile", "b.compile", "a.hit", "b.hit"},
		log)

	// Already destroyed: a second impact is ignored.
	p.HandleImpact(target)
	assert.Equal(t, 2, countSuffix(log, ".hit"))
}

func TestHandleImpact_IgnoresOwner(t *testing.T) {
	owner := newFakeTarget(t)
	def := &Definition{Name: "test", Effects: []Effect{baseStats(1, 10, 0)}}
	p := Launch(def, owner.reg, Vec2{}, Vec2{X: 1}, &fakeEnv{}, combat.ResolveHit)

	p.HandleImpact(owner)
	assert.Equal(t, StateFlying, p.State())
	assert.Equal(t, 100.0, owner.reg.Current(stats.StatHealth))
}

func TestHandleImpact_DamagePipeline(t *testing.T) {
	target := newFakeTarget(t)
	p := launchTest(t, &fakeEnv{}, nil,
		baseStats(1, 10, 0),
		&AddDamage{Kind: stats.DamagePhysical, Amount: 20},
		&AddDamagePercent{Kind: stats.DamagePhysical, Percent: 50},
	)

	p.HandleImpact(target)
	assert.Equal(t, 70.0, target.reg.Current(stats.StatHealth)) // 20 × 1.5 = 30
}

func TestAddDamagePercent_OrderMatters(t *testing.T) {
	target := newFakeTarget(t)
	// Percent listed before the damage it would scale: sees nothing.
	p := launchTest(t, &fakeEnv{}, nil,
		baseStats(1, 10, 0),
		&AddDamagePercent{Kind: stats.DamagePhysical, Percent: 50},
		&AddDamage{Kind: stats.DamagePhysical, Amount: 20},
	)

	p.HandleImpact(target)
	assert.Equal(t, 80.0, target.reg.Current(stats.StatHealth))
}

func TestConvertDamage_RewritesKind(t *testing.T) {
	var compiled *combat.HitContext
	deliver := func(hit *combat.HitContext) combat.Result {
		compiled = hit
		return combat.Result{}
	}
	p := launchTest(t, &fakeEnv{}, deliver,
		baseStats(1, 10, 0),
		&AddDamage{Kind: stats.DamagePhysical, Amount: 20},
		&ConvertDamage{From: stats.DamagePhysical, To: stats.DamageFire},
	)

	p.HandleImpact(newFakeTarget(t))
	require.NotNil(t, compiled)
	require.Len(t, compiled.Damages, 1)
	assert.Equal(t, stats.DamageFire, compiled.Damages[0].Kind)
	assert.Equal(t, 20.0, compiled.Damages[0].Amount)
}
