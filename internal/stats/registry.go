package stats

import "log/slog"

// Definition declares one stat an entity starts with.
type Definition struct {
	Kind StatKind
	Base float64
}

// RegenRule applies passive regeneration to a resource every tick.
// When RequiresAlive is set the rule is skipped while current ≤ 0, so a
// dead entity does not passively revive.
type RegenRule struct {
	Resource      StatKind
	RatePerSecond float64
	RequiresAlive bool
}

// Config is the immutable construction input for a Registry: which stats
// exist, which of them are depletable resources, and the regen rules.
// Resource designation is explicit constructor input rather than ambient
// package state, so differing configurations can coexist.
type Config struct {
	Stats     []Definition
	Resources []StatKind
	Regen     []RegenRule
}

// Registry owns one Stat per configured StatKind for a single entity,
// wraps resource kinds in a Resource, advances modifier timers, applies
// regen, and fans out resource change events.
//
// A Registry belongs to exactly one entity and is mutated only from that
// entity's simulation step or by callers acting on it directly; there is
// no internal locking.
type Registry struct {
	stats     map[StatKind]*Stat
	resources map[StatKind]*Resource
	regen     []RegenRule

	subs       map[StatKind][]func(ChangeEvent)
	globalSubs []func(ChangeEvent)
}

// NewRegistry builds a Registry from static configuration. Resource kinds
// that have no stat definition are skipped with a warning, as are regen
// rules pointing at a non-resource.
func NewRegistry(cfg Config) *Registry {
	r := &Registry{
		stats:     make(map[StatKind]*Stat, len(cfg.Stats)),
		resources: make(map[StatKind]*Resource),
		subs:      make(map[StatKind][]func(ChangeEvent)),
	}
	for _, def := range cfg.Stats {
		r.stats[def.Kind] = NewStat(def.Base)
	}
	for _, kind := range cfg.Resources {
		stat, ok := r.stats[kind]
		if !ok {
			slog.Warn("resource kind has no stat definition", "kind", kind)
			continue
		}
		r.resources[kind] = NewResource(kind, stat, func(ev ChangeEvent) {
			r.publish(kind, ev)
		})
	}
	for _, rule := range cfg.Regen {
		if _, ok := r.resources[rule.Resource]; !ok {
			slog.Warn("regen rule targets non-resource", "kind", rule.Resource)
			continue
		}
		r.regen = append(r.regen, rule)
	}
	return r
}

// Value returns the effective value of a stat, or 0 with a warning if the
// kind is not configured. Entities may legitimately lack optional stats,
// so this is never fatal.
func (r *Registry) Value(kind StatKind) float64 {
	stat, ok := r.stats[kind]
	if !ok {
		slog.Warn("stat not configured", "kind", kind)
		return 0
	}
	return stat.Value()
}

// Has reports whether the kind is configured.
func (r *Registry) Has(kind StatKind) bool {
	_, ok := r.stats[kind]
	return ok
}

// AddModifier adds a modifier to the stat of the given kind. If the kind
// is a resource the paired Resource is re-clamped immediately, since the
// capacity may have changed.
func (r *Registry) AddModifier(kind StatKind, m Modifier) {
	stat, ok := r.stats[kind]
	if !ok {
		slog.Warn("modifier for unconfigured stat", "kind", kind)
		return
	}
	stat.AddModifier(m)
	if res, ok := r.resources[kind]; ok {
		res.ClampToMax()
	}
}

// RemoveModifiersFromSource removes all modifiers tagged with src from
// every stat, then re-clamps every resource.
func (r *Registry) RemoveModifiersFromSource(src SourceID) {
	for _, stat := range r.stats {
		stat.RemoveModifiersFromSource(src)
	}
	for _, res := range r.resources {
		res.ClampToMax()
	}
}

// Resource returns the Resource for a kind, or nil if the kind is not
// configured as one.
func (r *Registry) Resource(kind StatKind) *Resource {
	return r.resources[kind]
}

// Current returns the resource's current value, or 0 if not a resource.
func (r *Registry) Current(kind StatKind) float64 {
	res, ok := r.resources[kind]
	if !ok {
		slog.Warn("not a resource", "kind", kind)
		return 0
	}
	return res.Current()
}

// Max returns the resource's capacity, or 0 if not a resource.
func (r *Registry) Max(kind StatKind) float64 {
	res, ok := r.resources[kind]
	if !ok {
		slog.Warn("not a resource", "kind", kind)
		return 0
	}
	return res.Max()
}

// Ratio returns current/max for the resource, or 0 if not a resource.
func (r *Registry) Ratio(kind StatKind) float64 {
	res, ok := r.resources[kind]
	if !ok {
		slog.Warn("not a resource", "kind", kind)
		return 0
	}
	return res.Ratio()
}

// ModifyResource adds delta to the resource's current value.
// No-op with a warning if the kind is not a resource.
func (r *Registry) ModifyResource(kind StatKind, delta float64) {
	res, ok := r.resources[kind]
	if !ok {
		slog.Warn("not a resource", "kind", kind)
		return
	}
	res.Modify(delta)
}

// SetResourceToMax fills the resource. No-op if not a resource.
func (r *Registry) SetResourceToMax(kind StatKind) {
	res, ok := r.resources[kind]
	if !ok {
		slog.Warn("not a resource", "kind", kind)
		return
	}
	res.SetToMax()
}

// SetResourceToZero empties the resource. No-op if not a resource.
func (r *Registry) SetResourceToZero(kind StatKind) {
	res, ok := r.resources[kind]
	if !ok {
		slog.Warn("not a resource", "kind", kind)
		return
	}
	res.SetToZero()
}

// Subscribe registers a listener for changes to one resource kind.
// Delivery is synchronous, in-line with the mutation; listeners must not
// re-enter the same mutation.
func (r *Registry) Subscribe(kind StatKind, fn func(ChangeEvent)) {
	r.subs[kind] = append(r.subs[kind], fn)
}

// SubscribeAll registers a listener for changes to every resource.
func (r *Registry) SubscribeAll(fn func(ChangeEvent)) {
	r.globalSubs = append(r.globalSubs, fn)
}

// Tick advances the registry by dt seconds: modifier timers first, then a
// re-clamp of every resource (an expired buff may have shrunk a max),
// then regen rules.
func (r *Registry) Tick(dt float64) {
	for _, stat := range r.stats {
		stat.UpdateTimers(dt)
	}
	for _, res := range r.resources {
		res.ClampToMax()
	}
	for _, rule := range r.regen {
		res := r.resources[rule.Resource]
		if rule.RequiresAlive && res.Current() <= 0 {
			continue
		}
		res.Modify(rule.RatePerSecond * dt)
	}
}

func (r *Registry) publish(kind StatKind, ev ChangeEvent) {
	for _, fn := range r.subs[kind] {
		fn(ev)
	}
	for _, fn := range r.globalSubs {
		fn(ev)
	}
}
