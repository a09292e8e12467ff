package stats

// ChangeEvent describes one observed mutation of a resource's current
// value. Delivered synchronously, before the mutating call returns.
type ChangeEvent struct {
	Kind  StatKind
	Old   float64
	New   float64
	Max   float64
	Ratio float64
}

// Resource wraps a Stat used as a capacity limit and tracks a separately
// owned current value, clamped to [0, max] after every mutation.
//
// Current is independent runtime state, not derived from max: it only
// changes through explicit mutation, plus re-clamping when max shrinks
// (e.g. a buff expiring).
type Resource struct {
	kind    StatKind
	max     *Stat
	current float64
	notify  func(ChangeEvent)
}

// NewResource wraps max as the capacity of a new resource, starting full.
// notify may be nil; otherwise it receives every real change.
func NewResource(kind StatKind, max *Stat, notify func(ChangeEvent)) *Resource {
	return &Resource{
		kind:    kind,
		max:     max,
		current: max.Value(),
		notify:  notify,
	}
}

// Current returns the current value.
func (r *Resource) Current() float64 {
	return r.current
}

// Max returns the effective capacity.
func (r *Resource) Max() float64 {
	return r.max.Value()
}

// Ratio returns current/max, or 0 when max ≤ 0.
func (r *Resource) Ratio() float64 {
	max := r.max.Value()
	if max <= 0 {
		return 0
	}
	return r.current / max
}

// MaxStat exposes the wrapped capacity Stat for modifier bookkeeping.
func (r *Resource) MaxStat() *Stat {
	return r.max
}

// Modify adds delta to current, clamping to [0, max]. A notification is
// fired only if the clamped result differs from the prior value.
func (r *Resource) Modify(delta float64) {
	r.setCurrent(r.current + delta)
}

// SetCurrent sets current to an absolute value with the same
// clamp/notify semantics as Modify.
func (r *Resource) SetCurrent(value float64) {
	r.setCurrent(value)
}

// SetToMax fills the resource.
func (r *Resource) SetToMax() {
	r.setCurrent(r.max.Value())
}

// SetToZero empties the resource.
func (r *Resource) SetToZero() {
	r.setCurrent(0)
}

// ClampToMax re-clamps current against the capacity. Must be called after
// any modifier change on the max Stat, since max can shrink.
func (r *Resource) ClampToMax() {
	if max := r.max.Value(); r.current > max {
		r.setCurrent(max)
	}
}

func (r *Resource) setCurrent(value float64) {
	max := r.max.Value()
	if value > max {
		value = max
	}
	if value < 0 {
		value = 0
	}
	if value == r.current {
		return
	}
	old := r.current
	r.current = value
	if r.notify != nil {
		r.notify(ChangeEvent{
			Kind:  r.kind,
			Old:   old,
			New:   value,
			Max:   max,
			Ratio: r.Ratio(),
		})
	}
}
