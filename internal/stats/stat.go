package stats

import "math"

// Stat is a single numeric attribute: a base value plus an ordered
// collection of timed modifiers.
type Stat struct {
	base      float64
	modifiers []Modifier
}

// NewStat creates a Stat with the given base value and no modifiers.
func NewStat(base float64) *Stat {
	return &Stat{base: base}
}

// Base returns the unmodified base value.
func (s *Stat) Base() float64 {
	return s.base
}

// Value computes the effective value:
//
//	(base + Σflat) × (1 + ΣpercentAdd) × Π(1 + percentMultiply_i)
//
// Modifiers are folded per kind (Flat, then PercentAdd, then
// PercentMultiply), so the result does not depend on insertion order.
// Rounded to 4 decimals to keep float accumulation noise out of
// comparisons.
func (s *Stat) Value() float64 {
	flat := 0.0
	pctAdd := 0.0
	mul := 1.0
	for _, m := range s.modifiers {
		switch m.Kind {
		case ModFlat:
			flat += m.Value
		case ModPercentAdd:
			pctAdd += m.Value
		case ModPercentMultiply:
			mul *= 1.0 + m.Value
		}
	}
	return round4((s.base + flat) * (1.0 + pctAdd) * mul)
}

// AddModifier appends a modifier. No dedup: applying the same modifier
// twice stacks it twice.
func (s *Stat) AddModifier(m Modifier) {
	s.modifiers = append(s.modifiers, m)
}

// RemoveModifiersFromSource removes every modifier tagged with the given
// source, preserving the order of the remainder.
func (s *Stat) RemoveModifiersFromSource(src SourceID) {
	n := 0
	for _, m := range s.modifiers {
		if m.Source != src {
			s.modifiers[n] = m
			n++
		}
	}
	s.modifiers = s.modifiers[:n]
}

// UpdateTimers advances modifier timers by dt seconds and drops the ones
// that expire. Permanent modifiers (Remaining ≤ 0 at creation) are never
// touched.
func (s *Stat) UpdateTimers(dt float64) {
	n := 0
	for _, m := range s.modifiers {
		if !m.Permanent() {
			m.Remaining -= dt
			if m.Remaining <= 0 {
				continue
			}
		}
		s.modifiers[n] = m
		n++
	}
	s.modifiers = s.modifiers[:n]
}

// ModifierCount returns the number of active modifiers.
func (s *Stat) ModifierCount() int {
	return len(s.modifiers)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
