// Package status implements named bundles of stat modifiers that are
// applied to and removed from a stat registry as a unit.
package status

import (
	"log/slog"

	"github.com/mirrodan/arcanum/internal/stats"
)

// ModifierSpec is one authored entry of a status effect.
type ModifierSpec struct {
	Stat  stats.StatKind
	Value float64
	Kind  stats.ModifierKind
}

// Effect is an immutable status-effect template: authored once and shared
// by reference across all applications. Each Apply instantiates fresh
// modifiers on the target registry, all tagged with this template's
// source handle.
type Effect struct {
	name     string
	duration float64 // seconds; ≤ 0 ⇒ permanent modifiers
	entries  []ModifierSpec
	source   stats.SourceID
}

// New creates a status-effect template with a fresh source handle.
func New(name string, duration float64, entries ...ModifierSpec) *Effect {
	return &Effect{
		name:     name,
		duration: duration,
		entries:  entries,
		source:   stats.NewSourceID(),
	}
}

// Name returns the authored name.
func (e *Effect) Name() string {
	return e.name
}

// Duration returns the shared duration of the bundled modifiers.
func (e *Effect) Duration() float64 {
	return e.duration
}

// Source returns the handle tagging every modifier this template creates.
func (e *Effect) Source() stats.SourceID {
	return e.source
}

// Apply instantiates one modifier per entry on the registry.
//
// Two applications of the same template to the same target create
// independent modifiers sharing one source handle: removal (explicit or
// by either expiry) is source-keyed and clears both. Stacking is
// therefore "shared fate", not independent stacks.
func (e *Effect) Apply(r *stats.Registry) {
	for _, ent := range e.entries {
		r.AddModifier(ent.Stat, stats.Modifier{
			Value:     ent.Value,
			Kind:      ent.Kind,
			Remaining: e.duration,
			Source:    e.source,
		})
	}
	slog.Debug("status applied", "name", e.name, "duration", e.duration)
}

// Remove deletes every modifier this template has applied to the
// registry, across all applications.
func (e *Effect) Remove(r *stats.Registry) {
	r.RemoveModifiersFromSource(e.source)
	slog.Debug("status removed", "name", e.name)
}
