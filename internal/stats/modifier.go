package stats

import "github.com/google/uuid"

// SourceID is an opaque handle identifying who created a modifier.
// Compared by value; removal is keyed on it. Status-effect templates and
// ad-hoc callers obtain one at creation time via NewSourceID.
type SourceID string

// NewSourceID returns a fresh unique source handle.
func NewSourceID() SourceID {
	return SourceID(uuid.NewString())
}

// Modifier is a single timed or permanent adjustment to a Stat.
// Remaining ≤ 0 means permanent: the modifier is never expired by timers.
type Modifier struct {
	Value     float64
	Kind      ModifierKind
	Remaining float64 // seconds; ≤ 0 ⇒ permanent
	Source    SourceID
}

// Permanent reports whether the modifier never expires.
func (m Modifier) Permanent() bool {
	return m.Remaining <= 0
}
