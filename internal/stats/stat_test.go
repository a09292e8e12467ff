package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatValue_NoModifiers(t *testing.T) {
	s := NewStat(42.5)
	assert.Equal(t, 42.5, s.Value())
}

func TestStatValue_ThreePhaseFormula(t *testing.T) {
	// (100 + 10) × (1 + 0.2) × (1 + 0.5) = 198
	s := NewStat(100)
	s.AddModifier(Modifier{Value: 10, Kind: ModFlat})
	s.AddModifier(Modifier{Value: 0.2, Kind: ModPercentAdd})
	s.AddModifier(Modifier{Value: 0.5, Kind: ModPercentMultiply})
	assert.Equal(t, 198.0, s.Value())
}

func TestStatValue_InsertionOrderIrrelevant(t *testing.T) {
	mods := []Modifier{
		{Value: 0.5, Kind: ModPercentMultiply},
		{Value: 10, Kind: ModFlat},
		{Value: 0.25, Kind: ModPercentMultiply},
		{Value: 0.2, Kind: ModPercentAdd},
		{Value: 5, Kind: ModFlat},
	}

	forward := NewStat(100)
	for _, m := range mods {
		forward.AddModifier(m)
	}
	backward := NewStat(100)
	for i := len(mods) - 1; i >= 0; i-- {
		backward.AddModifier(mods[i])
	}

	assert.Equal(t, forward.Value(), backward.Value())
	// (100+15) × 1.2 × 1.5 × 1.25 = 258.75
	assert.Equal(t, 258.75, forward.Value())
}

func TestStatValue_EachMultiplyAppliedIndividually(t *testing.T) {
	s := NewStat(100)
	s.AddModifier(Modifier{Value: 0.5, Kind: ModPercentMultiply})
	s.AddModifier(Modifier{Value: 0.5, Kind: ModPercentMultiply})
	// 100 × 1.5 × 1.5 = 225, not 100 × (1 + 1.0) = 200
	assert.Equal(t, 225.0, s.Value())
}

func TestRemoveModifiersFromSource_OnlyMatching(t *testing.T) {
	a := NewSourceID()
	b := NewSourceID()

	s := NewStat(100)
	s.AddModifier(Modifier{Value: 1, Kind: ModFlat, Source: a})
	s.AddModifier(Modifier{Value: 2, Kind: ModFlat, Source: b})
	s.AddModifier(Modifier{Value: 3, Kind: ModFlat, Source: a})
	s.AddModifier(Modifier{Value: 4, Kind: ModFlat, Source: b})

	s.RemoveModifiersFromSource(a)

	assert.Equal(t, 2, s.ModifierCount())
	assert.Equal(t, 106.0, s.Value())

	s.RemoveModifiersFromSource(b)
	assert.Equal(t, 100.0, s.Value())
}

func TestUpdateTimers_RemovesTimedExactlyOnce(t *testing.T) {
	s := NewStat(100)
	s.AddModifier(Modifier{Value: 50, Kind: ModFlat, Remaining: 1.0})

	elapsed := 0.0
	removedAt := -1.0
	for i := 0; i < 8; i++ {
		s.UpdateTimers(0.25)
		elapsed += 0.25
		if removedAt < 0 && s.ModifierCount() == 0 {
			removedAt = elapsed
		}
	}

	assert.Equal(t, 0, s.ModifierCount())
	// Removed on the step where cumulative dt reached the duration.
	assert.Equal(t, 1.0, removedAt)
	assert.Equal(t, 100.0, s.Value())
}

func TestUpdateTimers_PermanentNeverRemoved(t *testing.T) {
	s := NewStat(100)
	s.AddModifier(Modifier{Value: 50, Kind: ModFlat, Remaining: 0})
	s.AddModifier(Modifier{Value: 25, Kind: ModFlat, Remaining: -1})

	for i := 0; i < 1000; i++ {
		s.UpdateTimers(1000)
	}

	assert.Equal(t, 2, s.ModifierCount())
	assert.Equal(t, 175.0, s.Value())
}

func TestStatValue_RoundedToFourDecimals(t *testing.T) {
	s := NewStat(0.1)
	s.AddModifier(Modifier{Value: 0.2, Kind: ModFlat})
	// 0.1 + 0.2 accumulates float noise without rounding.
	assert.Equal(t, 0.3, s.Value())
}
