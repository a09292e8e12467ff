package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirrodan/arcanum/internal/spell"
	"github.com/mirrodan/arcanum/internal/stats"
)

func TestLoad_SampleFile(t *testing.T) {
	g, err := Load(filepath.Join("testdata", "game.yaml"))
	require.NoError(t, err)

	assert.Len(t, g.Archetypes, 2)
	assert.Len(t, g.Spells, 2)
	assert.Len(t, g.Statuses, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.yaml"))
	assert.Error(t, err)
}

func TestArchetype_StatsConfig(t *testing.T) {
	g, err := Load(filepath.Join("testdata", "game.yaml"))
	require.NoError(t, err)

	hero, ok := g.Archetype("hero")
	require.True(t, ok)

	cfg, err := hero.StatsConfig()
	require.NoError(t, err)

	r := stats.NewRegistry(cfg)
	assert.Equal(t, 100.0, r.Value(stats.StatHealth))
	assert.Equal(t, 5.0, r.Value(stats.StatArmor))
	assert.Equal(t, 100.0, r.Current(stats.StatHealth))

	// Regen rule survived the conversion.
	r.ModifyResource(stats.StatHealth, -10)
	r.Tick(2.0)
	assert.Equal(t, 93.0, r.Current(stats.StatHealth))
}

func TestSpellDef_Definition(t *testing.T) {
	g, err := Load(filepath.Join("testdata", "game.yaml"))
	require.NoError(t, err)

	fireball, ok := g.Spell("fireball")
	require.True(t, ok)

	def, err := fireball.Definition()
	require.NoError(t, err)
	require.Len(t, def.Effects, 3)

	base := def.Effects[0].(*spell.BaseProjectileStats)
	assert.Equal(t, 12.0, base.Speed)
	assert.Equal(t, 0.25, base.TickInterval)

	add := def.Effects[1].(*spell.AddDamage)
	assert.Equal(t, stats.DamageFire, add.Kind)
	assert.Equal(t, 30.0, add.Amount)
}

func TestStatusDef_Template(t *testing.T) {
	g, err := Load(filepath.Join("testdata", "game.yaml"))
	require.NoError(t, err)

	burning, ok := g.Status("burning")
	require.True(t, ok)

	tmpl, err := burning.Template()
	require.NoError(t, err)
	assert.Equal(t, "burning", tmpl.Name())
	assert.Equal(t, 4.0, tmpl.Duration())

	// Each build is a distinct template with its own source handle.
	other, err := burning.Template()
	require.NoError(t, err)
	assert.NotEqual(t, tmpl.Source(), other.Source())
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_RejectsUnknownStatKind(t *testing.T) {
	path := writeTempConfig(t, `
archetypes:
  - name: broken
    stats:
      - {kind: Mana, base: 50}
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown stat kind")
}

func TestLoad_RejectsUnknownEffectType(t *testing.T) {
	path := writeTempConfig(t, `
spells:
  - name: broken
    effects:
      - type: Blink
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown effect type")
}

func TestLoad_RejectsMalformedEffectParam(t *testing.T) {
	path := writeTempConfig(t, `
spells:
  - name: broken
    effects:
      - type: AddDamage
        params: {kind: Fire, amount: "lots"}
`)
	_, err := Load(path)
	assert.Error(t, err)
}
