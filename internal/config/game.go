// Package config loads the static authoring data: entity archetypes with
// their stat definitions, spell definitions, and status-effect templates.
// Loaded once at startup and treated as immutable input.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mirrodan/arcanum/internal/spell"
	"github.com/mirrodan/arcanum/internal/stats"
	"github.com/mirrodan/arcanum/internal/status"
)

// Game is the root of the authoring file.
type Game struct {
	Archetypes []Archetype `yaml:"archetypes"`
	Spells     []SpellDef  `yaml:"spells"`
	Statuses   []StatusDef `yaml:"statuses"`
}

// Archetype declares the stats an entity kind starts with.
type Archetype struct {
	Name      string     `yaml:"name"`
	Radius    float64    `yaml:"radius"`
	Stats     []StatDef  `yaml:"stats"`
	Resources []string   `yaml:"resources"`
	Regen     []RegenDef `yaml:"regen"`
}

// StatDef is one configured stat with its base value.
type StatDef struct {
	Kind string  `yaml:"kind"`
	Base float64 `yaml:"base"`
}

// RegenDef is a passive regeneration rule for a resource.
type RegenDef struct {
	Resource      string  `yaml:"resource"`
	Rate          float64 `yaml:"rate"` // per second
	RequiresAlive bool    `yaml:"requires_alive"`
}

// SpellDef is an authored spell: named, with its effects in order.
type SpellDef struct {
	Name    string      `yaml:"name"`
	Effects []EffectDef `yaml:"effects"`
}

// EffectDef instantiates one registered spell effect. Param values are
// strings; the effect factory parses them.
type EffectDef struct {
	Type   string            `yaml:"type"`
	Params map[string]string `yaml:"params"`
}

// StatusDef is an authored status-effect template.
type StatusDef struct {
	Name      string        `yaml:"name"`
	Duration  float64       `yaml:"duration"`
	Modifiers []ModifierDef `yaml:"modifiers"`
}

// ModifierDef is one modifier entry of a status effect.
type ModifierDef struct {
	Stat  string  `yaml:"stat"`
	Value float64 `yaml:"value"`
	Kind  string  `yaml:"kind"`
}

// Load reads and validates the authoring file. Every referenced stat
// kind, damage kind and effect type must resolve; authoring mistakes are
// load-time errors, not runtime surprises.
func Load(path string) (*Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading game config: %w", err)
	}

	var g Game
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parsing game config: %w", err)
	}
	if err := g.validate(); err != nil {
		return nil, fmt.Errorf("validating game config: %w", err)
	}
	return &g, nil
}

func (g *Game) validate() error {
	for _, a := range g.Archetypes {
		if a.Name == "" {
			return fmt.Errorf("archetype without name")
		}
		if _, err := a.StatsConfig(); err != nil {
			return fmt.Errorf("archetype %s: %w", a.Name, err)
		}
	}
	for _, s := range g.Spells {
		if _, err := s.Definition(); err != nil {
			return fmt.Errorf("spell %s: %w", s.Name, err)
		}
	}
	for _, s := range g.Statuses {
		if _, err := s.Template(); err != nil {
			return fmt.Errorf("status %s: %w", s.Name, err)
		}
	}
	return nil
}

// StatsConfig converts the archetype into registry construction input.
func (a Archetype) StatsConfig() (stats.Config, error) {
	var cfg stats.Config
	for _, def := range a.Stats {
		kind, err := stats.ParseStatKind(def.Kind)
		if err != nil {
			return stats.Config{}, err
		}
		cfg.Stats = append(cfg.Stats, stats.Definition{Kind: kind, Base: def.Base})
	}
	for _, name := range a.Resources {
		kind, err := stats.ParseStatKind(name)
		if err != nil {
			return stats.Config{}, err
		}
		cfg.Resources = append(cfg.Resources, kind)
	}
	for _, def := range a.Regen {
		kind, err := stats.ParseStatKind(def.Resource)
		if err != nil {
			return stats.Config{}, err
		}
		cfg.Regen = append(cfg.Regen, stats.RegenRule{
			Resource:      kind,
			RatePerSecond: def.Rate,
			RequiresAlive: def.RequiresAlive,
		})
	}
	return cfg, nil
}

// Definition builds the spell definition with its effects in authoring
// order.
func (s SpellDef) Definition() (*spell.Definition, error) {
	def := &spell.Definition{Name: s.Name}
	for _, e := range s.Effects {
		effect, err := spell.CreateEffect(e.Type, e.Params)
		if err != nil {
			return nil, err
		}
		def.Effects = append(def.Effects, effect)
	}
	return def, nil
}

// Template builds the shared status-effect template. Call once and share
// the result: each call creates a template with its own source handle.
func (s StatusDef) Template() (*status.Effect, error) {
	entries := make([]status.ModifierSpec, 0, len(s.Modifiers))
	for _, m := range s.Modifiers {
		statKind, err := stats.ParseStatKind(m.Stat)
		if err != nil {
			return nil, err
		}
		modKind, err := stats.ParseModifierKind(m.Kind)
		if err != nil {
			return nil, err
		}
		entries = append(entries, status.ModifierSpec{Stat: statKind, Value: m.Value, Kind: modKind})
	}
	return status.New(s.Name, s.Duration, entries...), nil
}

// Archetype returns the named archetype, if present.
func (g *Game) Archetype(name string) (Archetype, bool) {
	for _, a := range g.Archetypes {
		if a.Name == name {
			return a, true
		}
	}
	return Archetype{}, false
}

// Spell returns the named spell definition, if present.
func (g *Game) Spell(name string) (SpellDef, bool) {
	for _, s := range g.Spells {
		if s.Name == name {
			return s, true
		}
	}
	return SpellDef{}, false
}

// Status returns the named status definition, if present.
func (g *Game) Status(name string) (StatusDef, bool) {
	for _, s := range g.Statuses {
		if s.Name == name {
			return s, true
		}
	}
	return StatusDef{}, false
}
