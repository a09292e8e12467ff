package stats

import "fmt"

// StatKind identifies a numeric attribute tracked by a Registry.
//
// Ordinal values are stable: saved state and authoring data reference kinds
// by value, so new kinds must be appended at the end, never reordered.
type StatKind int8

const (
	StatHealth StatKind = iota
	StatArmor
	StatCritChance      // percent, 0..100
	StatCritDamage      // percent bonus on crit, e.g. 50 = +50%
	StatFireDamageBonus // fraction, e.g. 0.2 = +20% fire damage dealt
	StatMoveSpeed
	StatContactDamage
	StatContactCooldown // seconds between contact hits
	StatFireResistance  // percent, 0..100
)

var statKindNames = map[StatKind]string{
	StatHealth:          "Health",
	StatArmor:           "Armor",
	StatCritChance:      "CritChance",
	StatCritDamage:      "CritDamage",
	StatFireDamageBonus: "FireDamageBonus",
	StatMoveSpeed:       "MoveSpeed",
	StatContactDamage:   "ContactDamage",
	StatContactCooldown: "ContactCooldown",
	StatFireResistance:  "FireResistance",
}

func (k StatKind) String() string {
	if name, ok := statKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("StatKind(%d)", int8(k))
}

// ParseStatKind resolves an authoring-data name to a StatKind.
func ParseStatKind(name string) (StatKind, error) {
	for k, n := range statKindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown stat kind: %q", name)
}

// DamageKind identifies a damage category. Append-only, like StatKind.
type DamageKind int8

const (
	DamagePhysical DamageKind = iota
	DamageFire
)

var damageKindNames = map[DamageKind]string{
	DamagePhysical: "Physical",
	DamageFire:     "Fire",
}

func (k DamageKind) String() string {
	if name, ok := damageKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("DamageKind(%d)", int8(k))
}

// ParseDamageKind resolves an authoring-data name to a DamageKind.
func ParseDamageKind(name string) (DamageKind, error) {
	for k, n := range damageKindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown damage kind: %q", name)
}

// ModifierKind defines how a modifier combines into a stat's effective value.
type ModifierKind int8

const (
	ModFlat            ModifierKind = iota // additive bonus (e.g. +10 armor)
	ModPercentAdd                          // summed, then applied once (0.2 = +20%)
	ModPercentMultiply                     // each applied individually (0.5 = ×1.5)
)

var modifierKindNames = map[ModifierKind]string{
	ModFlat:            "Flat",
	ModPercentAdd:      "PercentAdd",
	ModPercentMultiply: "PercentMultiply",
}

func (k ModifierKind) String() string {
	if name, ok := modifierKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ModifierKind(%d)", int8(k))
}

// ParseModifierKind resolves an authoring-data name to a ModifierKind.
func ParseModifierKind(name string) (ModifierKind, error) {
	for k, n := range modifierKindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown modifier kind: %q", name)
}
