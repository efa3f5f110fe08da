package engine

import "fmt"

// EffectKind is one of the fixed item effect categories.
type EffectKind int

const (
	EffectDamage EffectKind = iota
	EffectRange
	EffectFireRate
	EffectGoldBonus

	effectKindCount
)

var effectNames = [effectKindCount]string{
	EffectDamage:    "damage",
	EffectRange:     "range",
	EffectFireRate:  "fireRate",
	EffectGoldBonus: "goldBonus",
}

func (k EffectKind) String() string {
	if k < 0 || k >= effectKindCount {
		return fmt.Sprintf("EffectKind(%d)", int(k))
	}
	return effectNames[k]
}

// Valid reports whether k is a known kind.
func (k EffectKind) Valid() bool {
	return k >= 0 && k < effectKindCount
}

// ParseEffectKind maps a configuration name to its kind.
func ParseEffectKind(s string) (EffectKind, bool) {
	for k, name := range effectNames {
		if name == s {
			return EffectKind(k), true
		}
	}
	return 0, false
}

// EffectSnapshot is a copy of the accumulated bonuses, in percent.
type EffectSnapshot struct {
	Damage    float64
	Range     float64
	FireRate  float64
	GoldBonus float64
}

// EffectRegistry accumulates additive percentage bonuses per kind.
// Every defender reads from the same registry, so bonuses apply
// retroactively to units placed before the item was collected.
type EffectRegistry struct {
	bonus [effectKindCount]float64
}

// NewEffectRegistry returns a registry with all bonuses at zero.
func NewEffectRegistry() *EffectRegistry {
	return &EffectRegistry{}
}

// Apply adds value percent to kind. Unknown kinds are ignored.
func (r *EffectRegistry) Apply(kind EffectKind, value float64) {
	if !kind.Valid() {
		return
	}
	r.bonus[kind] += value
}

// Bonus returns the accumulated percentage for kind.
func (r *EffectRegistry) Bonus(kind EffectKind) float64 {
	if !kind.Valid() {
		return 0
	}
	return r.bonus[kind]
}

// Multiplier returns 1 + bonus/100 for kind.
func (r *EffectRegistry) Multiplier(kind EffectKind) float64 {
	return 1 + r.Bonus(kind)/100
}

// Reset zeroes every bonus.
func (r *EffectRegistry) Reset() {
	r.bonus = [effectKindCount]float64{}
}

func (r *EffectRegistry) Snapshot() EffectSnapshot {
	return EffectSnapshot{
		Damage:    r.bonus[EffectDamage],
		Range:     r.bonus[EffectRange],
		FireRate:  r.bonus[EffectFireRate],
		GoldBonus: r.bonus[EffectGoldBonus],
	}
}
