package engine

import (
	"math"

	"github.com/vovakirdan/wizard-td/internal/config"
	"github.com/vovakirdan/wizard-td/internal/core"
)

// DefenderID identifies a placed defender within a simulation.
type DefenderID int

// Element is the damage flavour of an elementalist shot.
type Element string

const (
	ElementNone      Element = ""
	ElementFire      Element = "fire"
	ElementIce       Element = "ice"
	ElementLightning Element = "lightning"
)

// Defender is a placed wizard. Its effective stats are derived on demand
// from the shared effect registry.
type Defender struct {
	ID   DefenderID
	Kind string
	Col  int
	Row  int

	pos     core.Vec
	cfg     config.DefenderConfig
	effects *EffectRegistry

	lastFireMs float64
	hasFired   bool
	shots      int

	lastSummonMs float64
	hasSummoned  bool
}

// NewDefender places a defender of kind at the given cell and world position.
func NewDefender(id DefenderID, kind string, cfg config.DefenderConfig, col, row int, pos core.Vec, effects *EffectRegistry) *Defender {
	return &Defender{
		ID:      id,
		Kind:    kind,
		Col:     col,
		Row:     row,
		pos:     pos,
		cfg:     cfg,
		effects: effects,
	}
}

func (d *Defender) Pos() core.Vec                 { return d.pos }
func (d *Defender) Config() config.DefenderConfig { return d.cfg }

// floorStat floors a scaled stat, tolerating float error just below an
// integer: 20*1.15 floors to 23, not 22. Every scaled integer stat (health,
// damage, range, rewards) goes through here.
func floorStat(v float64) int {
	return int(math.Floor(v + 1e-9))
}

// EffectiveDamage is floor(damage * damage multiplier).
func (d *Defender) EffectiveDamage() int {
	return floorStat(float64(d.cfg.Damage) * d.effects.Multiplier(EffectDamage))
}

// EffectiveRange is floor(range * range multiplier).
func (d *Defender) EffectiveRange() int {
	return floorStat(float64(d.cfg.Range) * d.effects.Multiplier(EffectRange))
}

// EffectiveFireRate is shots per second including bonuses.
func (d *Defender) EffectiveFireRate() float64 {
	return d.cfg.FireRate * d.effects.Multiplier(EffectFireRate)
}

// FireInterval is the cooldown between shots in milliseconds.
func (d *Defender) FireInterval() float64 {
	rate := d.EffectiveFireRate()
	if rate <= 0 {
		return math.Inf(1)
	}
	return 1000 / rate
}

// CanFire reports whether the cooldown allows a shot at now.
// A defender that has never fired may fire immediately.
func (d *Defender) CanFire(nowMs float64) bool {
	if d.EffectiveFireRate() <= 0 {
		return false
	}
	if !d.hasFired {
		return true
	}
	return nowMs-d.lastFireMs >= d.FireInterval()
}

// Fire records a shot at now and returns the element it carries.
func (d *Defender) Fire(nowMs float64) Element {
	d.lastFireMs = nowMs
	d.hasFired = true

	el := ElementNone
	if n := len(d.cfg.ElementCycle); n > 0 {
		el = Element(d.cfg.ElementCycle[d.shots%n])
	}
	d.shots++
	return el
}

// DistanceTo returns the distance from the defender to p.
func (d *Defender) DistanceTo(p core.Vec) float64 {
	return core.Dist(d.pos, p)
}

// CanTarget reports whether p lies within effective range.
func (d *Defender) CanTarget(p core.Vec) bool {
	return d.DistanceTo(p) <= float64(d.EffectiveRange())
}

// Summoner reports whether this defender raises skeletons.
func (d *Defender) Summoner() bool {
	return d.cfg.SummonCooldownMs > 0 && d.cfg.SkeletonHealth > 0
}

// Enchanter reports whether this defender projects a damage aura.
func (d *Defender) Enchanter() bool {
	return d.cfg.BuffRange > 0 && d.cfg.BuffMultiplier > 0
}

func (d *Defender) canSummon(nowMs float64) bool {
	if !d.Summoner() {
		return false
	}
	if !d.hasSummoned {
		return true
	}
	return nowMs-d.lastSummonMs >= d.cfg.SummonCooldownMs
}

func (d *Defender) markSummoned(nowMs float64) {
	d.lastSummonMs = nowMs
	d.hasSummoned = true
}
