package engine

import (
	"math"

	"github.com/vovakirdan/wizard-td/internal/config"
	"github.com/vovakirdan/wizard-td/internal/core"
)

// EnemyID identifies an enemy within a simulation.
type EnemyID int

// EnemyState is the lifecycle of an enemy.
type EnemyState int

const (
	EnemyActive EnemyState = iota
	EnemyDead
	EnemyEscaped
)

func (s EnemyState) String() string {
	switch s {
	case EnemyActive:
		return "active"
	case EnemyDead:
		return "dead"
	case EnemyEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}

// Enemy walks the path waypoint by waypoint. Health and speed are fixed at
// spawn from the wave it spawned in.
type Enemy struct {
	ID         EnemyID
	Kind       string
	Name       string
	Boss       bool
	Wave       int
	MaxHealth  int
	Health     int
	Speed      float64 // Units per second before status effects
	GoldReward int

	pos       core.Vec
	pathIndex int
	state     EnemyState
	path      []GridPosition
	tolerance float64

	slowFactor      float64
	slowRemainingMs float64
}

// ScaledHealth returns floor(base * scale^(wave-1)), never below 1.
func ScaledHealth(base int, scale float64, wave int) int {
	h := floorStat(float64(base) * math.Pow(scale, float64(wave-1)))
	return max(h, 1)
}

// SpeedMultiplier returns min(maxMult, scale^(wave-1)).
func SpeedMultiplier(scale, maxMult float64, wave int) float64 {
	return math.Min(maxMult, math.Pow(scale, float64(wave-1)))
}

// NewEnemy creates an enemy at the path entrance, scaled for wave.
func NewEnemy(id EnemyID, kind string, cfg config.EnemyConfig, waves config.WaveConfig, wave int, path []GridPosition, tolerance float64) *Enemy {
	hp := ScaledHealth(cfg.Health, waves.EnemyHealthScale, wave)
	e := &Enemy{
		ID:         id,
		Kind:       kind,
		Name:       cfg.Name,
		Boss:       cfg.Boss,
		Wave:       wave,
		MaxHealth:  hp,
		Health:     hp,
		Speed:      cfg.Speed * SpeedMultiplier(waves.EnemySpeedScale, waves.MaxSpeedMultiplier, wave),
		GoldReward: cfg.GoldReward,
		path:       path,
		tolerance:  tolerance,
		slowFactor: 1,
	}
	if len(path) > 0 {
		e.pos = path[0].Pos()
	}
	return e
}

func (e *Enemy) Pos() core.Vec          { return e.pos }
func (e *Enemy) State() EnemyState      { return e.state }
func (e *Enemy) Active() bool           { return e.state == EnemyActive }
func (e *Enemy) PathIndex() int         { return e.pathIndex }
func (e *Enemy) Slowed() bool           { return e.slowRemainingMs > 0 }
func (e *Enemy) SlowRemaining() float64 { return e.slowRemainingMs }

// EffectiveSpeed is the current speed including slows.
func (e *Enemy) EffectiveSpeed() float64 {
	if e.Slowed() {
		return e.Speed * e.slowFactor
	}
	return e.Speed
}

// Update moves the enemy toward its current waypoint. It reports true on
// the tick the enemy passes the final waypoint; the enemy is then escaped.
func (e *Enemy) Update(dtMs float64) (reachedEnd bool) {
	if e.state != EnemyActive {
		return false
	}
	if e.pathIndex >= len(e.path) {
		e.state = EnemyEscaped
		return true
	}

	target := e.path[e.pathIndex].Pos()
	if core.Dist(e.pos, target) < e.tolerance {
		e.pathIndex++
		if e.pathIndex >= len(e.path) {
			e.state = EnemyEscaped
			return true
		}
		target = e.path[e.pathIndex].Pos()
	}

	step := e.EffectiveSpeed() * dtMs / 1000
	// Never step past the waypoint, or large deltas would orbit it.
	if d := core.Dist(e.pos, target); step >= d {
		e.pos = target
	} else {
		e.pos = core.Step(e.pos, target, step)
	}

	if e.slowRemainingMs > 0 {
		e.slowRemainingMs -= dtMs
		if e.slowRemainingMs <= 0 {
			e.slowRemainingMs = 0
			e.slowFactor = 1
		}
	}
	return false
}

// TakeDamage subtracts amount from health. It reports true exactly once,
// on the call that kills the enemy; later calls are ignored.
func (e *Enemy) TakeDamage(amount int) (killed bool) {
	if e.state != EnemyActive || amount <= 0 {
		return false
	}
	e.Health -= amount
	if e.Health <= 0 {
		e.Health = 0
		e.state = EnemyDead
		return true
	}
	return false
}

// ApplySlow multiplies speed by factor for durationMs. A second slow
// refreshes the timer and keeps the stronger factor; slows do not stack.
func (e *Enemy) ApplySlow(factor, durationMs float64) {
	if e.state != EnemyActive || durationMs <= 0 {
		return
	}
	if !e.Slowed() || factor < e.slowFactor {
		e.slowFactor = factor
	}
	e.slowRemainingMs = math.Max(e.slowRemainingMs, durationMs)
}
