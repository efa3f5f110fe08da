package engine

import (
	"github.com/vovakirdan/wizard-td/internal/config"
	"github.com/vovakirdan/wizard-td/internal/core"
)

// GridView is the read-only face of the grid offered to hosts.
type GridView interface {
	Cols() int
	Rows() int
	TileSize() float64
	GridToWorld(col, row int) core.Vec
	WorldToGrid(x, y float64) (col, row int)
	InBounds(col, row int) bool
	CanPlace(col, row int) bool
	IsPath(col, row int) bool
	Path() []GridPosition
	FreeCells() []config.Cell
}

// EconomyState is a copy of the economy at one instant.
type EconomyState struct {
	Gold           int
	Lives          int
	Wave           int
	WaveInProgress bool
	GameOver       bool
}

// EnemyView is a copy of one live enemy.
type EnemyView struct {
	ID        EnemyID
	Kind      string
	Boss      bool
	Pos       core.Vec
	Health    int
	MaxHealth int
	Speed     float64
	PathIndex int
	Slowed    bool
}

// DefenderView is a copy of one placed defender with effective stats.
type DefenderView struct {
	ID       DefenderID
	Kind     string
	Col      int
	Row      int
	Pos      core.Vec
	Damage   int
	Range    int
	FireRate float64
}

// DefenderStats describes a defender kind as it would perform right now.
type DefenderStats struct {
	Kind       string
	Name       string
	Cost       int
	Damage     int
	Range      int
	FireRate   float64
	UnlockWave int
	Unlocked   bool
}

// WaveState is a copy of the wave controller.
type WaveState struct {
	Phase   WavePhase
	Wave    int
	Total   int
	Spawned int
}

// Snapshot is a complete, comparable copy of the observable state.
type Snapshot struct {
	Tick        uint64
	NowMs       float64
	Economy     EconomyState
	Wave        WaveState
	Enemies     []EnemyView
	Defenders   []DefenderView
	Skeletons   []Skeleton
	Drops       []Drop
	Inventory   []Item
	Effects     EffectSnapshot
	PendingWork int
	Selected    string
	Stats       Stats
}

func (s *Simulation) Settings() config.Settings { return s.settings.Clone() }
func (s *Simulation) Grid() GridView             { return s.grid }
func (s *Simulation) Effects() EffectSnapshot    { return s.effects.Snapshot() }
func (s *Simulation) Now() float64               { return s.now }
func (s *Simulation) Tick() uint64               { return s.tick }
func (s *Simulation) Selected() string           { return s.selected }
func (s *Simulation) Stats() Stats               { return s.stats }
func (s *Simulation) Inventory() []Item          { return s.inventory.Items() }
func (s *Simulation) PendingWork() int           { return s.tasks.Len() }

// Economy returns the current balance.
func (s *Simulation) Economy() EconomyState {
	return EconomyState{
		Gold:           s.economy.Gold(),
		Lives:          s.economy.Lives(),
		Wave:           s.economy.Wave(),
		WaveInProgress: s.economy.WaveInProgress(),
		GameOver:       s.economy.GameOver(),
	}
}

// WaveState returns the wave controller state.
func (s *Simulation) WaveState() WaveState {
	return WaveState{
		Phase:   s.waves.Phase(),
		Wave:    s.waves.Wave(),
		Total:   s.waves.Total(),
		Spawned: s.waves.Spawned(),
	}
}

// Enemies returns the live enemies in spawn order.
func (s *Simulation) Enemies() []EnemyView {
	out := make([]EnemyView, 0, len(s.enemies))
	for _, e := range s.enemies {
		if !e.Active() {
			continue
		}
		out = append(out, EnemyView{
			ID:        e.ID,
			Kind:      e.Kind,
			Boss:      e.Boss,
			Pos:       e.Pos(),
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			Speed:     e.EffectiveSpeed(),
			PathIndex: e.PathIndex(),
			Slowed:    e.Slowed(),
		})
	}
	return out
}

// Defenders returns the placed defenders in placement order.
func (s *Simulation) Defenders() []DefenderView {
	out := make([]DefenderView, 0, len(s.defenders))
	for _, d := range s.defenders {
		out = append(out, DefenderView{
			ID:       d.ID,
			Kind:     d.Kind,
			Col:      d.Col,
			Row:      d.Row,
			Pos:      d.Pos(),
			Damage:   d.EffectiveDamage(),
			Range:    d.EffectiveRange(),
			FireRate: d.EffectiveFireRate(),
		})
	}
	return out
}

// Skeletons returns copies of the live skeletons.
func (s *Simulation) Skeletons() []Skeleton {
	out := make([]Skeleton, 0, len(s.skeletons))
	for _, sk := range s.skeletons {
		out = append(out, *sk)
	}
	return out
}

// Drops returns copies of the uncollected drops.
func (s *Simulation) Drops() []Drop {
	out := make([]Drop, 0, len(s.drops))
	for _, d := range s.drops {
		out = append(out, *d)
	}
	return out
}

// Unlocked reports whether kind may be placed at the current wave.
func (s *Simulation) Unlocked(kind string) bool {
	cfg, ok := s.settings.Defenders[kind]
	return ok && s.economy.Wave() >= cfg.UnlockWave
}

// DefenderStats returns the effective stats of kind under current bonuses.
func (s *Simulation) DefenderStats(kind string) (DefenderStats, bool) {
	cfg, ok := s.settings.Defenders[kind]
	if !ok {
		return DefenderStats{}, false
	}
	probe := NewDefender(0, kind, cfg, 0, 0, core.Vec{}, s.effects)
	return DefenderStats{
		Kind:       kind,
		Name:       cfg.Name,
		Cost:       cfg.Cost,
		Damage:     probe.EffectiveDamage(),
		Range:      probe.EffectiveRange(),
		FireRate:   probe.EffectiveFireRate(),
		UnlockWave: cfg.UnlockWave,
		Unlocked:   s.Unlocked(kind),
	}, true
}

// Snapshot copies the whole observable state.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Tick:        s.tick,
		NowMs:       s.now,
		Economy:     s.Economy(),
		Wave:        s.WaveState(),
		Enemies:     s.Enemies(),
		Defenders:   s.Defenders(),
		Skeletons:   s.Skeletons(),
		Drops:       s.Drops(),
		Inventory:   s.Inventory(),
		Effects:     s.Effects(),
		PendingWork: s.tasks.Len(),
		Selected:    s.selected,
		Stats:       s.stats,
	}
}
