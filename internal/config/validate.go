package config

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid settings")

// Known effect kinds accepted in the item catalog.
var effectKinds = map[string]bool{
	"damage":    true,
	"range":     true,
	"fireRate":  true,
	"goldBonus": true,
}

// Known elements accepted in an element cycle.
var elements = map[string]bool{
	"fire":      true,
	"ice":       true,
	"lightning": true,
}

// Validate checks settings for values the simulation cannot run with.
// All problems are reported together.
func Validate(cfg Settings) error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	g := cfg.Grid
	if g.Cols <= 0 || g.Rows <= 0 {
		bad("grid must have positive size, got %dx%d", g.Cols, g.Rows)
	}
	if g.TileSize <= 0 {
		bad("grid tile_size must be positive, got %v", g.TileSize)
	}
	if len(g.Path) == 0 {
		bad("grid path is empty")
	}
	seen := make(map[Cell]bool, len(g.Path))
	for i, c := range g.Path {
		if c.Col < 0 || c.Col >= g.Cols || c.Row < 0 || c.Row >= g.Rows {
			bad("path waypoint %d (%d,%d) is off the grid", i, c.Col, c.Row)
		}
		if seen[c] {
			bad("path waypoint %d (%d,%d) repeats a cell", i, c.Col, c.Row)
		}
		seen[c] = true
	}

	if cfg.Game.StartingGold < 0 {
		bad("starting_gold must not be negative")
	}
	if cfg.Game.StartingLives <= 0 {
		bad("starting_lives must be positive")
	}

	for _, kind := range sortedKeys(cfg.Defenders) {
		d := cfg.Defenders[kind]
		if d.Cost < 0 || d.Damage < 0 || d.Range < 0 {
			bad("defender %s has negative cost, damage or range", kind)
		}
		if d.FireRate <= 0 {
			bad("defender %s fire_rate must be positive", kind)
		}
		for _, el := range d.ElementCycle {
			if !elements[el] {
				bad("defender %s has unknown element %q", kind, el)
			}
		}
	}

	for _, kind := range sortedKeys(cfg.Enemies) {
		e := cfg.Enemies[kind]
		if e.Health <= 0 {
			bad("enemy %s health must be positive", kind)
		}
		// A stationary enemy never leaks, so its wave could never end.
		if e.Speed <= 0 {
			bad("enemy %s speed must be positive, got %v", kind, e.Speed)
		}
		if e.GoldReward < 0 {
			bad("enemy %s has negative gold_reward", kind)
		}
	}

	w := cfg.Waves
	if len(w.Rotation) == 0 {
		bad("waves rotation is empty")
	}
	for _, id := range w.Rotation {
		if _, ok := cfg.Enemies[id]; !ok {
			bad("waves rotation names unknown enemy %q", id)
		}
	}
	if w.BossEvery > 0 {
		if _, ok := cfg.Enemies[w.Boss]; !ok {
			bad("waves boss names unknown enemy %q", w.Boss)
		}
	}
	if w.SpawnIntervalMs <= 0 {
		bad("waves spawn_interval_ms must be positive")
	}
	if w.EnemyHealthScale <= 0 || w.EnemySpeedScale <= 0 || w.MaxSpeedMultiplier <= 0 {
		bad("waves scale factors must be positive")
	}
	if w.BaseEnemies < 0 {
		bad("waves base_enemies must not be negative")
	}

	if cfg.Combat.HitDelayMs < 0 {
		bad("combat hit_delay_ms must not be negative")
	}

	if cfg.Items.InventorySize < 0 {
		bad("items inventory_size must not be negative")
	}
	for _, it := range cfg.Items.Catalog {
		if !effectKinds[it.Effect.Kind] {
			bad("item %s has unknown effect kind %q", it.ID, it.Effect.Kind)
		}
	}

	return errors.Join(errs...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
