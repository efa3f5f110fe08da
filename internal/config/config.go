// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the tower-defense simulation.
//
// Settings are static inputs: the simulation reads them and never mutates them.
package config

import "sort"

// Settings is the complete, read-only configuration surface of a game.
type Settings struct {
	Grid      GridConfig                `yaml:"grid"`
	Game      GameConfig                `yaml:"game"`
	Defenders map[string]DefenderConfig `yaml:"defenders"`
	Enemies   map[string]EnemyConfig    `yaml:"enemies"`
	Waves     WaveConfig                `yaml:"waves"`
	Combat    CombatConfig              `yaml:"combat"`
	Items     ItemsConfig               `yaml:"items"`
}

// Cell is a grid cell reference used by the authored path.
type Cell struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// GridConfig defines the board geometry and the enemy path.
type GridConfig struct {
	Cols     int     `yaml:"cols"`
	Rows     int     `yaml:"rows"`
	TileSize float64 `yaml:"tile_size"`
	OffsetX  float64 `yaml:"offset_x"`
	OffsetY  float64 `yaml:"offset_y"`
	Path     []Cell  `yaml:"path"` // Ordered entrance-to-exit waypoints
}

// GameConfig defines the starting economy.
type GameConfig struct {
	StartingGold  int `yaml:"starting_gold"`
	StartingLives int `yaml:"starting_lives"`
}

// DefenderConfig describes one defender type. The optional fields only
// matter for the type that uses them.
type DefenderConfig struct {
	Name       string  `yaml:"name"`
	Cost       int     `yaml:"cost"`
	Damage     int     `yaml:"damage"`
	Range      int     `yaml:"range"`
	FireRate   float64 `yaml:"fire_rate"` // Attacks per second
	UnlockWave int     `yaml:"unlock_wave"`

	BuffRange        float64  `yaml:"buff_range,omitempty"`
	BuffMultiplier   float64  `yaml:"buff_multiplier,omitempty"`
	SummonCooldownMs float64  `yaml:"summon_cooldown_ms,omitempty"`
	SkeletonHealth   int      `yaml:"skeleton_health,omitempty"`
	ElementCycle     []string `yaml:"element_cycle,omitempty"`
	AoeRange         float64  `yaml:"aoe_range,omitempty"`
	PierceCount      int      `yaml:"pierce_count,omitempty"`
	BossBonus        float64  `yaml:"boss_bonus,omitempty"`
}

// EnemyConfig describes one enemy archetype at wave 1.
type EnemyConfig struct {
	Name       string  `yaml:"name"`
	Health     int     `yaml:"health"`
	Speed      float64 `yaml:"speed"` // World units per second
	GoldReward int     `yaml:"gold_reward"`
	Boss       bool    `yaml:"boss,omitempty"`
}

// WaveConfig defines wave composition and difficulty scaling.
type WaveConfig struct {
	EnemyHealthScale       float64  `yaml:"enemy_health_scale"`
	EnemySpeedScale        float64  `yaml:"enemy_speed_scale"`
	MaxSpeedMultiplier     float64  `yaml:"max_speed_multiplier"`
	SpawnIntervalMs        float64  `yaml:"spawn_interval_ms"`
	BaseEnemies            int      `yaml:"base_enemies"`
	CompletionBonusBase    int      `yaml:"completion_bonus_base"`
	CompletionBonusPerWave int      `yaml:"completion_bonus_per_wave"`
	Rotation               []string `yaml:"rotation"` // Archetypes cycled by spawn index
	Boss                   string   `yaml:"boss,omitempty"`
	BossEvery              int      `yaml:"boss_every,omitempty"` // 0 disables boss spawns
}

// CombatConfig holds hit timing and special-mechanic tuning.
type CombatConfig struct {
	HitDelayMs            float64 `yaml:"hit_delay_ms"`
	WaypointTolerance     float64 `yaml:"waypoint_tolerance"`
	SkeletonContactRadius float64 `yaml:"skeleton_contact_radius"`
	IceSlowFactor         float64 `yaml:"ice_slow_factor"`
	IceSlowMs             float64 `yaml:"ice_slow_ms"`
	LightningChainFactor  float64 `yaml:"lightning_chain_factor"`
}

// ItemsConfig defines the inventory and the drop catalog.
type ItemsConfig struct {
	InventorySize int          `yaml:"inventory_size"`
	AutoCollectMs float64      `yaml:"auto_collect_ms"`
	DropsEnabled  bool         `yaml:"drops_enabled"`
	DropRate      float64      `yaml:"drop_rate"` // Percent of kills that drop an item
	Catalog       []ItemConfig `yaml:"catalog"`
}

// ItemConfig describes a collectable item.
type ItemConfig struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Rarity      string       `yaml:"rarity"`
	Effect      EffectConfig `yaml:"effect"`
	DropChance  float64      `yaml:"drop_chance"` // Relative weight when a drop happens
}

// EffectConfig is the bonus granted by an item.
type EffectConfig struct {
	Kind  string  `yaml:"kind"`  // damage, range, fireRate or goldBonus
	Value float64 `yaml:"value"` // Additive percentage
}

// DefenderKinds returns defender type ids ordered by unlock wave, then cost,
// then id, so listings and strategies iterate deterministically.
func (s Settings) DefenderKinds() []string {
	kinds := make([]string, 0, len(s.Defenders))
	for k := range s.Defenders {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		a, b := s.Defenders[kinds[i]], s.Defenders[kinds[j]]
		if a.UnlockWave != b.UnlockWave {
			return a.UnlockWave < b.UnlockWave
		}
		if a.Cost != b.Cost {
			return a.Cost < b.Cost
		}
		return kinds[i] < kinds[j]
	})
	return kinds
}

// Clone returns a deep copy so presets can be applied without touching the
// caller's settings.
func (s Settings) Clone() Settings {
	out := s
	out.Grid.Path = append([]Cell(nil), s.Grid.Path...)

	out.Defenders = make(map[string]DefenderConfig, len(s.Defenders))
	for k, d := range s.Defenders {
		d.ElementCycle = append([]string(nil), d.ElementCycle...)
		out.Defenders[k] = d
	}

	out.Enemies = make(map[string]EnemyConfig, len(s.Enemies))
	for k, e := range s.Enemies {
		out.Enemies[k] = e
	}

	out.Waves.Rotation = append([]string(nil), s.Waves.Rotation...)
	out.Items.Catalog = append([]ItemConfig(nil), s.Items.Catalog...)
	return out
}
