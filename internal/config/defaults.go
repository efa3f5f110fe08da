package config

import (
	_ "embed"
)

//go:embed defaults/wizardtd.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// defaultPath is the hand-authored snake route across the 8x12 board.
var defaultPath = []Cell{
	{0, 1}, {1, 1}, {2, 1}, {3, 1},
	{3, 2}, {3, 3}, {3, 4},
	{4, 4}, {5, 4}, {6, 4}, {7, 4},
	{7, 5}, {7, 6}, {7, 7},
	{6, 7}, {5, 7}, {4, 7}, {3, 7}, {2, 7}, {1, 7},
	{1, 8}, {1, 9}, {1, 10}, {1, 11},
}

// Default returns the built-in balance. It matches the embedded YAML and is
// used when that file cannot be parsed.
func Default() Settings {
	return Settings{
		Grid: GridConfig{
			Cols:     8,
			Rows:     12,
			TileSize: 50,
			OffsetX:  40,
			OffsetY:  120,
			Path:     append([]Cell(nil), defaultPath...),
		},
		Game: GameConfig{
			StartingGold:  100,
			StartingLives: 3,
		},
		Defenders: map[string]DefenderConfig{
			"battleMage": {
				Name: "Battle Mage", Cost: 50, Damage: 20, Range: 120, FireRate: 1.0, UnlockWave: 1,
			},
			"alchemist": {
				Name: "Alchemist", Cost: 75, Damage: 15, Range: 100, FireRate: 0.8, UnlockWave: 1,
			},
			"enchanter": {
				Name: "Enchanter", Cost: 100, Damage: 8, Range: 90, FireRate: 0.6, UnlockWave: 10,
				BuffRange: 150, BuffMultiplier: 1.3,
			},
			"necromancer": {
				Name: "Necromancer", Cost: 125, Damage: 12, Range: 110, FireRate: 0.7, UnlockWave: 25,
				SummonCooldownMs: 8000, SkeletonHealth: 80,
			},
			"elementalist": {
				Name: "Elementalist", Cost: 150, Damage: 25, Range: 130, FireRate: 0.9, UnlockWave: 50,
				ElementCycle: []string{"fire", "ice", "lightning"}, AoeRange: 60,
			},
			"diviner": {
				Name: "Diviner", Cost: 200, Damage: 35, Range: 200, FireRate: 0.5, UnlockWave: 75,
				PierceCount: 3, BossBonus: 2.0,
			},
		},
		Enemies: map[string]EnemyConfig{
			"goblin":      {Name: "Goblin Raider", Health: 50, Speed: 60, GoldReward: 8},
			"shadowDemon": {Name: "Shadow Demon", Health: 80, Speed: 80, GoldReward: 12},
			"wraithLord":  {Name: "Wraith Lord", Health: 400, Speed: 45, GoldReward: 60, Boss: true},
		},
		Waves: WaveConfig{
			EnemyHealthScale:       1.15,
			EnemySpeedScale:        1.05,
			MaxSpeedMultiplier:     2.0,
			SpawnIntervalMs:        1000,
			BaseEnemies:            5,
			CompletionBonusBase:    20,
			CompletionBonusPerWave: 5,
			Rotation:               []string{"goblin", "shadowDemon"},
			Boss:                   "wraithLord",
			BossEvery:              0,
		},
		Combat: CombatConfig{
			HitDelayMs:            200,
			WaypointTolerance:     5,
			SkeletonContactRadius: 20,
			IceSlowFactor:         0.5,
			IceSlowMs:             1500,
			LightningChainFactor:  0.5,
		},
		Items: ItemsConfig{
			InventorySize: 5,
			AutoCollectMs: 10000,
			DropsEnabled:  true,
			DropRate:      10,
			Catalog: []ItemConfig{
				{
					ID: "damage_boost", Name: "Spell Power Crystal",
					Description: "+25% damage to all wizards", Rarity: "common",
					Effect: EffectConfig{Kind: "damage", Value: 25}, DropChance: 35,
				},
				{
					ID: "range_boost", Name: "Range Amplifier",
					Description: "+30% range to all wizards", Rarity: "common",
					Effect: EffectConfig{Kind: "range", Value: 30}, DropChance: 30,
				},
				{
					ID: "fire_rate_boost", Name: "Mana Battery",
					Description: "+40% attack speed to all wizards", Rarity: "rare",
					Effect: EffectConfig{Kind: "fireRate", Value: 40}, DropChance: 20,
				},
				{
					ID: "gold_bonus", Name: "Treasure Map",
					Description: "+50% gold from slain enemies", Rarity: "rare",
					Effect: EffectConfig{Kind: "goldBonus", Value: 50}, DropChance: 15,
				},
			},
		},
	}
}
