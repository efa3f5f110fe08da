package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables wave scaling.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset returns a copy of cfg adjusted for the preset.
// Normal leaves the loaded balance untouched.
func ApplyPreset(cfg Settings, preset DifficultyPreset) Settings {
	out := cfg.Clone()

	switch preset {
	case DifficultyEasy:
		out.Game.StartingGold += out.Game.StartingGold / 2
		out.Game.StartingLives += 2
		out.Waves.EnemyHealthScale = scaleGrowth(out.Waves.EnemyHealthScale, 0.8)
	case DifficultyHard:
		out.Game.StartingGold -= out.Game.StartingGold / 4
		if out.Game.StartingLives > 1 {
			out.Game.StartingLives--
		}
		out.Waves.EnemyHealthScale = scaleGrowth(out.Waves.EnemyHealthScale, 1.2)
	case DifficultyFixed:
		// No progression: every wave fields wave-1 enemies
		out.Waves.EnemyHealthScale = 1
		out.Waves.EnemySpeedScale = 1
	}

	return out
}

// scaleGrowth multiplies the growth part of a per-wave scale factor,
// so 1.15 with k=0.8 becomes 1.12.
func scaleGrowth(scale, k float64) float64 {
	return 1 + (scale-1)*k
}
