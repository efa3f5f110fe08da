package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wizard-td/internal/config"
	"github.com/vovakirdan/wizard-td/internal/core"
)

const testStep = 50.0

// testSettings returns the default balance with random drops switched off.
func testSettings() config.Settings {
	cfg := config.Default()
	cfg.Items.DropsEnabled = false
	return cfg
}

func newTestSim(t *testing.T, cfg config.Settings) (*Simulation, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	s, err := New(cfg, rec, Options{Runtime: core.RuntimeConfig{TickRate: 20, Seed: 42}})
	require.NoError(t, err)
	return s, rec
}

func runTicks(s *Simulation, n int) {
	for i := 0; i < n; i++ {
		s.Update(testStep)
	}
}

// spawnEnemyAt inserts an enemy of kind at pos, bypassing the wave controller.
func spawnEnemyAt(s *Simulation, kind string, pos core.Vec) *Enemy {
	s.nextEnemyID++
	e := NewEnemy(EnemyID(s.nextEnemyID), kind, s.settings.Enemies[kind], s.settings.Waves, s.economy.Wave(), s.path, s.settings.Combat.WaypointTolerance)
	e.pos = pos
	s.enemies = append(s.enemies, e)
	s.enemyByID[e.ID] = e
	return e
}

// enemyAt builds a free-standing active enemy for resolver tests.
func enemyAt(id int, pos core.Vec) *Enemy {
	return &Enemy{
		ID:         EnemyID(id),
		Health:     100,
		MaxHealth:  100,
		pos:        pos,
		slowFactor: 1,
	}
}

func mustItem(t *testing.T, id string) Item {
	t.Helper()
	for _, c := range config.Default().Items.Catalog {
		if c.ID == id {
			item, ok := ItemFromConfig(c)
			require.True(t, ok)
			return item
		}
	}
	t.Fatalf("no catalog item %q", id)
	return Item{}
}
