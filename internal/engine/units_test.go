package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wizard-td/internal/config"
	"github.com/vovakirdan/wizard-td/internal/core"
)

func TestScaledHealth(t *testing.T) {
	tests := []struct {
		base  int
		scale float64
		wave  int
		want  int
	}{
		{50, 1.15, 1, 50},
		{50, 1.15, 3, 66},
		{20, 1.15, 2, 23}, // 22.999999999999996 before flooring
		{400, 1, 5, 400},
		{1, 0.5, 3, 1}, // Floors to zero, clamped
	}

	for _, tc := range tests {
		if got := ScaledHealth(tc.base, tc.scale, tc.wave); got != tc.want {
			t.Errorf("ScaledHealth(%d, %v, %d) = %d, expected %d", tc.base, tc.scale, tc.wave, got, tc.want)
		}
	}
}

func TestScaledStatsShareFloorPolicy(t *testing.T) {
	effects := NewEffectRegistry()
	effects.Apply(EffectDamage, 15)
	d := NewDefender(1, "battleMage", config.DefenderConfig{Damage: 20, Range: 100, FireRate: 1}, 0, 0, core.V(0, 0), effects)

	if got, want := d.EffectiveDamage(), ScaledHealth(20, 1.15, 2); got != want {
		t.Errorf("EffectiveDamage() = %d, ScaledHealth() = %d, expected equal", got, want)
	}
}

func TestSpeedMultiplierCaps(t *testing.T) {
	assert.Equal(t, 1.0, SpeedMultiplier(1.05, 2, 1))
	assert.InDelta(t, 1.05, SpeedMultiplier(1.05, 2, 2), 1e-9)
	assert.Equal(t, 2.0, SpeedMultiplier(1.05, 2, 30))
}

func straightPath() []GridPosition {
	return []GridPosition{
		{X: 0, Y: 0},
		{X: 100, Y: 0},
		{X: 100, Y: 100},
	}
}

func unitEnemy() *Enemy {
	waves := config.WaveConfig{EnemyHealthScale: 1, EnemySpeedScale: 1, MaxSpeedMultiplier: 2}
	return NewEnemy(1, "dummy", config.EnemyConfig{Health: 10, Speed: 100}, waves, 1, straightPath(), 5)
}

func TestEnemyWalksPathAndEscapes(t *testing.T) {
	e := unitEnemy()
	assert.Equal(t, core.V(0, 0), e.Pos())

	assert.False(t, e.Update(1000))
	assert.Equal(t, core.V(100, 0), e.Pos())
	assert.Equal(t, 1, e.PathIndex())

	assert.False(t, e.Update(1000))
	assert.Equal(t, core.V(100, 100), e.Pos())

	assert.True(t, e.Update(1000), "passing the last waypoint escapes")
	assert.Equal(t, EnemyEscaped, e.State())
	assert.False(t, e.Update(1000), "escape is reported once")
}

func TestEnemyDoesNotOvershootWaypoint(t *testing.T) {
	e := unitEnemy()
	e.Update(5000)
	assert.Equal(t, core.V(100, 0), e.Pos())
}

func TestEnemyTakeDamageKillsOnce(t *testing.T) {
	e := unitEnemy()

	assert.False(t, e.TakeDamage(4))
	assert.Equal(t, 6, e.Health)
	assert.True(t, e.TakeDamage(6))
	assert.Equal(t, EnemyDead, e.State())
	assert.False(t, e.TakeDamage(5), "dead enemies cannot die again")
	assert.Equal(t, 0, e.Health)
	assert.False(t, e.Update(100), "dead enemies do not move")
}

func TestEnemySlow(t *testing.T) {
	e := unitEnemy()
	e.ApplySlow(0.5, 1500)
	e.ApplySlow(0.5, 1500)
	assert.Equal(t, 50.0, e.EffectiveSpeed(), "slows refresh, they do not stack")

	e.Update(1000)
	assert.Equal(t, core.V(50, 0), e.Pos())
	assert.True(t, e.Slowed())

	e.Update(600)
	assert.Equal(t, core.V(80, 0), e.Pos())
	assert.False(t, e.Slowed())
	assert.Equal(t, 100.0, e.EffectiveSpeed())
}

func TestEnemyCount(t *testing.T) {
	tests := []struct{ base, wave, want int }{
		{5, 1, 5},
		{5, 2, 6},
		{5, 3, 6},
		{5, 10, 10},
		{0, 1, 0},
	}
	for _, tc := range tests {
		if got := EnemyCount(tc.base, tc.wave); got != tc.want {
			t.Errorf("EnemyCount(%d, %d) = %d, expected %d", tc.base, tc.wave, got, tc.want)
		}
	}
}

func TestWaveControllerSpawnTimer(t *testing.T) {
	w := NewWaveController(config.Default().Waves)
	require.True(t, w.Start(1))
	assert.False(t, w.Start(1), "cannot start while spawning")
	assert.Equal(t, 5, w.Total())

	for i := 0; i < 19; i++ {
		_, ok := w.Tick(50)
		require.False(t, ok, "tick %d", i)
	}
	kind, ok := w.Tick(50)
	assert.True(t, ok)
	assert.Equal(t, "goblin", kind)
	assert.Equal(t, 0.0, w.TimerMs())

	// A long tick spawns once and discards the excess
	kind, ok = w.Tick(1500)
	assert.True(t, ok)
	assert.Equal(t, "shadowDemon", kind)
	assert.Equal(t, 0.0, w.TimerMs())
	assert.Equal(t, 2, w.Spawned())
}

func TestWaveControllerCompletion(t *testing.T) {
	w := NewWaveController(config.Default().Waves)
	require.True(t, w.Start(1))

	assert.False(t, w.Complete(0), "not everything spawned yet")
	for i := 0; i < 5; i++ {
		_, ok := w.Tick(1000)
		require.True(t, ok)
	}
	_, ok := w.Tick(1000)
	assert.False(t, ok, "no spawns past the total")

	assert.False(t, w.Complete(1))
	assert.True(t, w.Complete(0))
	assert.Equal(t, WaveIdle, w.Phase())
	assert.False(t, w.Complete(0), "completion fires once")
	assert.Equal(t, 30, w.CompletionBonus(2))
}

func TestWaveControllerBossWave(t *testing.T) {
	cfg := config.Default().Waves
	cfg.BossEvery = 2

	w := NewWaveController(cfg)
	require.True(t, w.Start(2))
	assert.Equal(t, 6, w.Total())
	assert.Equal(t, "goblin", w.ArchetypeFor(4))
	assert.Equal(t, "wraithLord", w.ArchetypeFor(5))

	w.Reset()
	require.True(t, w.Start(1))
	assert.Equal(t, "goblin", w.ArchetypeFor(4))
}

func battleMage(effects *EffectRegistry) *Defender {
	return NewDefender(1, "battleMage", config.Default().Defenders["battleMage"], 0, 0, core.V(0, 0), effects)
}

func TestDefenderCooldown(t *testing.T) {
	d := battleMage(NewEffectRegistry())

	assert.True(t, d.CanFire(0), "a fresh defender fires immediately")
	d.Fire(0)
	assert.False(t, d.CanFire(999))
	assert.True(t, d.CanFire(1000))
}

func TestDefenderFireRateBonus(t *testing.T) {
	effects := NewEffectRegistry()
	d := battleMage(effects)
	effects.Apply(EffectFireRate, 40)

	d.Fire(0)
	assert.False(t, d.CanFire(714))
	assert.True(t, d.CanFire(715))
}

func TestDefenderZeroFireRateNeverFires(t *testing.T) {
	cfg := config.Default().Defenders["battleMage"]
	cfg.FireRate = 0
	d := NewDefender(1, "battleMage", cfg, 0, 0, core.V(0, 0), NewEffectRegistry())
	assert.False(t, d.CanFire(0))
	assert.False(t, d.CanFire(1e9))
}

func TestDefenderEffectiveStats(t *testing.T) {
	effects := NewEffectRegistry()
	d := battleMage(effects)
	assert.Equal(t, 20, d.EffectiveDamage())
	assert.Equal(t, 120, d.EffectiveRange())

	effects.Apply(EffectDamage, 25)
	effects.Apply(EffectRange, 30)
	assert.Equal(t, 25, d.EffectiveDamage())
	assert.Equal(t, 156, d.EffectiveRange())

	effects.Apply(EffectDamage, 25)
	assert.Equal(t, 30, d.EffectiveDamage(), "bonuses are additive")
}

func TestDefenderRangeBoundary(t *testing.T) {
	d := battleMage(NewEffectRegistry())
	assert.True(t, d.CanTarget(core.V(120, 0)))
	assert.False(t, d.CanTarget(core.V(120.5, 0)))
}

func TestDefenderElementCycle(t *testing.T) {
	cfg := config.Default().Defenders["elementalist"]
	d := NewDefender(1, "elementalist", cfg, 0, 0, core.V(0, 0), NewEffectRegistry())

	var got []Element
	for i := 0; i < 4; i++ {
		got = append(got, d.Fire(float64(i)*2000))
	}
	assert.Equal(t, []Element{ElementFire, ElementIce, ElementLightning, ElementFire}, got)
	assert.Equal(t, ElementNone, battleMage(NewEffectRegistry()).Fire(0))
}

func TestEffectRegistry(t *testing.T) {
	r := NewEffectRegistry()
	assert.Equal(t, 1.0, r.Multiplier(EffectDamage))

	r.Apply(EffectDamage, 25)
	r.Apply(EffectDamage, 25)
	assert.Equal(t, 1.5, r.Multiplier(EffectDamage))

	r.Apply(EffectKind(99), 10)
	assert.Equal(t, EffectSnapshot{Damage: 50}, r.Snapshot())

	r.Reset()
	assert.Equal(t, EffectSnapshot{}, r.Snapshot())
}

func TestParseEffectKind(t *testing.T) {
	k, ok := ParseEffectKind("fireRate")
	assert.True(t, ok)
	assert.Equal(t, EffectFireRate, k)
	assert.Equal(t, "fireRate", k.String())

	_, ok = ParseEffectKind("speed")
	assert.False(t, ok)
}

func TestInventoryCapacity(t *testing.T) {
	inv := NewInventory(2)
	assert.True(t, inv.Add(Item{ID: "a"}))
	assert.True(t, inv.Add(Item{ID: "b"}))
	assert.False(t, inv.Add(Item{ID: "c"}))
	assert.Equal(t, 2, inv.Len())
	assert.True(t, inv.Full())

	inv.Reset()
	assert.Equal(t, 0, inv.Len())
}
