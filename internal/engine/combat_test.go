package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wizard-td/internal/config"
	"github.com/vovakirdan/wizard-td/internal/core"
)

func testResolver() *CombatResolver {
	return NewCombatResolver(config.Default().Combat, 50)
}

func TestSelectTargetClosestInRange(t *testing.T) {
	c := testResolver()
	d := battleMage(NewEffectRegistry())

	far := enemyAt(1, core.V(100, 0))
	first := enemyAt(2, core.V(0, 50))
	tie := enemyAt(3, core.V(50, 0))
	outside := enemyAt(4, core.V(0, 121))
	dead := enemyAt(5, core.V(10, 0))
	dead.state = EnemyDead

	got := c.SelectTarget(d, []*Enemy{far, first, tie, outside, dead})
	require.NotNil(t, got)
	assert.Equal(t, EnemyID(2), got.ID, "ties keep the earlier enemy")

	assert.Nil(t, c.SelectTarget(d, []*Enemy{outside, dead}))
	assert.Nil(t, c.SelectTarget(d, nil))
}

func TestAuraMultiplier(t *testing.T) {
	c := testResolver()
	effects := NewEffectRegistry()
	defs := config.Default().Defenders

	mage := NewDefender(1, "battleMage", defs["battleMage"], 0, 0, core.V(0, 0), effects)
	strong := NewDefender(2, "enchanter", defs["enchanter"], 1, 0, core.V(50, 0), effects)

	weakCfg := defs["enchanter"]
	weakCfg.BuffMultiplier = 1.2
	weak := NewDefender(3, "enchanter", weakCfg, 2, 0, core.V(100, 0), effects)

	all := []*Defender{mage, strong, weak}
	assert.Equal(t, 1.3, c.AuraMultiplier(mage, all), "strongest aura wins, auras do not stack")
	assert.Equal(t, 1.2, c.AuraMultiplier(strong, all), "an enchanter never buffs itself")

	lonely := NewDefender(4, "battleMage", defs["battleMage"], 7, 11, core.V(1000, 1000), effects)
	assert.Equal(t, 1.0, c.AuraMultiplier(lonely, append(all, lonely)))
}

func TestPierceTargets(t *testing.T) {
	c := testResolver()
	d := NewDefender(1, "diviner", config.Default().Defenders["diviner"], 0, 0, core.V(0, 0), NewEffectRegistry())

	primary := enemyAt(1, core.V(50, 0))
	nearLine := enemyAt(2, core.V(100, 10))
	edge := enemyAt(3, core.V(150, -20))
	offLine := enemyAt(4, core.V(120, 40))
	behind := enemyAt(5, core.V(-50, 0))
	beyondCount := enemyAt(6, core.V(180, 0))
	outOfRange := enemyAt(7, core.V(250, 0))

	// List order is deliberately not distance order
	enemies := []*Enemy{beyondCount, edge, offLine, primary, behind, nearLine, outOfRange}
	got := c.PierceTargets(d, primary, enemies)

	require.Len(t, got, 2)
	assert.Equal(t, EnemyID(2), got[0].ID)
	assert.Equal(t, EnemyID(3), got[1].ID)

	plain := battleMage(NewEffectRegistry())
	assert.Empty(t, c.PierceTargets(plain, primary, enemies))
}

func TestSplashAndChain(t *testing.T) {
	c := testResolver()
	center := core.V(0, 0)
	primary := enemyAt(1, center)
	near := enemyAt(2, core.V(40, 0))
	nearer := enemyAt(3, core.V(0, 30))
	far := enemyAt(4, core.V(100, 0))

	enemies := []*Enemy{primary, near, nearer, far}
	splash := c.SplashTargets(center, 60, primary, enemies)
	require.Len(t, splash, 2)
	assert.Equal(t, EnemyID(2), splash[0].ID)
	assert.Equal(t, EnemyID(3), splash[1].ID)

	chain := c.ChainTarget(center, 60, primary, enemies)
	require.NotNil(t, chain)
	assert.Equal(t, EnemyID(3), chain.ID)

	assert.Nil(t, c.ChainTarget(center, 10, primary, enemies))
	assert.Empty(t, c.SplashTargets(center, 0, primary, enemies))
}

func TestBossDamage(t *testing.T) {
	c := testResolver()
	d := NewDefender(1, "diviner", config.Default().Defenders["diviner"], 0, 0, core.V(0, 0), NewEffectRegistry())

	boss := enemyAt(1, core.V(0, 0))
	boss.Boss = true
	grunt := enemyAt(2, core.V(0, 0))

	assert.Equal(t, 70, c.BossDamage(d, boss, 35))
	assert.Equal(t, 35, c.BossDamage(d, grunt, 35))
	assert.Equal(t, 20, c.BossDamage(battleMage(NewEffectRegistry()), boss, 20))
}
