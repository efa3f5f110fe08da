package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEconomySpend(t *testing.T) {
	e := NewEconomy(100, 3, nil)

	assert.False(t, e.SpendGold(150))
	assert.Equal(t, 100, e.Gold(), "failed spend must not change gold")

	assert.True(t, e.SpendGold(50))
	assert.Equal(t, 50, e.Gold())

	assert.True(t, e.SpendGold(50))
	assert.Equal(t, 0, e.Gold())
}

func TestEconomyObserverOrder(t *testing.T) {
	e := NewEconomy(100, 3, nil)
	var calls []string
	e.OnGoldChange(func(g int) { calls = append(calls, fmt.Sprintf("a:%d", g)) })
	e.OnGoldChange(func(g int) { calls = append(calls, fmt.Sprintf("b:%d", g)) })

	e.AddGold(10)
	e.AddGold(0)
	e.AddGold(-5)

	assert.Equal(t, []string{"a:110", "b:110"}, calls)
}

func TestEconomyGameOverOnce(t *testing.T) {
	e := NewEconomy(100, 3, nil)
	overs := 0
	var final int
	e.OnGameOver(func(w int) {
		overs++
		final = w
	})
	e.NextWave()

	e.LoseLife()
	e.LoseLife()
	assert.False(t, e.GameOver())
	e.LoseLife()

	assert.True(t, e.GameOver())
	assert.Equal(t, 0, e.Lives())
	assert.Equal(t, 1, overs)
	assert.Equal(t, 2, final)

	// Terminal: further losses and income are ignored
	e.LoseLife()
	e.AddGold(10)
	e.NextWave()
	assert.Equal(t, 0, e.Lives())
	assert.Equal(t, 100, e.Gold())
	assert.Equal(t, 2, e.Wave())
	assert.Equal(t, 1, overs)
}

func TestEconomyIgnoresReentrantMutation(t *testing.T) {
	e := NewEconomy(100, 3, nil)
	var spent bool
	e.OnGoldChange(func(int) {
		spent = e.SpendGold(10)
	})

	e.AddGold(10)
	assert.False(t, spent)
	assert.Equal(t, 110, e.Gold())
}

func TestEconomyReset(t *testing.T) {
	e := NewEconomy(100, 2, nil)
	var golds, lives, waves []int
	e.OnGoldChange(func(v int) { golds = append(golds, v) })
	e.OnLivesChange(func(v int) { lives = append(lives, v) })
	e.OnWaveChange(func(v int) { waves = append(waves, v) })

	e.SpendGold(40)
	e.NextWave()
	e.LoseLife()
	e.LoseLife()
	assert.True(t, e.GameOver())

	e.Reset()
	assert.False(t, e.GameOver())
	assert.False(t, e.WaveInProgress())
	assert.Equal(t, 100, e.Gold())
	assert.Equal(t, 2, e.Lives())
	assert.Equal(t, 1, e.Wave())

	assert.Equal(t, []int{60, 100}, golds)
	assert.Equal(t, []int{1, 0, 2}, lives)
	assert.Equal(t, []int{2, 1}, waves)
}
