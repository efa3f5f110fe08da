package engine

import "github.com/charmbracelet/log"

// Economy owns gold, lives and the wave counter, and notifies observers on
// every change. Observers run synchronously in registration order.
//
// A mutation attempted from inside an observer callback is ignored: the
// balance an observer sees is always the one it was notified about.
type Economy struct {
	startGold  int
	startLives int

	gold           int
	lives          int
	wave           int
	waveInProgress bool
	gameOver       bool

	goldObservers     []func(gold int)
	livesObservers    []func(lives int)
	waveObservers     []func(wave int)
	gameOverObservers []func(finalWave int)

	notifying bool
	logger    *log.Logger
}

// NewEconomy returns an economy at wave 1 with the given starting balance.
func NewEconomy(startingGold, startingLives int, logger *log.Logger) *Economy {
	if logger == nil {
		logger = discardLogger()
	}
	return &Economy{
		startGold:  startingGold,
		startLives: startingLives,
		gold:       startingGold,
		lives:      startingLives,
		wave:       1,
		logger:     logger,
	}
}

func (e *Economy) Gold() int            { return e.gold }
func (e *Economy) Lives() int           { return e.lives }
func (e *Economy) Wave() int            { return e.wave }
func (e *Economy) WaveInProgress() bool { return e.waveInProgress }
func (e *Economy) GameOver() bool       { return e.gameOver }

// OnGoldChange registers fn to receive the new gold balance.
func (e *Economy) OnGoldChange(fn func(gold int)) {
	e.goldObservers = append(e.goldObservers, fn)
}

// OnLivesChange registers fn to receive the new life count.
func (e *Economy) OnLivesChange(fn func(lives int)) {
	e.livesObservers = append(e.livesObservers, fn)
}

// OnWaveChange registers fn to receive the new wave number.
func (e *Economy) OnWaveChange(fn func(wave int)) {
	e.waveObservers = append(e.waveObservers, fn)
}

// OnGameOver registers fn to run once when lives reach zero.
func (e *Economy) OnGameOver(fn func(finalWave int)) {
	e.gameOverObservers = append(e.gameOverObservers, fn)
}

// AddGold credits amount. Non-positive amounts are ignored.
func (e *Economy) AddGold(amount int) {
	if amount <= 0 || !e.mutable("add gold") {
		return
	}
	e.gold += amount
	e.notify(e.goldObservers, e.gold)
}

// SpendGold debits amount if the balance covers it.
func (e *Economy) SpendGold(amount int) bool {
	if amount < 0 || !e.mutable("spend gold") {
		return false
	}
	if e.gold < amount {
		return false
	}
	e.gold -= amount
	e.notify(e.goldObservers, e.gold)
	return true
}

// LoseLife removes one life. Reaching zero ends the game; the game-over
// observers fire on that transition only.
func (e *Economy) LoseLife() {
	if !e.mutable("lose life") {
		return
	}
	e.lives--
	e.notify(e.livesObservers, e.lives)

	if e.lives <= 0 {
		e.lives = 0
		e.gameOver = true
		e.waveInProgress = false
		e.logger.Info("game over", "wave", e.wave)
		e.notify(e.gameOverObservers, e.wave)
	}
}

// NextWave advances the wave counter.
func (e *Economy) NextWave() {
	if !e.mutable("advance wave") {
		return
	}
	e.wave++
	e.notify(e.waveObservers, e.wave)
}

// SetWaveInProgress records whether a wave is being fought.
func (e *Economy) SetWaveInProgress(v bool) {
	if e.gameOver {
		return
	}
	e.waveInProgress = v
}

// Reset restores the starting balance and clears game over.
// Observers stay registered and are told the restored values.
func (e *Economy) Reset() {
	e.gold = e.startGold
	e.lives = e.startLives
	e.wave = 1
	e.waveInProgress = false
	e.gameOver = false

	e.notify(e.goldObservers, e.gold)
	e.notify(e.livesObservers, e.lives)
	e.notify(e.waveObservers, e.wave)
}

func (e *Economy) mutable(op string) bool {
	if e.gameOver {
		return false
	}
	if e.notifying {
		e.logger.Warn("ignoring economy mutation from observer", "op", op)
		return false
	}
	return true
}

func (e *Economy) notify(observers []func(int), v int) {
	e.notifying = true
	defer func() { e.notifying = false }()
	for _, fn := range observers {
		fn(v)
	}
}
