package engine

import "github.com/vovakirdan/wizard-td/internal/config"

// WavePhase is the wave controller state.
type WavePhase int

const (
	WaveIdle WavePhase = iota
	WaveSpawning
)

func (p WavePhase) String() string {
	if p == WaveSpawning {
		return "spawning"
	}
	return "idle"
}

// EnemyCount returns the number of enemies wave n fields.
func EnemyCount(base, wave int) int {
	return base + wave/2
}

// WaveController spawns a wave's enemies on a fixed interval and decides
// when the wave is over.
type WaveController struct {
	cfg config.WaveConfig

	phase   WavePhase
	wave    int
	total   int
	spawned int
	timerMs float64
}

// NewWaveController returns an idle controller.
func NewWaveController(cfg config.WaveConfig) *WaveController {
	return &WaveController{cfg: cfg}
}

func (w *WaveController) Phase() WavePhase { return w.phase }
func (w *WaveController) Wave() int        { return w.wave }
func (w *WaveController) Total() int       { return w.total }
func (w *WaveController) Spawned() int     { return w.spawned }
func (w *WaveController) TimerMs() float64 { return w.timerMs }

// Start begins spawning wave n. It fails unless the controller is idle.
func (w *WaveController) Start(wave int) bool {
	if w.phase != WaveIdle {
		return false
	}
	w.phase = WaveSpawning
	w.wave = wave
	w.total = EnemyCount(w.cfg.BaseEnemies, wave)
	w.spawned = 0
	w.timerMs = 0
	return true
}

// Tick advances the spawn timer. When the interval elapses and enemies
// remain it returns the archetype to spawn. At most one enemy spawns per
// tick, and the timer restarts from zero rather than carrying the excess.
func (w *WaveController) Tick(dtMs float64) (kind string, ok bool) {
	if w.phase != WaveSpawning || w.spawned >= w.total {
		return "", false
	}
	w.timerMs += dtMs
	if w.timerMs < w.cfg.SpawnIntervalMs {
		return "", false
	}
	w.timerMs = 0
	kind = w.ArchetypeFor(w.spawned)
	w.spawned++
	return kind, true
}

// ArchetypeFor returns the enemy kind of the i-th spawn in the current wave.
// On boss waves the final spawn is the boss.
func (w *WaveController) ArchetypeFor(i int) string {
	if w.bossWave() && i == w.total-1 {
		return w.cfg.Boss
	}
	if len(w.cfg.Rotation) == 0 {
		return ""
	}
	return w.cfg.Rotation[i%len(w.cfg.Rotation)]
}

func (w *WaveController) bossWave() bool {
	return w.cfg.BossEvery > 0 && w.cfg.Boss != "" && w.wave%w.cfg.BossEvery == 0
}

// Complete reports whether a started wave is finished: everything spawned
// and no enemy still alive. On true the controller returns to idle.
func (w *WaveController) Complete(liveEnemies int) bool {
	if w.phase != WaveSpawning || w.spawned < w.total || liveEnemies > 0 {
		return false
	}
	w.phase = WaveIdle
	return true
}

// CompletionBonus returns the gold awarded when entering wave next.
func (w *WaveController) CompletionBonus(next int) int {
	return w.cfg.CompletionBonusBase + w.cfg.CompletionBonusPerWave*next
}

// Reset returns the controller to idle with no wave in progress.
func (w *WaveController) Reset() {
	*w = WaveController{cfg: w.cfg}
}
