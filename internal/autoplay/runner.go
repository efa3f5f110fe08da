package autoplay

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/wizard-td/internal/core"
	"github.com/vovakirdan/wizard-td/internal/engine"
	"github.com/vovakirdan/wizard-td/internal/registry"
)

// ctxCheckEvery is how many ticks pass between context checks.
const ctxCheckEvery = 1000

// Result summarises a finished headless run.
type Result struct {
	RunID        string
	Strategy     string
	Preset       string
	Seed         int64
	WaveReached  int
	WavesCleared int
	Gold         int
	Lives        int
	Kills        int
	Leaks        int
	Defenders    int
	Ticks        int
	SimulatedMs  float64
	GameOver     bool
}

// Runner plays a simulation wave by wave with a fixed time step.
type Runner struct {
	Sim      *engine.Simulation
	Strategy registry.Strategy
	StepMs   float64 // Tick length; zero means 60 ticks per second
	MaxWaves int     // Stop after this many cleared waves; zero is unlimited
	MaxTicks int     // Stop after this many ticks; zero is unlimited
	Preset   string  // Recorded in the result only
	Seed     int64   // Recorded in the result only
	Logger   *log.Logger
}

// Run plays until game over, a budget is exhausted or ctx is done.
// On cancellation it returns the partial result along with ctx.Err().
func (r *Runner) Run(ctx context.Context) (Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	step := r.StepMs
	if step <= 0 {
		step = core.DefaultConfig().StepMs()
	}

	sim := r.Sim
	ticks := 0
	budgetLeft := func() bool { return r.MaxTicks <= 0 || ticks < r.MaxTicks }

	for budgetLeft() {
		if err := ctx.Err(); err != nil {
			return r.result(ticks), err
		}
		if sim.Economy().GameOver {
			break
		}
		if r.MaxWaves > 0 && sim.Stats().WavesCleared >= r.MaxWaves {
			break
		}

		r.Strategy.Plan(sim)
		wave := sim.Economy().Wave
		if !sim.StartWave() {
			logger.Warn("wave refused to start", "wave", wave)
			break
		}

		for sim.Economy().WaveInProgress && budgetLeft() {
			sim.Update(step)
			ticks++
			if ticks%ctxCheckEvery == 0 {
				if err := ctx.Err(); err != nil {
					return r.result(ticks), err
				}
			}
		}

		eco := sim.Economy()
		logger.Info("wave finished",
			"wave", wave,
			"gold", eco.Gold,
			"lives", eco.Lives,
			"defenders", len(sim.Defenders()),
		)
	}

	res := r.result(ticks)
	logger.Info("run finished",
		"strategy", res.Strategy,
		"wave", res.WaveReached,
		"kills", res.Kills,
		"leaks", res.Leaks,
		"game_over", res.GameOver,
	)
	return res, nil
}

func (r *Runner) result(ticks int) Result {
	eco := r.Sim.Economy()
	stats := r.Sim.Stats()
	return Result{
		RunID:        uuid.New().String(),
		Strategy:     r.Strategy.Name(),
		Preset:       r.Preset,
		Seed:         r.Seed,
		WaveReached:  eco.Wave,
		WavesCleared: stats.WavesCleared,
		Gold:         eco.Gold,
		Lives:        eco.Lives,
		Kills:        stats.Kills,
		Leaks:        stats.Leaks,
		Defenders:    len(r.Sim.Defenders()),
		Ticks:        ticks,
		SimulatedMs:  r.Sim.Now(),
		GameOver:     eco.GameOver,
	}
}
