package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wizard-td/internal/autoplay"
	"github.com/vovakirdan/wizard-td/internal/config"
	"github.com/vovakirdan/wizard-td/internal/core"
	"github.com/vovakirdan/wizard-td/internal/engine"
	"github.com/vovakirdan/wizard-td/internal/registry"
	"github.com/vovakirdan/wizard-td/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMaxWaves   int
	flagMaxTicks   int
	flagNoSave     bool
	flagTrace      bool
	flagBoard      bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [strategy]",
	Short: "Play a game with an autoplay strategy",
	Long: `Run a complete game headlessly. The strategy places wizards between
waves; the simulation then ticks at the configured rate until the wave is
cleared or every life is lost. Defaults to the greedy strategy.

Difficulty options:
  easy   - More gold and lives, slower health growth
  normal - Settings as loaded
  hard   - Less gold, one life fewer, faster health growth
  fixed  - No wave scaling, every wave fields wave-1 enemies

Examples:
  wizardtd simulate
  wizardtd simulate frugal --seed 7
  wizardtd simulate greedy --difficulty hard --max-waves 20
  wizardtd simulate idle --no-save
  wizardtd simulate greedy --config ./my-balance.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom settings YAML")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simulateCmd.Flags().IntVar(&flagMaxWaves, "max-waves", 0, "Stop after this many cleared waves (0 = until game over)")
	simulateCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 0, "Stop after this many ticks (0 = unlimited)")
	simulateCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run in the database")
	simulateCmd.Flags().BoolVar(&flagTrace, "trace", false, "Log every simulation event at debug level")
	simulateCmd.Flags().BoolVar(&flagBoard, "board", false, "Print the final board layout")
}

func runSimulate(cmd *cobra.Command, args []string) {
	name := "greedy"
	if len(args) > 0 {
		name = args[0]
	}

	// Check if strategy exists
	if !registry.Exists(name) {
		fmt.Fprintf(os.Stderr, "Error: unknown strategy %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'wizardtd list' to see available strategies.")
		os.Exit(1)
	}

	logger := newLogger()

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}
	settings = config.ApplyPreset(settings, preset)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := core.RuntimeConfig{
		TickRate: flagTickRate,
		Seed:     seed,
	}

	var sink engine.EventSink
	if flagTrace {
		sink = traceSink(logger)
	}

	sim, err := engine.New(settings, sink, engine.Options{Runtime: rt, Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating simulation: %v\n", err)
		os.Exit(1)
	}

	strategy, err := registry.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating strategy: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := &autoplay.Runner{
		Sim:      sim,
		Strategy: strategy,
		StepMs:   rt.StepMs(),
		MaxWaves: flagMaxWaves,
		MaxTicks: flagMaxTicks,
		Preset:   string(preset),
		Seed:     seed,
		Logger:   logger,
	}

	started := time.Now()
	res, runErr := runner.Run(ctx)
	interrupted := errors.Is(runErr, context.Canceled)
	if runErr != nil && !interrupted {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		os.Exit(1)
	}

	st := newStyles()
	fmt.Println(renderSummary(st, res, sim.Stats(), time.Since(started)))
	if flagBoard {
		fmt.Println()
		fmt.Println(renderBoard(sim))
	}

	// Interrupted runs are partial and not worth ranking
	if flagNoSave || interrupted {
		if interrupted {
			fmt.Println(st.muted.Render("Interrupted; run not saved."))
		}
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		return
	}
	defer store.Close()

	prevBest, err := store.BestWave(res.Strategy)
	if err != nil {
		logger.Warn("could not read best wave", "error", err)
	}

	if _, err := store.SaveRun(res); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save run: %v\n", err)
		return
	}

	if res.WaveReached > prevBest {
		fmt.Println(st.good.Render(fmt.Sprintf("New best for %s: wave %d!", res.Strategy, res.WaveReached)))
	}
	fmt.Println(st.muted.Render("Saved run " + res.RunID))
}

// renderSummary formats a finished run as a boxed key/value list.
func renderSummary(st styles, res autoplay.Result, stats engine.Stats, elapsed time.Duration) string {
	outcome := st.good.Render("survived")
	if res.GameOver {
		outcome = st.bad.Render("defeated")
	}

	lines := []string{
		st.title.Render(fmt.Sprintf("Run summary - %s (%s)", res.Strategy, res.Preset)),
		"",
		st.row("Outcome", outcome),
		st.row("Wave reached", st.value.Render(fmt.Sprint(res.WaveReached))),
		st.row("Waves cleared", st.value.Render(fmt.Sprint(res.WavesCleared))),
		st.row("Kills", st.value.Render(fmt.Sprint(res.Kills))),
		st.row("Leaks", st.value.Render(fmt.Sprint(res.Leaks))),
		st.row("Gold", st.value.Render(fmt.Sprint(res.Gold))),
		st.row("Lives", st.value.Render(fmt.Sprint(res.Lives))),
		st.row("Defenders", st.value.Render(fmt.Sprint(res.Defenders))),
		st.row("Shots / hits", fmt.Sprintf("%d / %d", stats.ShotsFired, stats.HitsLanded)),
		st.row("Damage dealt", fmt.Sprint(stats.DamageDealt)),
		st.row("Items", fmt.Sprint(stats.ItemsCollected)),
		st.row("Game time", (time.Duration(res.SimulatedMs) * time.Millisecond).Round(time.Second).String()),
		st.row("Ticks", fmt.Sprintf("%d in %s", res.Ticks, elapsed.Round(time.Millisecond))),
		st.row("Seed", fmt.Sprint(res.Seed)),
	}

	return st.box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// traceSink logs every event with its concrete type name.
func traceSink(logger *log.Logger) engine.EventSink {
	return engine.EventSinkFunc(func(e engine.Event) {
		kind := strings.TrimPrefix(fmt.Sprintf("%T", e), "engine.")
		logger.Debug(kind, "event", fmt.Sprintf("%+v", e))
	})
}
