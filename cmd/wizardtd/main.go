// wizardtd runs the wizard tower-defense simulation headlessly in the terminal.
//
// Usage:
//
//	wizardtd simulate [strategy]  - Play a game with an autoplay strategy
//	wizardtd scores [strategy]    - Show the run leaderboard
//	wizardtd list                 - List strategies and the defender roster
//	wizardtd defaults             - Print the default settings YAML
//
// Global flags:
//
//	--tick-rate <rate>  - Simulation ticks per second (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.wizardtd/runs.db)
//	--log-level <lvl>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import autoplay to register the built-in strategies
	_ "github.com/vovakirdan/wizard-td/internal/autoplay"
)

var (
	// Global flags
	flagTickRate int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wizardtd",
	Short: "Wizard TD - Headless tower-defense simulator",
	Long: `Wizard TD simulates a grid-based tower-defense game where wizards
defend a winding path against waves of monsters. Games are played by
autoplay strategies and recorded in a local run history.

Available commands:
  simulate  - Play a game with an autoplay strategy
  scores    - View the run leaderboard
  list      - Show strategies and defender types
  defaults  - Print the default settings YAML

Examples:
  wizardtd list
  wizardtd simulate greedy --seed 42
  wizardtd simulate frugal --difficulty hard --max-waves 10
  wizardtd scores greedy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagTickRate, "tick-rate", 60, "Simulation ticks per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wizardtd/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// newLogger builds the stderr logger shared by the simulation and the runner.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "wizardtd",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.SetLevel(level)

	return logger
}
