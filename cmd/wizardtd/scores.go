package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wizard-td/internal/registry"
	"github.com/vovakirdan/wizard-td/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [strategy]",
	Short: "Show the run leaderboard",
	Long: `Display the best recorded runs for a strategy, ranked by wave reached,
then kills, then fewest leaks. Without a strategy, shows aggregate
statistics for every strategy that has recorded runs.

Examples:
  wizardtd scores
  wizardtd scores greedy
  wizardtd scores frugal --limit 5
  wizardtd scores idle --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs for the strategy")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			store.Close()
			fmt.Fprintln(os.Stderr, "Error: --clear needs a strategy")
			os.Exit(1)
		}
		showStrategyStats(store)
		return
	}

	name := args[0]

	// Check if strategy exists
	if !registry.Exists(name) {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: unknown strategy %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'wizardtd list' to see available strategies.")
		os.Exit(1)
	}

	if flagClear {
		if err := store.ClearRuns(name); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs for %s.\n", name)
		return
	}

	runs, err := store.TopRuns(name, flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	st := newStyles()
	fmt.Println(st.title.Render("Leaderboard - " + name))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'wizardtd simulate %s' to record the first one!\n", name)
		return
	}

	t := st.newTable("Rank", "Wave", "Kills", "Leaks", "Gold", "Preset", "Seed", "Date")
	for i, r := range runs {
		t.Row(
			fmt.Sprint(i+1),
			fmt.Sprint(r.WaveReached),
			fmt.Sprint(r.Kills),
			fmt.Sprint(r.Leaks),
			fmt.Sprint(r.Gold),
			r.Preset,
			fmt.Sprint(r.Seed),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t.Render())

	best, err := store.BestWave(name)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: wave %d\n", best)
	}
}

func showStrategyStats(store *storage.Store) {
	stats, err := store.StrategyStats()
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	st := newStyles()
	fmt.Println(st.title.Render("Strategy statistics"))
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'wizardtd simulate' to record the first one!")
		return
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	t := st.newTable("Strategy", "Runs", "Best wave", "Avg wave", "Kills", "Last run")
	for _, name := range names {
		s := stats[name]
		t.Row(
			name,
			fmt.Sprint(s.Runs),
			fmt.Sprint(s.BestWave),
			fmt.Sprintf("%.1f", s.AvgWave),
			fmt.Sprint(s.TotalKills),
			s.LastRun.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t.Render())
}
