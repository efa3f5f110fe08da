package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wizard-td/internal/config"
	"github.com/vovakirdan/wizard-td/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List strategies and defender types",
	Long: `Shows the registered autoplay strategies and the defender roster from
the active settings, with costs and unlock waves.`,
	Run: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom settings YAML")
}

func runList(cmd *cobra.Command, args []string) {
	st := newStyles()
	strategies := registry.List()

	fmt.Println(st.title.Render("Strategies"))
	fmt.Println()
	if len(strategies) == 0 {
		fmt.Println("No strategies available.")
	} else {
		t := st.newTable("Name", "Description")
		for _, s := range strategies {
			t.Row(s.Name, s.Description)
		}
		fmt.Println(t.Render())
	}

	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(st.title.Render("Defenders"))
	fmt.Println()

	t := st.newTable("ID", "Name", "Cost", "Damage", "Range", "Rate/s", "Unlocks")
	for _, kind := range settings.DefenderKinds() {
		d := settings.Defenders[kind]
		t.Row(
			kind,
			d.Name,
			fmt.Sprint(d.Cost),
			fmt.Sprint(d.Damage),
			fmt.Sprint(d.Range),
			fmt.Sprintf("%.1f", d.FireRate),
			fmt.Sprintf("wave %d", max(d.UnlockWave, 1)),
		)
	}
	fmt.Println(t.Render())

	fmt.Println()
	fmt.Println("Run 'wizardtd simulate <strategy>' to play a game.")
}
