package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wizard-td/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default settings YAML",
	Long: `Print the built-in settings as YAML. Save the output to
~/.wizardtd/configs/wizardtd.yaml or ./configs/wizardtd.yaml and edit it
to change the game balance.

Examples:
  wizardtd defaults > ./configs/wizardtd.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}
