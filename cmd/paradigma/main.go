// Command paradigma generates and looks up the inflected forms of a
// Latin lexicon.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/paradigma/cmd/paradigma/commands"
)

func main() {
	app := &commands.App{}

	rootCmd := &cobra.Command{
		Use:   "paradigma",
		Short: "Latin form generator and lookup",
		Long: `Latin form generator and lookup

Builds every inflected form of the lexicon under the data directory
and answers queries typed without length marks ("amavi" finds amāvī).`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.Setup()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.Sync()
		},
		Run: func(cmd *cobra.Command, _ []string) {
			// Show help if no subcommand provided
			if err := cmd.Help(); err != nil {
				fmt.Printf("Error showing help: %v\n", err)
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&app.ConfigPath, "config", "c", "", "YAML config file (default $PARADIGMA_CONFIG_FILE)")
	rootCmd.PersistentFlags().StringVarP(&app.DataDir, "data", "d", "", "data directory (overrides data_dir)")

	rootCmd.AddCommand(commands.ServeCommand(app))
	rootCmd.AddCommand(commands.ReplCommand(app))
	rootCmd.AddCommand(commands.LookupCommand(app))
	rootCmd.AddCommand(commands.FormsCommand(app))
	rootCmd.AddCommand(commands.ExportCommand(app))
	rootCmd.AddCommand(commands.StatsCommand(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
