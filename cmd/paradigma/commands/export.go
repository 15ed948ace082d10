package commands

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cours-de-latin/paradigma/internal/export"
)

// ExportCommand returns the SQLite export command
func ExportCommand(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every generated form to a SQLite database",
		Long: `Write every generated form to a SQLite database.

The database holds two tables: lemmas (canonical form, part of speech,
meaning) and forms (surface form, plain spelling, category code).
An existing export at the same path is replaced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			idx, err := app.Index()
			if err != nil {
				return err
			}
			sum, err := export.SQLite(cmd.Context(), idx, out)
			if err != nil {
				app.Logger.Error("export failed", zap.String("path", out), zap.Error(err))
				return err
			}

			size := "?"
			if fi, err := os.Stat(out); err == nil {
				size = humanize.Bytes(uint64(fi.Size()))
			}
			printer.Fprintf(cmd.OutOrStdout(), "wrote %d lemmas and %d forms to %s (%s)\n",
				sum.Lemmas, sum.Forms, out, size)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "paradigma.db", "SQLite database to write")

	return cmd
}

// StatsCommand returns the stats command
func StatsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show index statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			idx, err := app.Index()
			if err != nil {
				return err
			}
			s := idx.Stats()
			w := cmd.OutOrStdout()
			printer.Fprintf(w, "lemmas:  %d\n", s.Lemmas)
			printer.Fprintf(w, "derived: %d\n", s.Derived)
			printer.Fprintf(w, "forms:   %d\n", s.Forms)
			printer.Fprintf(w, "entries: %d\n", s.Entries)
			fmt.Fprintf(w, "data:    %s\n", app.Config.DataDir)
			return nil
		},
	}
}
