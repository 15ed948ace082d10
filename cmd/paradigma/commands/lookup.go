package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/paradigma"
)

// LookupCommand returns the lookup command
func LookupCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>...",
		Short: "Print every analysis of the given words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := app.Index()
			if err != nil {
				return err
			}
			return lookup(cmd, idx, app, args)
		},
	}
}

func lookup(cmd *cobra.Command, idx *paradigma.Index, app *App, words []string) error {
	out := cmd.OutOrStdout()
	if err := app.Config.Query.CheckBatch(words); err != nil {
		return err
	}
	results, err := idx.QueryBatch(cmd.Context(), words, app.Config.Query.BatchWorkers)
	if err != nil {
		return err
	}
	st := styleFor(out)
	for i, entries := range results {
		printAnalyses(out, st, words[i], entries, len(words) > 1)
	}
	return nil
}

func printAnalyses(out io.Writer, st style, word string, entries []paradigma.Entry, header bool) {
	if header {
		fmt.Fprintf(out, "== %s\n", word)
	}
	if len(entries) == 0 {
		fmt.Fprintf(out, "no match for %q\n", word)
		return
	}
	for _, e := range entries {
		fmt.Fprintln(out, st.entryLine(e))
	}
}
