package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/paradigma"
	"github.com/cours-de-latin/paradigma/internal/config"
)

const prompt = "LAT> "

// ReplCommand returns the interactive lookup command
func ReplCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Look words up interactively",
		Long: `Read one word per line and print every analysis of it.

Words may be typed without length marks and with i/u for j/v.
An empty line or end of input exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			idx, err := app.Index()
			if err != nil {
				return err
			}
			return repl(idx, app.Config.Query, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func repl(idx *paradigma.Index, limits config.QueryConfig, in io.Reader, out io.Writer) error {
	st := styleFor(out)
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		word := strings.TrimSpace(sc.Text())
		if word == "" {
			return nil
		}
		entries, err := limits.Query(idx, word)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if len(entries) == 0 {
			fmt.Fprintf(out, "no match for %q\n", word)
			continue
		}
		for _, e := range entries {
			fmt.Fprintln(out, st.entryLine(e))
		}
	}
}
