package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/paradigma"
)

// FormsCommand returns the command printing full paradigms
func FormsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "forms <word>",
		Short: "Print the paradigm of every lemma a word belongs to",
		Long: `Print the paradigm of every lemma a word belongs to.

The word is looked up like in "lookup"; every lemma of the first
matching spelling is printed with all of its forms in table order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := app.Index()
			if err != nil {
				return err
			}
			if err := app.Config.Query.Check(args[0]); err != nil {
				return err
			}
			_, entries, ok := idx.First(args[0])
			if !ok {
				return fmt.Errorf("no match for %q", args[0])
			}

			out := cmd.OutOrStdout()
			st := styleFor(out)
			for _, l := range paradigma.Lemmas(entries) {
				forms := paradigma.Paradigm(l)
				fmt.Fprintf(out, "%s [%s]: %s forms\n",
					st.paint(paradigma.CanonicalForm(l), colorGray), l.POS(), printer.Sprint(len(forms)))
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, f := range forms {
					fmt.Fprintf(tw, "  %s\t%s\t%s\n", f.Entry.Code(), f.Surface, paradigma.Describe(f.Entry))
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
