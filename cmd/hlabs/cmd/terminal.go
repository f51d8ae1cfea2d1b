package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/hlabs/hlabs-web/internal/terminal"
	"github.com/spf13/cobra"
)

var terminalCmd = &cobra.Command{
	Use:   "terminal",
	Short: "Inspect the Terminal OS",
}

var terminalPagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List the Terminal OS pages in sidebar order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tLABEL\tPATH")
		fmt.Fprintln(w, "--\t-----\t----")
		for _, p := range terminal.Pages() {
			fmt.Fprintf(w, "%s\t%s\t/terminal/panels/%s\n", p, p.Label(), p)
		}
		return w.Flush()
	},
}

func init() {
	terminalCmd.AddCommand(terminalPagesCmd)
	rootCmd.AddCommand(terminalCmd)
}
