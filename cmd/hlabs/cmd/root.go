package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hlabs",
	Short: "H Labs site tool",
	Long: `hlabs serves the H Labs landing site and inspects its content.

Available commands:
  serve       Run the HTTP server
  content     Validate or dump the bilingual content bundles
  terminal    Inspect the Terminal OS pages
  version     Print the version

Use "hlabs [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
