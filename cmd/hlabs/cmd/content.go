package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/hlabs/hlabs-web/internal/content"
	"github.com/spf13/cobra"
)

var (
	contentDir  string
	contentLang string
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Validate or dump the bilingual content bundles",
	Long: `The content command loads the content bundles the same way the server does.

Examples:
  # Check the embedded bundles
  hlabs content validate

  # Check an edited copy before deploying it with CONTENT_DIR
  hlabs content validate --dir ./content

  # Print the English bundle as JSON
  hlabs content dump --lang en`,
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check schema, language parity and partner lists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		source := "embedded bundles"
		if contentDir != "" {
			source = contentDir
		}
		fmt.Fprintf(cmd.OutOrStdout(), "OK: %s (%d languages, %d strategic partners, %d media partners)\n",
			source, len(content.Languages()), len(store.StrategicPartners()), len(store.MediaPartners()))
		return nil
	},
}

var contentDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print one language bundle as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := content.ParseLanguage(contentLang)
		if err != nil {
			return err
		}
		store, err := loadStore()
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(store.Bundle(lang))
	},
}

func loadStore() (*content.Store, error) {
	if contentDir == "" {
		return content.Load(content.EmbeddedFS())
	}
	return content.Load(content.DirFS(contentDir))
}

func init() {
	contentCmd.PersistentFlags().StringVar(&contentDir, "dir", "", "Load bundles from this directory instead of the embedded copy")
	contentDumpCmd.Flags().StringVar(&contentLang, "lang", content.DefaultLanguage.String(), "Language to dump (cn or en)")

	contentCmd.AddCommand(contentValidateCmd, contentDumpCmd)
	rootCmd.AddCommand(contentCmd)
}
