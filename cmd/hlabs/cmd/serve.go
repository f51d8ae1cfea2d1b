package cmd

import (
	"log/slog"

	"github.com/hlabs/hlabs-web/internal/config"
	"github.com/hlabs/hlabs-web/internal/logging"
	"github.com/hlabs/hlabs-web/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Run the landing site until interrupted. Settings come from the environment
and an optional .env file in the working directory; see .env.example.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		logging.New(cfg.LogFormat, cfg.LogLevel)

		s, err := server.New(cfg)
		if err != nil {
			return err
		}
		if err := s.RegisterRoutes(cmd.Context()); err != nil {
			return err
		}
		slog.Info("hlabs starting", "version", version)
		return s.Start(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
