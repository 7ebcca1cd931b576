package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-api/internal"
	"github.com/rocketscienceinc/tictactoe-api/internal/config"
	"github.com/rocketscienceinc/tictactoe-api/internal/observability"
)

const defaultConfigPath = "./config.yml"

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	serve := func(_ *cobra.Command, _ []string) error {
		conf := config.MustLoad(configPath)
		logger := observability.NewLogger(conf.LogLevel, conf.LogFile)

		if err := app.RunApp(logger, conf); err != nil {
			return fmt.Errorf("app run failed: %w", err)
		}

		return nil
	}

	cmd := &cobra.Command{
		Use:          "tictactoe-api",
		Short:        "Tic-tac-toe game API",
		SilenceUsage: true,
		RunE:         serve,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "config file path")

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (default)",
		RunE:  serve,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(_ *cobra.Command, _ []string) error {
			conf := config.MustLoad(configPath)
			logger := observability.NewLogger(conf.LogLevel, conf.LogFile)

			return app.Migrate(logger, conf)
		},
	})

	return cmd
}
