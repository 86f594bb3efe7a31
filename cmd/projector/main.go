// Package main provides the scoreline projector CLI.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/scoreline/internal/config"
	"github.com/yourusername/scoreline/internal/logger"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var configFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "projector",
		Short:         "Project fair prices from market-implied scoring rates",
		Long:          `Infers home and away scoring rates from moneyline and totals prices and derives fair odds for moneyline, totals and correct score markets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file (default $SCORELINE_CONFIG_PATH or ./config/config.yaml)")

	rootCmd.AddCommand(newProjectCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "projector %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		},
	}
}

// loadConfig loads and validates the configuration; a missing file falls back to defaults
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadWithDefaults(config.ResolvePath(configFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newAppLogger(cfg *config.Config, cmd *cobra.Command) *logrus.Logger {
	return logger.NewLoggerForEnvironment(cfg.App.LogLevel, cfg.App.Environment, cmd.ErrOrStderr())
}
