// Package cli implements the sudoku command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gridkit/sudoku/internal/config"
	"github.com/gridkit/sudoku/internal/infrastructure/storage"
	"github.com/gridkit/sudoku/internal/solver"
	"github.com/gridkit/sudoku/internal/usecase"
	"github.com/gridkit/sudoku/internal/validator"
)

// Version is overridden at build time via ldflags.
var Version = "dev"

var (
	envFile  string
	logLevel string

	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Solve and validate 9x9 Sudoku puzzles",
	Long: `Solve and validate 9x9 Sudoku puzzles.

Puzzles are read from files, stdin, or the built-in samples, in either the
11-line grid layout or the 81-digit flat layout. Defaults come from SUDOKU_*
environment variables and an optional .env file; flags win over both.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("unknown log level %q: %w", cfg.LogLevel, err)
		}
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).Level(level).With().Timestamp().Logger()
		return nil
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultConfig().LogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional .env file with SUDOKU_* settings")
}

// Execute runs the command tree, cancelling in-flight work on SIGINT or
// SIGTERM. The returned code is the process exit status.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func newService(strategy solver.Strategy, timeout time.Duration) *usecase.Service {
	return usecase.NewService(
		solver.New(strategy, timeout, logger),
		validator.New(),
		storage.NewFS(logger),
		logger,
	)
}

// stringSetting resolves a flag against its configured fallback: the flag
// value wins only when the user set it.
func stringSetting(cmd *cobra.Command, name, flagVal, cfgVal string) string {
	if cmd.Flags().Changed(name) {
		return flagVal
	}
	return cfgVal
}

func durationSetting(cmd *cobra.Command, name string, flagVal, cfgVal time.Duration) time.Duration {
	if cmd.Flags().Changed(name) {
		return flagVal
	}
	return cfgVal
}
