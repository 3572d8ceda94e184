package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logLevel string

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "linesim",
		Short: "Match-five lines simulation engine",
		Long: `linesim simulates the classic match-five lines board game: move a ball
along free-cell paths, clear lines of matching colors, survive the spawns.

It can serve the JSON API, play games locally with bot strategies, and
train the neural strategy through self-play.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newTrainCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the process logger honoring the --log-level flag
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
