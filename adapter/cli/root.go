// Package cli wires the tracker's command and query handlers to a cobra
// command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/fitweek/pkg/observability"
)

var (
	verbose bool
	logger  *slog.Logger
)

type commandTiming struct {
	startedAt time.Time
}

type commandTimingKey struct{}

func contextWithTiming(ctx context.Context) context.Context {
	return context.WithValue(ctx, commandTimingKey{}, commandTiming{startedAt: time.Now()})
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fitweek",
	Short: "fitweek - weekly fitness tracker",
	Long: `fitweek tracks your weight, calories, protein, steps, and training
volume one week at a time, and derives weekly averages and
week-over-week weight trends from what you log.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		ctx := observability.WithInvocationID(cmd.Context(), "")
		ctx = contextWithTiming(ctx)
		cmd.SetContext(ctx)
		logger.InfoContext(ctx, "command start", "command", cmd.CommandPath())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		ctx := cmd.Context()
		timing, ok := ctx.Value(commandTimingKey{}).(commandTiming)
		if !ok {
			return
		}
		logger.InfoContext(ctx, "command end",
			"command", cmd.CommandPath(),
			"duration_ms", time.Since(timing.startedAt).Milliseconds(),
		)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// AddCommand adds a command to the root command.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}
