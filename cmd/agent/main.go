package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ikraph-email-agent/config"
	"ikraph-email-agent/internal/app"
	"ikraph-email-agent/pkg/log"
)

var (
	logLevel string
	timeout  time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "agent",
	Short: "Ask the iKraph knowledge graph and optionally email the answer",
	Long: `agent answers medical questions from the iKraph Neo4j knowledge graph.

When the prompt asks for the answer to be sent to an email address, the answer
is rewritten as an email and delivered through the configured mail transport.

Configuration is read from config/config.yaml and the environment (.env supported).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level written to stderr (debug, info, warn, error)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall deadline for one run")

	rootCmd.AddCommand(askCmd, routeCmd)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// run executes the root command until it returns or a shutdown signal arrives.
func run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// withApp loads configuration, builds the agent and runs fn with it under the --timeout deadline.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        logLevel,
		Mode:         cfg.Logger.Mode,
		Encoding:     log.EncodingConsole,
		ColorEnabled: cfg.Logger.ColorEnabled,
		Output:       cmd.ErrOrStderr(),
	})

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	a, err := app.New(ctx, cfg, logger, nil)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	return fn(ctx, a)
}
