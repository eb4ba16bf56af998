package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"remote-calc/internal/calcclient"
	"remote-calc/internal/keypad"
	"remote-calc/internal/observability"
	"remote-calc/internal/tui"
)

const serviceName = "calc"

// NewRootCmd builds the calc command tree. The root command runs the
// interactive calculator.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "calc",
		Short:         "Terminal calculator backed by the calculation service",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, func(ctx context.Context, calc keypad.Calculator) error {
				p := tea.NewProgram(tui.New(calc), tea.WithAltScreen(), tea.WithContext(ctx))
				_, err := p.Run()
				return err
			})
		},
	}

	addConfigFlags(cmd)
	cmd.AddCommand(newPressCmd())

	return cmd
}

// withRuntime loads configuration, sets up logging and optional tracing,
// and hands fn a Calculator for the configured service.
func withRuntime(cmd *cobra.Command, fn func(context.Context, keypad.Calculator) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := observability.InitFileLogger(cfg.LogFile); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer observability.SyncLogger()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cfg.Trace {
		shutdown, err := observability.InitTracing(ctx, serviceName)
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		defer shutdown(context.Background())
	}

	observability.Logger.Info("calculator starting",
		zap.String("server_url", cfg.ServerURL),
		zap.Duration("timeout", cfg.Timeout),
		zap.String("command", cmd.Name()),
	)

	return fn(ctx, calcclient.New(cfg.ServerURL, calcclient.WithTimeout(cfg.Timeout)))
}
