// Command givefundctl is the operator CLI: schema migrations, capture
// journal replay, cause total audits and session cleanup.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/givefund-backend/internal/app"
	"github.com/heartmarshall/givefund-backend/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "givefundctl",
		Short:         "Operator tooling for the givefund backend",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(reconcileCmd())
	rootCmd.AddCommand(sessionsCmd())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openComponents loads the full configuration and wires the services the
// same way the server does.
func openComponents(ctx context.Context) (*app.Components, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger := app.NewLogger(cfg.Log)

	c, err := app.Open(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return c, cfg, nil
}
