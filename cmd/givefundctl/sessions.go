package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func sessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Maintain login sessions",
	}

	var retention time.Duration
	cleanup := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete sessions that expired or were revoked before the retention window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := openComponents(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			if !cmd.Flags().Changed("retention") {
				retention = cfg.Auth.SessionRetention
			}

			n, err := c.Accounts.CleanupSessions(cmd.Context(), retention)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d sessions\n", n)
			return nil
		},
	}
	cleanup.Flags().DurationVar(&retention, "retention", 0, "keep sessions that ended within this window (default $AUTH_SESSION_RETENTION)")
	cmd.AddCommand(cleanup)

	return cmd
}
