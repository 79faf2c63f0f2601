package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var errReconcileDisabled = errors.New("reconciliation is disabled (RECONCILE_ENABLED=false)")

func reconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Replay journaled captures and audit cause totals",
		Long: `Replay journaled captures and audit cause totals.

The capture journal is a single-writer file. Stop the server before running
"reconcile drain", or the journal will fail to open.`,
	}

	cmd.AddCommand(drainCmd(), auditCmd(), recomputeCmd())
	return cmd
}

func drainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drain",
		Short: "Settle one batch of journaled captures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := openComponents(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()
			if c.Reconciler == nil {
				return errReconcileDisabled
			}

			report, err := c.Reconciler.Drain(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
}

func auditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "List causes whose raised total disagrees with their donations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := openComponents(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()
			if c.Reconciler == nil {
				return errReconcileDisabled
			}

			drifts, err := c.Reconciler.Audit(cmd.Context())
			if err != nil {
				return err
			}
			if len(drifts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no drift")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CAUSE\tTITLE\tRAISED\tDONATIONS\tCOUNT\tDELTA")
			for _, d := range drifts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
					d.CauseID, d.Title, d.Raised, d.DonationTotal, d.DonationCount, d.Delta())
			}
			return w.Flush()
		},
	}
}

func recomputeCmd() *cobra.Command {
	var causeID string

	cmd := &cobra.Command{
		Use:   "recompute",
		Short: "Reset a cause's raised total to the sum of its donations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(causeID)
			if err != nil {
				return fmt.Errorf("invalid --cause: %w", err)
			}

			c, _, err := openComponents(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()
			if c.Reconciler == nil {
				return errReconcileDisabled
			}

			cause, err := c.Reconciler.Recompute(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s raised=%s goal=%s status=%s\n",
				cause.ID, cause.Raised, cause.Goal, cause.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&causeID, "cause", "", "cause ID")
	_ = cmd.MarkFlagRequired("cause")

	return cmd
}
