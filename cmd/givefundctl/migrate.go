package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/givefund-backend/internal/adapter/postgres"
)

func migrateCmd() *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if dsn == "" {
				dsn = os.Getenv("DATABASE_DSN")
			}
			if dsn == "" {
				return errors.New("database DSN is required (--dsn or DATABASE_DSN)")
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&dsn, "dsn", "", "PostgreSQL DSN (default $DATABASE_DSN)")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := postgres.NewMigrator(dsn)
			if err != nil {
				return err
			}
			defer m.Close()

			applied, err := m.Up(cmd.Context())
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
				return nil
			}
			for _, v := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %05d\n", v)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := postgres.NewMigrator(dsn)
			if err != nil {
				return err
			}
			defer m.Close()

			statuses, err := m.Status(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "VERSION\tAPPLIED\tSOURCE")
			for _, s := range statuses {
				fmt.Fprintf(w, "%05d\t%t\t%s\n", s.Version, s.Applied, s.Source)
			}
			return w.Flush()
		},
	})

	return cmd
}
