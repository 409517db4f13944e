package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/taskboard-backend/internal/adapter/postgres"
)

const migrateTimeout = 5 * time.Minute

// NewMigrateCommand creates the migrate command group.
func NewMigrateCommand(global *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrateUp(cmd, global)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrateStatus(cmd, global)
		},
	})

	return cmd
}

func runMigrateUp(cmd *cobra.Command, global *GlobalOptions) error {
	cfg, err := global.load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
	defer cancel()

	results, err := postgres.Migrate(ctx, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		printf(out, "No pending migrations.\n")
		return nil
	}
	for _, r := range results {
		printf(out, "applied %s (%s)\n", r.Source.Path, r.Duration.Round(time.Millisecond))
	}
	return nil
}

func runMigrateStatus(cmd *cobra.Command, global *GlobalOptions) error {
	cfg, err := global.load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
	defer cancel()

	statuses, err := postgres.MigrationStatus(ctx, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("migrate status: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, s := range statuses {
		applied := "pending"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.Format(time.RFC3339)
		}
		printf(out, "%-40s %s\n", s.Source.Path, applied)
	}
	return nil
}
