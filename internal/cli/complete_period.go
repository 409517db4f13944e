package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/taskboard-backend/internal/adapter/postgres"
	goalrepo "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/goal"
	periodrepo "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/period"
	taskrepo "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/task"
	"github.com/heartmarshall/taskboard-backend/internal/app"
	"github.com/heartmarshall/taskboard-backend/internal/service/listing"
	"github.com/heartmarshall/taskboard-backend/internal/service/period"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

// CompletePeriodOptions contains the options for the complete-period command.
type CompletePeriodOptions struct {
	Tenant   string
	PeriodID string
	UserID   string
}

// NewCompletePeriodCommand creates the complete-period command.
func NewCompletePeriodCommand(global *GlobalOptions) *cobra.Command {
	opts := &CompletePeriodOptions{}

	cmd := &cobra.Command{
		Use:   "complete-period",
		Short: "Close a period: unlink open tasks and archive completed ones",
		Long: `Close a period in one transaction.

Open tasks of the period lose their period and stay active; completed tasks
are archived and keep it. Running it again on a closed period changes nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := opts.identity()
			if err != nil {
				return err
			}
			periodID, err := uuid.Parse(opts.PeriodID)
			if err != nil {
				return fmt.Errorf("--id: %w", err)
			}
			return runCompletePeriod(cmd, global, id, periodID)
		},
	}

	cmd.Flags().StringVar(&opts.Tenant, "tenant", "", "company domain that owns the period")
	cmd.Flags().StringVar(&opts.PeriodID, "id", "", "period id")
	cmd.Flags().StringVar(&opts.UserID, "user", "", "acting user id (default: a fresh operator id)")
	_ = cmd.MarkFlagRequired("tenant")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func (o *CompletePeriodOptions) identity() (ctxutil.Identity, error) {
	tenant := strings.TrimSpace(o.Tenant)
	if tenant == "" {
		return ctxutil.Identity{}, fmt.Errorf("--tenant must not be empty")
	}
	userID := uuid.New()
	if o.UserID != "" {
		parsed, err := uuid.Parse(o.UserID)
		if err != nil {
			return ctxutil.Identity{}, fmt.Errorf("--user: %w", err)
		}
		userID = parsed
	}
	return ctxutil.Identity{CompanyDomain: tenant, UserID: userID}, nil
}

func runCompletePeriod(cmd *cobra.Command, global *GlobalOptions, id ctxutil.Identity, periodID uuid.UUID) error {
	cfg, err := global.load()
	if err != nil {
		return err
	}
	// Logs go to stderr; stdout carries the result.
	logger := app.NewLogger(cmd.ErrOrStderr(), cfg.Log)

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	periods := periodrepo.New(pool)
	queries := listing.NewService(logger, periods, listing.Calendar{
		Location:     cfg.Calendar.Location,
		FirstWeekday: cfg.Calendar.FirstWeekday,
	}, cfg.List.PageSize)
	svc := period.NewService(logger, periods, taskrepo.New(pool), goalrepo.New(pool), queries, postgres.NewTxManager(pool))

	res, err := svc.CompletePeriod(ctxutil.WithIdentity(ctx, id), periodID)
	if err != nil {
		return fmt.Errorf("complete period: %w", err)
	}

	printf(cmd.OutOrStdout(), "period %s completed: %d tasks unlinked, %d tasks archived\n",
		res.PeriodID, res.Unlinked, res.Archived)
	return nil
}
