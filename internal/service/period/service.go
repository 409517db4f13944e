package period

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/bulk"
	"github.com/heartmarshall/taskboard-backend/internal/service/listing"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

type periodRepo interface {
	List(ctx context.Context, pred domain.Predicate, page domain.Page) (domain.PageResult[domain.Period], error)
	GetByID(ctx context.Context, tenant string, id uuid.UUID) (domain.Period, error)
	Create(ctx context.Context, p domain.Period) (domain.Period, error)
	MarkCompleted(ctx context.Context, tenant string, id uuid.UUID) (domain.Period, error)
	DeleteByIDs(ctx context.Context, tenant string, ids []uuid.UUID) ([]uuid.UUID, error)
}

type taskRepo interface {
	UnlinkOpenInPeriod(ctx context.Context, tenant string, periodID uuid.UUID) (int64, error)
	ArchiveCompletedInPeriod(ctx context.Context, tenant string, periodID uuid.UUID) (int64, error)
	DetachPeriods(ctx context.Context, tenant string, periodIDs []uuid.UUID) error
}

type goalRepo interface {
	DetachPeriods(ctx context.Context, tenant string, periodIDs []uuid.UUID) error
}

type queryPreparer interface {
	Prepare(ctx context.Context, kind domain.EntityKind, raw listing.RawParams) (listing.Query, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages planning periods.
type Service struct {
	periods periodRepo
	tasks   taskRepo
	goals   goalRepo
	queries queryPreparer
	tx      txManager
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a new period service.
func NewService(
	log *slog.Logger,
	periods periodRepo,
	tasks taskRepo,
	goals goalRepo,
	queries queryPreparer,
	tx txManager,
) *Service {
	return &Service{
		periods: periods,
		tasks:   tasks,
		goals:   goals,
		queries: queries,
		tx:      tx,
		now:     time.Now,
		log:     log.With("service", "period"),
	}
}

// CreatePeriodInput holds the parameters for creating a period.
type CreatePeriodInput struct {
	Name      string
	StartDate int64
	EndDate   int64
}

// Validate checks all fields and collects all errors.
func (i CreatePeriodInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if i.StartDate <= 0 {
		errs = append(errs, domain.FieldError{Field: "startDate", Message: "required"})
	}
	if i.EndDate < i.StartDate {
		errs = append(errs, domain.FieldError{Field: "endDate", Message: "must not be before startDate"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// List returns one page of periods.
func (s *Service) List(ctx context.Context, raw listing.RawParams) (domain.PageResult[domain.Period], error) {
	q, err := s.queries.Prepare(ctx, domain.KindPeriod, raw)
	if err != nil {
		return domain.PageResult[domain.Period]{}, err
	}

	page, err := s.periods.List(ctx, q.Predicate, q.Page)
	if err != nil {
		return domain.PageResult[domain.Period]{}, fmt.Errorf("list periods: %w", err)
	}
	return page, nil
}

// CreatePeriod stores a new period. A name already used in the tenant fails
// with domain.ErrAlreadyExists.
func (s *Service) CreatePeriod(ctx context.Context, input CreatePeriodInput) (domain.Period, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.Period{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Period{}, err
	}

	created, err := s.periods.Create(ctx, domain.Period{
		CompanyDomain: id.CompanyDomain,
		Name:          strings.TrimSpace(input.Name),
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		CreatedAt:     s.now().UnixMilli(),
	})
	if err != nil {
		return domain.Period{}, fmt.Errorf("create period: %w", err)
	}

	s.log.InfoContext(ctx, "period created",
		slog.String("company_domain", id.CompanyDomain),
		slog.String("period_id", created.ID.String()),
	)
	return created, nil
}

// CompletePeriod closes a period in one transaction: open tasks go back to
// the backlog, completed tasks are archived and the period is marked
// completed. Running it again on a completed period changes nothing.
func (s *Service) CompletePeriod(ctx context.Context, periodID uuid.UUID) (domain.PeriodCompletion, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.PeriodCompletion{}, domain.ErrUnauthorized
	}

	res := domain.PeriodCompletion{PeriodID: periodID}
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.periods.GetByID(txCtx, id.CompanyDomain, periodID); err != nil {
			return fmt.Errorf("get period: %w", err)
		}

		unlinked, err := s.tasks.UnlinkOpenInPeriod(txCtx, id.CompanyDomain, periodID)
		if err != nil {
			return fmt.Errorf("unlink open tasks: %w", err)
		}
		archived, err := s.tasks.ArchiveCompletedInPeriod(txCtx, id.CompanyDomain, periodID)
		if err != nil {
			return fmt.Errorf("archive completed tasks: %w", err)
		}
		if _, err := s.periods.MarkCompleted(txCtx, id.CompanyDomain, periodID); err != nil {
			return fmt.Errorf("mark period completed: %w", err)
		}

		res.Unlinked = int(unlinked)
		res.Archived = int(archived)
		return nil
	})
	if err != nil {
		return domain.PeriodCompletion{}, err
	}

	s.log.InfoContext(ctx, "period completed",
		slog.String("company_domain", id.CompanyDomain),
		slog.String("period_id", periodID.String()),
		slog.Int("unlinked", res.Unlinked),
		slog.Int("archived", res.Archived),
	)
	return res, nil
}

// BulkDelete detaches tasks and goals from the periods and then deletes
// the periods.
func (s *Service) BulkDelete(ctx context.Context, ids []string) (domain.DeleteSummary, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.DeleteSummary{}, domain.ErrUnauthorized
	}

	return bulk.Delete(ctx, s.tx, ids, func(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
		if err := s.tasks.DetachPeriods(ctx, id.CompanyDomain, ids); err != nil {
			return nil, fmt.Errorf("detach tasks: %w", err)
		}
		if err := s.goals.DetachPeriods(ctx, id.CompanyDomain, ids); err != nil {
			return nil, fmt.Errorf("detach goals: %w", err)
		}
		return s.periods.DeleteByIDs(ctx, id.CompanyDomain, ids)
	})
}
