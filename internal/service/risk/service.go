package risk

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

type riskRepo interface {
	List(ctx context.Context, pred domain.Predicate, page domain.Page) (domain.PageResult[domain.Risk], error)
	Create(ctx context.Context, rk domain.Risk) (domain.Risk, error)
	DeleteByIDs(ctx context.Context, tenant string, ids []uuid.UUID) ([]uuid.UUID, error)
}

type codeMinter interface {
	Next(ctx context.Context, tenant string, kind domain.EntityKind) (string, error)
}

type queryPreparer interface {
	Prepare(ctx context.Context, kind domain.EntityKind, raw listing.RawParams) (listing.Query, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides the risk register.
type Service struct {
	risks   riskRepo
	codes   codeMinter
	queries queryPreparer
	tx      txManager
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a new risk service.
func NewService(log *slog.Logger, risks riskRepo, codes codeMinter, queries queryPreparer, tx txManager) *Service {
	return &Service{
		risks:   risks,
		codes:   codes,
		queries: queries,
		tx:      tx,
		now:     time.Now,
		log:     log.With("service", "risk"),
	}
}

// CreateRiskInput holds the parameters for registering a risk.
type CreateRiskInput struct {
	Title       string
	Status      domain.TaskStatus
	Criticality string
	OwnerID     *uuid.UUID
	GoalID      *uuid.UUID
	ObjectiveID *uuid.UUID
	TaskID      *uuid.UUID
	CategoryID  *uuid.UUID
	StartDate   *int64
	EndDate     *int64
}

// Validate checks all fields and collects all errors.
func (i CreateRiskInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.StartDate != nil && i.EndDate != nil && *i.EndDate < *i.StartDate {
		errs = append(errs, domain.FieldError{Field: "endDate", Message: "must not be before startDate"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// List returns one page of risks.
func (s *Service) List(ctx context.Context, raw listing.RawParams) (domain.PageResult[domain.Risk], error) {
	q, err := s.queries.Prepare(ctx, domain.KindRisk, raw)
	if err != nil {
		return domain.PageResult[domain.Risk]{}, err
	}

	page, err := s.risks.List(ctx, q.Predicate, q.Page)
	if err != nil {
		return domain.PageResult[domain.Risk]{}, fmt.Errorf("list risks: %w", err)
	}
	return page, nil
}

// CreateRisk mints a code and stores a new risk.
func (s *Service) CreateRisk(ctx context.Context, input CreateRiskInput) (domain.Risk, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.Risk{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Risk{}, err
	}

	rk := domain.Risk{
		CompanyDomain: id.CompanyDomain,
		Title:         strings.TrimSpace(input.Title),
		Status:        input.Status,
		Criticality:   strings.TrimSpace(input.Criticality),
		OwnerID:       id.UserID,
		GoalID:        input.GoalID,
		ObjectiveID:   input.ObjectiveID,
		TaskID:        input.TaskID,
		CategoryID:    input.CategoryID,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		CreatedAt:     s.now().UnixMilli(),
	}
	if rk.Status == "" {
		rk.Status = domain.StatusNotStarted
	}
	if input.OwnerID != nil {
		rk.OwnerID = *input.OwnerID
	}

	var created domain.Risk
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		code, err := s.codes.Next(txCtx, id.CompanyDomain, domain.KindRisk)
		if err != nil {
			return fmt.Errorf("mint risk code: %w", err)
		}
		rk.Code = code

		created, err = s.risks.Create(txCtx, rk)
		if err != nil {
			return fmt.Errorf("create risk: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Risk{}, err
	}

	s.log.InfoContext(ctx, "risk created",
		slog.String("company_domain", id.CompanyDomain),
		slog.String("risk_id", created.ID.String()),
		slog.String("code", created.Code),
	)
	return created, nil
}

// BulkDelete hard-deletes risks by id.
func (s *Service) BulkDelete(ctx context.Context, ids []string) (domain.DeleteSummary, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.DeleteSummary{}, domain.ErrUnauthorized
	}

	return bulk.Delete(ctx, s.tx, ids, func(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
		return s.risks.DeleteByIDs(ctx, id.CompanyDomain, ids)
	})
}
