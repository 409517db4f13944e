package challenge

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

type challengeRepo interface {
	List(ctx context.Context, pred domain.Predicate, page domain.Page) (domain.PageResult[domain.Challenge], error)
	Create(ctx context.Context, ch domain.Challenge) (domain.Challenge, error)
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

// Service provides the challenge register.
type Service struct {
	challenges challengeRepo
	codes      codeMinter
	queries    queryPreparer
	tx         txManager
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a new challenge service.
func NewService(log *slog.Logger, challenges challengeRepo, codes codeMinter, queries queryPreparer, tx txManager) *Service {
	return &Service{
		challenges: challenges,
		codes:      codes,
		queries:    queries,
		tx:         tx,
		now:        time.Now,
		log:        log.With("service", "challenge"),
	}
}

// CreateChallengeInput holds the parameters for registering a challenge.
type CreateChallengeInput struct {
	Title       string
	Status      domain.TaskStatus
	Priority    string
	OwnerID     *uuid.UUID
	GoalID      *uuid.UUID
	ObjectiveID *uuid.UUID
	TaskID      *uuid.UUID
	CategoryID  *uuid.UUID
	StartDate   *int64
	EndDate     *int64
}

// Validate checks all fields and collects all errors.
func (i CreateChallengeInput) Validate() error {
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

// List returns one page of challenges.
func (s *Service) List(ctx context.Context, raw listing.RawParams) (domain.PageResult[domain.Challenge], error) {
	q, err := s.queries.Prepare(ctx, domain.KindChallenge, raw)
	if err != nil {
		return domain.PageResult[domain.Challenge]{}, err
	}

	page, err := s.challenges.List(ctx, q.Predicate, q.Page)
	if err != nil {
		return domain.PageResult[domain.Challenge]{}, fmt.Errorf("list challenges: %w", err)
	}
	return page, nil
}

// CreateChallenge mints a code and stores a new challenge.
func (s *Service) CreateChallenge(ctx context.Context, input CreateChallengeInput) (domain.Challenge, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.Challenge{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Challenge{}, err
	}

	ch := domain.Challenge{
		CompanyDomain: id.CompanyDomain,
		Title:         strings.TrimSpace(input.Title),
		Status:        input.Status,
		Priority:      strings.TrimSpace(input.Priority),
		OwnerID:       id.UserID,
		GoalID:        input.GoalID,
		ObjectiveID:   input.ObjectiveID,
		TaskID:        input.TaskID,
		CategoryID:    input.CategoryID,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		CreatedAt:     s.now().UnixMilli(),
	}
	if ch.Status == "" {
		ch.Status = domain.StatusNotStarted
	}
	if input.OwnerID != nil {
		ch.OwnerID = *input.OwnerID
	}

	var created domain.Challenge
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		code, err := s.codes.Next(txCtx, id.CompanyDomain, domain.KindChallenge)
		if err != nil {
			return fmt.Errorf("mint challenge code: %w", err)
		}
		ch.Code = code

		created, err = s.challenges.Create(txCtx, ch)
		if err != nil {
			return fmt.Errorf("create challenge: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Challenge{}, err
	}

	s.log.InfoContext(ctx, "challenge created",
		slog.String("company_domain", id.CompanyDomain),
		slog.String("challenge_id", created.ID.String()),
		slog.String("code", created.Code),
	)
	return created, nil
}

// BulkDelete hard-deletes challenges by id.
func (s *Service) BulkDelete(ctx context.Context, ids []string) (domain.DeleteSummary, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.DeleteSummary{}, domain.ErrUnauthorized
	}

	return bulk.Delete(ctx, s.tx, ids, func(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
		return s.challenges.DeleteByIDs(ctx, id.CompanyDomain, ids)
	})
}
