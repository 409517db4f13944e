package goal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/listing"
)

type goalRepo interface {
	List(ctx context.Context, pred domain.Predicate, page domain.Page) (domain.PageResult[domain.Goal], error)
	GetByID(ctx context.Context, tenant string, id uuid.UUID) (domain.Goal, error)
	Create(ctx context.Context, g domain.Goal) (domain.Goal, error)
	DeleteByIDs(ctx context.Context, tenant string, ids []uuid.UUID) ([]uuid.UUID, error)
}

type objectiveRepo interface {
	ListByGoalIDs(ctx context.Context, tenant string, goalIDs []uuid.UUID) ([]domain.Objective, error)
	Create(ctx context.Context, o domain.Objective) (domain.Objective, error)
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

// Service provides goal and objective operations.
type Service struct {
	goals      goalRepo
	objectives objectiveRepo
	codes      codeMinter
	queries    queryPreparer
	tx         txManager
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a new goal service.
func NewService(
	log *slog.Logger,
	goals goalRepo,
	objectives objectiveRepo,
	codes codeMinter,
	queries queryPreparer,
	tx txManager,
) *Service {
	return &Service{
		goals:      goals,
		objectives: objectives,
		codes:      codes,
		queries:    queries,
		tx:         tx,
		now:        time.Now,
		log:        log.With("service", "goal"),
	}
}
