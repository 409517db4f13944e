package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/listing"
)

type taskRepo interface {
	List(ctx context.Context, pred domain.Predicate, page domain.Page) (domain.PageResult[domain.Task], error)
	GetByID(ctx context.Context, tenant string, id uuid.UUID) (domain.Task, error)
	ListByParentIDs(ctx context.Context, tenant string, parentIDs []uuid.UUID) ([]domain.Task, error)
	SubtaskStates(ctx context.Context, tenant string, parentID uuid.UUID) ([]domain.StatusProgress, error)
	ObjectiveStates(ctx context.Context, tenant string, objectiveID uuid.UUID) ([]domain.StatusProgress, error)
	Create(ctx context.Context, t domain.Task) (domain.Task, error)
	Update(ctx context.Context, tenant string, id uuid.UUID, p domain.TaskUpdateParams) (domain.Task, error)
	SetProgress(ctx context.Context, tenant string, id uuid.UUID, sp domain.StatusProgress) (domain.Task, error)
	DeleteByIDs(ctx context.Context, tenant string, ids []uuid.UUID) ([]uuid.UUID, error)
}

type objectiveRepo interface {
	SetProgress(ctx context.Context, tenant string, id uuid.UUID, sp domain.StatusProgress) (domain.Objective, error)
}

type codeMinter interface {
	Next(ctx context.Context, tenant string, kind domain.EntityKind) (string, error)
}

type queryPreparer interface {
	Prepare(ctx context.Context, kind domain.EntityKind, raw listing.RawParams) (listing.Query, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInSavepoint(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides task listing, creation, updates with status propagation
// and bulk deletion.
type Service struct {
	tasks      taskRepo
	objectives objectiveRepo
	codes      codeMinter
	queries    queryPreparer
	tx         txManager
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a new task service.
func NewService(
	log *slog.Logger,
	tasks taskRepo,
	objectives objectiveRepo,
	codes codeMinter,
	queries queryPreparer,
	tx txManager,
) *Service {
	return &Service{
		tasks:      tasks,
		objectives: objectives,
		codes:      codes,
		queries:    queries,
		tx:         tx,
		now:        time.Now,
		log:        log.With("service", "task"),
	}
}
