package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/compose"
	"github.com/heartmarshall/taskboard-backend/internal/service/listing"
)

// List returns one page of top-level tasks with their subtasks attached.
func (s *Service) List(ctx context.Context, raw listing.RawParams) (domain.PageResult[domain.Task], error) {
	q, err := s.queries.Prepare(ctx, domain.KindTask, raw)
	if err != nil {
		return domain.PageResult[domain.Task]{}, err
	}

	page, err := s.tasks.List(ctx, q.Predicate, q.Page)
	if err != nil {
		return domain.PageResult[domain.Task]{}, fmt.Errorf("list tasks: %w", err)
	}

	err = compose.Attach(ctx, page.Items, compose.Relation[domain.Task, domain.Task]{
		ParentKey: func(t domain.Task) uuid.UUID { return t.ID },
		ChildKey:  func(t domain.Task) uuid.UUID { return *t.ParentID },
		Fetch: func(ctx context.Context, keys []uuid.UUID) ([]domain.Task, error) {
			return s.tasks.ListByParentIDs(ctx, q.Tenant, keys)
		},
		Set: func(t *domain.Task, subtasks []domain.Task) { t.Subtasks = subtasks },
	})
	if err != nil {
		return domain.PageResult[domain.Task]{}, fmt.Errorf("attach subtasks: %w", err)
	}

	return page, nil
}
