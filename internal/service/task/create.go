package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

// CreateTask mints a code and stores a new task owned and reported by the
// caller unless another owner is given. A subtask recomputes its parent.
func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (domain.Task, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.Task{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Task{}, err
	}

	t := domain.Task{
		CompanyDomain: id.CompanyDomain,
		Title:         strings.TrimSpace(input.Title),
		Description:   trimOrNil(input.Description),
		Status:        input.Status,
		Progress:      input.Progress,
		Priority:      strings.TrimSpace(input.Priority),
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		OwnerID:       id.UserID,
		ReporterID:    id.UserID,
		TeamID:        input.TeamID,
		Collaborators: input.Collaborators,
		PeriodID:      input.PeriodID,
		GoalID:        input.GoalID,
		ObjectiveID:   input.ObjectiveID,
		ParentID:      input.ParentID,
		IsSubtask:     input.ParentID != nil,
		CreatedAt:     s.now().UnixMilli(),
	}
	if t.Status == "" {
		t.Status = domain.StatusNotStarted
	}
	if input.OwnerID != nil {
		t.OwnerID = *input.OwnerID
	}

	var created domain.Task
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if t.ParentID != nil {
			parent, err := s.tasks.GetByID(txCtx, id.CompanyDomain, *t.ParentID)
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("parentId", "parent task not found")
			}
			if err != nil {
				return fmt.Errorf("get parent task: %w", err)
			}
			if parent.IsSubtask {
				return domain.NewValidationError("parentId", "parent must be a top-level task")
			}
		}

		code, err := s.codes.Next(txCtx, id.CompanyDomain, domain.KindTask)
		if err != nil {
			return fmt.Errorf("mint task code: %w", err)
		}
		t.Code = code

		created, err = s.tasks.Create(txCtx, t)
		if err != nil {
			return fmt.Errorf("create task: %w", err)
		}

		if created.ParentID != nil {
			if _, err := s.propagate(txCtx, id.CompanyDomain, *created.ParentID, nil, nil); err != nil {
				return err
			}
		} else if created.ObjectiveID != nil {
			s.recomputeObjective(txCtx, id.CompanyDomain, *created.ObjectiveID)
		}
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("company_domain", id.CompanyDomain),
		slog.String("task_id", created.ID.String()),
		slog.String("code", created.Code),
	)

	return created, nil
}
