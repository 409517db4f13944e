package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

// UpdateResult is the outcome of UpdateTask. ParentErr is set when the task
// is a subtask whose parent could not be updated; the task write is kept.
type UpdateResult struct {
	Task      domain.Task
	Parent    *domain.Task
	ParentErr error
}

// UpdateTask applies a partial update and cascades status and progress to
// the parent task and to the objective the parent (or the task itself)
// belongs to.
func (s *Service) UpdateTask(ctx context.Context, input UpdateTaskInput) (UpdateResult, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return UpdateResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return UpdateResult{}, err
	}

	var res UpdateResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		updated, err := s.tasks.Update(txCtx, id.CompanyDomain, input.TaskID, input.Changes)
		if err != nil {
			return fmt.Errorf("update task: %w", err)
		}
		res.Task = updated

		if updated.IsSubtask && updated.ParentID != nil {
			parent, err := s.propagate(txCtx, id.CompanyDomain, *updated.ParentID, input.ParentStatus, input.ParentProgress)
			switch {
			case errors.Is(err, domain.ErrNotFound):
				res.ParentErr = err
			case err != nil:
				return err
			default:
				res.Parent = &parent
			}
			return nil
		}

		if updated.ObjectiveID != nil {
			s.recomputeObjective(txCtx, id.CompanyDomain, *updated.ObjectiveID)
		}
		return nil
	})
	if err != nil {
		return UpdateResult{}, err
	}

	if res.ParentErr != nil {
		s.log.WarnContext(ctx, "subtask updated without parent",
			slog.String("task_id", res.Task.ID.String()),
			slog.String("error", res.ParentErr.Error()),
		)
	}

	return res, nil
}

// propagate writes status and progress to the parent task. Values not
// supplied are derived from the parent's subtasks. The parent's objective is
// recomputed afterwards.
func (s *Service) propagate(ctx context.Context, tenant string, parentID uuid.UUID, status *domain.TaskStatus, progress *int) (domain.Task, error) {
	var sp domain.StatusProgress
	if status == nil || progress == nil {
		states, err := s.tasks.SubtaskStates(ctx, tenant, parentID)
		if err != nil {
			return domain.Task{}, fmt.Errorf("load subtask states: %w", err)
		}
		sp = domain.Derive(states)
	}
	if status != nil {
		sp.Status = *status
	}
	if progress != nil {
		sp.Progress = *progress
	}

	parent, err := s.tasks.SetProgress(ctx, tenant, parentID, sp)
	if err != nil {
		return domain.Task{}, fmt.Errorf("update parent task: %w", err)
	}

	if parent.ObjectiveID != nil {
		s.recomputeObjective(ctx, tenant, *parent.ObjectiveID)
	}
	return parent, nil
}

// recomputeObjective derives an objective's state from its top-level tasks.
// It runs in a savepoint: failures are logged and roll back only the
// objective write, so the task write they follow is kept.
func (s *Service) recomputeObjective(ctx context.Context, tenant string, objectiveID uuid.UUID) {
	err := s.tx.RunInSavepoint(ctx, func(ctx context.Context) error {
		states, err := s.tasks.ObjectiveStates(ctx, tenant, objectiveID)
		if err != nil {
			return err
		}
		_, err = s.objectives.SetProgress(ctx, tenant, objectiveID, domain.Derive(states))
		return err
	})
	if err != nil {
		s.log.WarnContext(ctx, "objective recompute failed",
			slog.String("objective_id", objectiveID.String()),
			slog.String("error", err.Error()),
		)
	}
}
