package goal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/bulk"
	"github.com/heartmarshall/taskboard-backend/internal/service/compose"
	"github.com/heartmarshall/taskboard-backend/internal/service/listing"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

// List returns one page of goals with their objectives attached.
func (s *Service) List(ctx context.Context, raw listing.RawParams) (domain.PageResult[domain.Goal], error) {
	q, err := s.queries.Prepare(ctx, domain.KindGoal, raw)
	if err != nil {
		return domain.PageResult[domain.Goal]{}, err
	}

	page, err := s.goals.List(ctx, q.Predicate, q.Page)
	if err != nil {
		return domain.PageResult[domain.Goal]{}, fmt.Errorf("list goals: %w", err)
	}

	err = compose.Attach(ctx, page.Items, compose.Relation[domain.Goal, domain.Objective]{
		ParentKey: func(g domain.Goal) uuid.UUID { return g.ID },
		ChildKey:  func(o domain.Objective) uuid.UUID { return o.GoalID },
		Fetch: func(ctx context.Context, keys []uuid.UUID) ([]domain.Objective, error) {
			return s.objectives.ListByGoalIDs(ctx, q.Tenant, keys)
		},
		Set: func(g *domain.Goal, objectives []domain.Objective) { g.Objectives = objectives },
	})
	if err != nil {
		return domain.PageResult[domain.Goal]{}, fmt.Errorf("attach objectives: %w", err)
	}

	return page, nil
}

// CreateGoal mints a code and stores a new goal. A title that collides with
// another goal of the tenant after normalization fails with
// domain.ErrAlreadyExists.
func (s *Service) CreateGoal(ctx context.Context, input CreateGoalInput) (domain.Goal, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.Goal{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Goal{}, err
	}

	g := domain.Goal{
		CompanyDomain: id.CompanyDomain,
		Title:         strings.TrimSpace(input.Title),
		Status:        input.Status,
		Priority:      strings.TrimSpace(input.Priority),
		Weight:        strings.TrimSpace(input.Weight),
		CategoryID:    input.CategoryID,
		OwnerID:       id.UserID,
		PeriodID:      input.PeriodID,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		CreatedAt:     s.now().UnixMilli(),
	}
	if g.Status == "" {
		g.Status = domain.StatusNotStarted
	}
	if input.OwnerID != nil {
		g.OwnerID = *input.OwnerID
	}

	var created domain.Goal
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		code, err := s.codes.Next(txCtx, id.CompanyDomain, domain.KindGoal)
		if err != nil {
			return fmt.Errorf("mint goal code: %w", err)
		}
		g.Code = code

		created, err = s.goals.Create(txCtx, g)
		if err != nil {
			return fmt.Errorf("create goal: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Goal{}, err
	}
	created.Objectives = []domain.Objective{}

	s.log.InfoContext(ctx, "goal created",
		slog.String("company_domain", id.CompanyDomain),
		slog.String("goal_id", created.ID.String()),
		slog.String("code", created.Code),
	)

	return created, nil
}

// CreateObjective adds an objective to a goal of the caller's tenant.
func (s *Service) CreateObjective(ctx context.Context, input CreateObjectiveInput) (domain.Objective, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.Objective{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Objective{}, err
	}

	o := domain.Objective{
		CompanyDomain: id.CompanyDomain,
		GoalID:        input.GoalID,
		Title:         strings.TrimSpace(input.Title),
		Status:        domain.StatusNotStarted,
		OwnerID:       id.UserID,
		CreatedAt:     s.now().UnixMilli(),
	}
	if input.OwnerID != nil {
		o.OwnerID = *input.OwnerID
	}

	var created domain.Objective
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// The goal FK alone does not check the tenant.
		if _, err := s.goals.GetByID(txCtx, id.CompanyDomain, input.GoalID); err != nil {
			return fmt.Errorf("get goal: %w", err)
		}

		code, err := s.codes.Next(txCtx, id.CompanyDomain, domain.KindObjective)
		if err != nil {
			return fmt.Errorf("mint objective code: %w", err)
		}
		o.Code = code

		created, err = s.objectives.Create(txCtx, o)
		if err != nil {
			return fmt.Errorf("create objective: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Objective{}, err
	}

	s.log.InfoContext(ctx, "objective created",
		slog.String("company_domain", id.CompanyDomain),
		slog.String("goal_id", input.GoalID.String()),
		slog.String("objective_id", created.ID.String()),
	)

	return created, nil
}

// BulkDelete removes goals and their objectives by id.
func (s *Service) BulkDelete(ctx context.Context, ids []string) (domain.DeleteSummary, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.DeleteSummary{}, domain.ErrUnauthorized
	}

	summary, err := bulk.Delete(ctx, s.tx, ids, func(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
		return s.goals.DeleteByIDs(ctx, id.CompanyDomain, ids)
	})
	if err != nil {
		return domain.DeleteSummary{}, err
	}

	s.log.InfoContext(ctx, "goals deleted",
		slog.String("company_domain", id.CompanyDomain),
		slog.Int("deleted", summary.Deleted),
		slog.Int("not_found", summary.NotFound),
	)
	return summary, nil
}
