// Package objective implements the Objective repository using PostgreSQL.
package objective

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

type row struct {
	ID            uuid.UUID `db:"id"`
	CompanyDomain string    `db:"company_domain"`
	GoalID        uuid.UUID `db:"goal_id"`
	Code          string    `db:"code"`
	Title         string    `db:"title"`
	Status        string    `db:"status"`
	Progress      int       `db:"progress"`
	OwnerID       uuid.UUID `db:"owner_id"`
	CreatedAt     int64     `db:"created_at"`
}

func (r row) toDomain() domain.Objective {
	return domain.Objective{
		ID:            r.ID,
		CompanyDomain: r.CompanyDomain,
		GoalID:        r.GoalID,
		Code:          r.Code,
		Title:         r.Title,
		Status:        domain.TaskStatus(r.Status),
		Progress:      r.Progress,
		OwnerID:       r.OwnerID,
		CreatedAt:     r.CreatedAt,
	}
}

// Repo provides objective persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new objective repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const listByGoalIDsSQL = `
SELECT id, company_domain, goal_id, code, title, status, progress, owner_id, created_at
FROM objectives
WHERE company_domain = $1 AND goal_id = ANY($2::uuid[])
ORDER BY created_at ASC, id ASC`

const insertSQL = `
INSERT INTO objectives (company_domain, goal_id, code, title, status, progress, owner_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, company_domain, goal_id, code, title, status, progress, owner_id, created_at`

const setProgressSQL = `
UPDATE objectives SET status = $3, progress = $4
WHERE company_domain = $1 AND id = $2
RETURNING id, company_domain, goal_id, code, title, status, progress, owner_id, created_at`

// ListByGoalIDs returns the objectives of the given goals (batch for the
// objective loader).
func (r *Repo) ListByGoalIDs(ctx context.Context, tenant string, goalIDs []uuid.UUID) ([]domain.Objective, error) {
	if len(goalIDs) == 0 {
		return []domain.Objective{}, nil
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByGoalIDsSQL, tenant, goalIDs); err != nil {
		return nil, fmt.Errorf("list objectives by goal_ids: %w", err)
	}

	out := make([]domain.Objective, len(rows))
	for i, o := range rows {
		out[i] = o.toDomain()
	}
	return out, nil
}

// Create inserts o. An unknown goal yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, o domain.Objective) (domain.Objective, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, insertSQL,
		o.CompanyDomain, o.GoalID, o.Code, o.Title, string(o.Status), o.Progress, o.OwnerID, o.CreatedAt,
	)
	if err != nil {
		return domain.Objective{}, postgres.MapError(err, "objective", o.GoalID)
	}
	return out.toDomain(), nil
}

// SetProgress overwrites status and progress of an objective.
func (r *Repo) SetProgress(ctx context.Context, tenant string, id uuid.UUID, sp domain.StatusProgress) (domain.Objective, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, setProgressSQL, tenant, id, string(sp.Status), sp.Progress)
	if err != nil {
		return domain.Objective{}, postgres.MapError(err, "objective", id)
	}
	return out.toDomain(), nil
}
