// Package goal implements the Goal repository using PostgreSQL.
package goal

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

const table = "goals"

var selectColumns = []string{
	"id", "company_domain", "code", "title", "status", "priority", "weight", "category_id",
	"owner_id", "period_id", "start_date", "end_date", "archived", "created_at",
}

// Columns is the field mapping used to render list predicates.
var Columns = postgres.Columns{
	domain.FieldID:            "id",
	domain.FieldCompanyDomain: "company_domain",
	domain.FieldCode:          "code",
	domain.FieldTitle:         "title",
	domain.FieldStatus:        "status",
	domain.FieldPriority:      "priority",
	domain.FieldWeight:        "weight",
	domain.FieldCategoryID:    "category_id",
	domain.FieldOwnerID:       "owner_id",
	domain.FieldPeriodID:      "period_id",
	domain.FieldStartDate:     "start_date",
	domain.FieldEndDate:       "end_date",
	domain.FieldArchived:      "archived",
	domain.FieldCreatedAt:     "created_at",
}

type row struct {
	ID            uuid.UUID  `db:"id"`
	CompanyDomain string     `db:"company_domain"`
	Code          string     `db:"code"`
	Title         string     `db:"title"`
	Status        string     `db:"status"`
	Priority      string     `db:"priority"`
	Weight        string     `db:"weight"`
	CategoryID    *uuid.UUID `db:"category_id"`
	OwnerID       uuid.UUID  `db:"owner_id"`
	PeriodID      *uuid.UUID `db:"period_id"`
	StartDate     *int64     `db:"start_date"`
	EndDate       *int64     `db:"end_date"`
	Archived      bool       `db:"archived"`
	CreatedAt     int64      `db:"created_at"`
}

func (r row) toDomain() domain.Goal {
	return domain.Goal{
		ID:            r.ID,
		CompanyDomain: r.CompanyDomain,
		Code:          r.Code,
		Title:         r.Title,
		Status:        domain.TaskStatus(r.Status),
		Priority:      r.Priority,
		Weight:        r.Weight,
		CategoryID:    r.CategoryID,
		OwnerID:       r.OwnerID,
		PeriodID:      r.PeriodID,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Archived:      r.Archived,
		CreatedAt:     r.CreatedAt,
	}
}

// Repo provides goal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new goal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getByIDSQL = `
SELECT id, company_domain, code, title, status, priority, weight, category_id,
       owner_id, period_id, start_date, end_date, archived, created_at
FROM goals
WHERE company_domain = $1 AND id = $2`

const insertSQL = `
INSERT INTO goals (company_domain, code, title, title_normalized, status, priority, weight,
                   category_id, owner_id, period_id, start_date, end_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id, company_domain, code, title, status, priority, weight, category_id,
          owner_id, period_id, start_date, end_date, archived, created_at`

const detachPeriodsSQL = `
UPDATE goals SET period_id = NULL
WHERE company_domain = $1 AND period_id = ANY($2::uuid[])`

const deleteObjectivesSQL = `
DELETE FROM objectives WHERE company_domain = $1 AND goal_id = ANY($2::uuid[])`

const deleteSQL = `
DELETE FROM goals WHERE company_domain = $1 AND id = ANY($2::uuid[])
RETURNING id`

// List returns one page of goals matching pred. Objectives are not joined.
func (r *Repo) List(ctx context.Context, pred domain.Predicate, page domain.Page) (domain.PageResult[domain.Goal], error) {
	where, err := postgres.Where(pred, Columns)
	if err != nil {
		return domain.PageResult[domain.Goal]{}, err
	}

	res, err := postgres.ListPage[row](ctx, r.db, postgres.ListQuery{
		Table:   table,
		Columns: selectColumns,
		Where:   where,
		Page:    page,
	})
	if err != nil {
		return domain.PageResult[domain.Goal]{}, err
	}

	goals := make([]domain.Goal, len(res.Items))
	for i, g := range res.Items {
		goals[i] = g.toDomain()
	}
	return domain.PageResult[domain.Goal]{Items: goals, TotalRowCount: res.TotalRowCount}, nil
}

// GetByID returns a goal of tenant by primary key.
func (r *Repo) GetByID(ctx context.Context, tenant string, id uuid.UUID) (domain.Goal, error) {
	var g row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &g, getByIDSQL, tenant, id); err != nil {
		return domain.Goal{}, postgres.MapError(err, "goal", id)
	}
	return g.toDomain(), nil
}

// Create inserts g. A title already used in the tenant (compared after
// NormalizeText) yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, g domain.Goal) (domain.Goal, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, insertSQL,
		g.CompanyDomain, g.Code, g.Title, domain.NormalizeText(g.Title), string(g.Status), g.Priority, g.Weight,
		g.CategoryID, g.OwnerID, g.PeriodID, g.StartDate, g.EndDate, g.CreatedAt,
	)
	if err != nil {
		return domain.Goal{}, postgres.MapError(err, "goal", g.Title)
	}
	return out.toDomain(), nil
}

// DetachPeriods clears the period link of every goal in the given periods.
func (r *Repo) DetachPeriods(ctx context.Context, tenant string, periodIDs []uuid.UUID) error {
	if len(periodIDs) == 0 {
		return nil
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, detachPeriodsSQL, tenant, periodIDs); err != nil {
		return postgres.MapError(err, "period goals", tenant)
	}
	return nil
}

// DeleteByIDs deletes the objectives of ids and then ids themselves, and
// returns the ids that existed. Run it in a transaction.
func (r *Repo) DeleteByIDs(ctx context.Context, tenant string, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	if _, err := q.Exec(ctx, deleteObjectivesSQL, tenant, ids); err != nil {
		return nil, postgres.MapError(err, "objectives", tenant)
	}

	return postgres.CollectIDs(ctx, q, deleteSQL, tenant, ids)
}
