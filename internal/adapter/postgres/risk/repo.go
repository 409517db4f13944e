// Package risk implements the Risk register repository using PostgreSQL.
package risk

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

const table = "risks"

var selectColumns = []string{
	"id", "company_domain", "code", "title", "status", "criticality", "owner_id",
	"goal_id", "objective_id", "task_id", "category_id", "start_date", "end_date", "created_at",
}

// Columns is the field mapping used to render list predicates.
var Columns = postgres.Columns{
	domain.FieldID:            "id",
	domain.FieldCompanyDomain: "company_domain",
	domain.FieldCode:          "code",
	domain.FieldTitle:         "title",
	domain.FieldStatus:        "status",
	domain.FieldCriticality:   "criticality",
	domain.FieldOwnerID:       "owner_id",
	domain.FieldGoalID:        "goal_id",
	domain.FieldObjectiveID:   "objective_id",
	domain.FieldTaskID:        "task_id",
	domain.FieldCategoryID:    "category_id",
	domain.FieldStartDate:     "start_date",
	domain.FieldEndDate:       "end_date",
	domain.FieldCreatedAt:     "created_at",
}

type row struct {
	ID            uuid.UUID  `db:"id"`
	CompanyDomain string     `db:"company_domain"`
	Code          string     `db:"code"`
	Title         string     `db:"title"`
	Status        string     `db:"status"`
	Criticality   string     `db:"criticality"`
	OwnerID       uuid.UUID  `db:"owner_id"`
	GoalID        *uuid.UUID `db:"goal_id"`
	ObjectiveID   *uuid.UUID `db:"objective_id"`
	TaskID        *uuid.UUID `db:"task_id"`
	CategoryID    *uuid.UUID `db:"category_id"`
	StartDate     *int64     `db:"start_date"`
	EndDate       *int64     `db:"end_date"`
	CreatedAt     int64      `db:"created_at"`
}

func (r row) toDomain() domain.Risk {
	return domain.Risk{
		ID:            r.ID,
		CompanyDomain: r.CompanyDomain,
		Code:          r.Code,
		Title:         r.Title,
		Status:        domain.TaskStatus(r.Status),
		Criticality:   r.Criticality,
		OwnerID:       r.OwnerID,
		GoalID:        r.GoalID,
		ObjectiveID:   r.ObjectiveID,
		TaskID:        r.TaskID,
		CategoryID:    r.CategoryID,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		CreatedAt:     r.CreatedAt,
	}
}

// Repo provides risk persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new risk repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const insertSQL = `
INSERT INTO risks (company_domain, code, title, status, criticality, owner_id,
                   goal_id, objective_id, task_id, category_id, start_date, end_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id, company_domain, code, title, status, criticality, owner_id,
          goal_id, objective_id, task_id, category_id, start_date, end_date, created_at`

const deleteSQL = `
DELETE FROM risks WHERE company_domain = $1 AND id = ANY($2::uuid[])
RETURNING id`

// List returns one page of risks matching pred.
func (r *Repo) List(ctx context.Context, pred domain.Predicate, page domain.Page) (domain.PageResult[domain.Risk], error) {
	where, err := postgres.Where(pred, Columns)
	if err != nil {
		return domain.PageResult[domain.Risk]{}, err
	}

	res, err := postgres.ListPage[row](ctx, r.db, postgres.ListQuery{
		Table:   table,
		Columns: selectColumns,
		Where:   where,
		Page:    page,
	})
	if err != nil {
		return domain.PageResult[domain.Risk]{}, err
	}

	risks := make([]domain.Risk, len(res.Items))
	for i, it := range res.Items {
		risks[i] = it.toDomain()
	}
	return domain.PageResult[domain.Risk]{Items: risks, TotalRowCount: res.TotalRowCount}, nil
}

// Create inserts rk and returns the stored risk.
func (r *Repo) Create(ctx context.Context, rk domain.Risk) (domain.Risk, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, insertSQL,
		rk.CompanyDomain, rk.Code, rk.Title, string(rk.Status), rk.Criticality, rk.OwnerID,
		rk.GoalID, rk.ObjectiveID, rk.TaskID, rk.CategoryID, rk.StartDate, rk.EndDate, rk.CreatedAt,
	)
	if err != nil {
		return domain.Risk{}, postgres.MapError(err, "risk", rk.Code)
	}
	return out.toDomain(), nil
}

// DeleteByIDs hard-deletes ids and returns the ones that existed.
func (r *Repo) DeleteByIDs(ctx context.Context, tenant string, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}
	return postgres.CollectIDs(ctx, postgres.QuerierFromCtx(ctx, r.db), deleteSQL, tenant, ids)
}
