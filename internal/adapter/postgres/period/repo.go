// Package period implements the Period repository using PostgreSQL.
package period

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

const table = "periods"

var selectColumns = []string{"id", "company_domain", "name", "start_date", "end_date", "completed", "created_at"}

// Columns is the field mapping used to render list predicates.
var Columns = postgres.Columns{
	domain.FieldID:            "id",
	domain.FieldCompanyDomain: "company_domain",
	domain.FieldTitle:         "name",
	domain.FieldStartDate:     "start_date",
	domain.FieldEndDate:       "end_date",
	domain.FieldCreatedAt:     "created_at",
}

type row struct {
	ID            uuid.UUID `db:"id"`
	CompanyDomain string    `db:"company_domain"`
	Name          string    `db:"name"`
	StartDate     int64     `db:"start_date"`
	EndDate       int64     `db:"end_date"`
	Completed     bool      `db:"completed"`
	CreatedAt     int64     `db:"created_at"`
}

func (r row) toDomain() domain.Period {
	return domain.Period{
		ID:            r.ID,
		CompanyDomain: r.CompanyDomain,
		Name:          r.Name,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Completed:     r.Completed,
		CreatedAt:     r.CreatedAt,
	}
}

// Repo provides period persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new period repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getByIDSQL = `
SELECT id, company_domain, name, start_date, end_date, completed, created_at
FROM periods
WHERE company_domain = $1 AND id = $2`

// When periods overlap the one that started last wins.
const currentSQL = `
SELECT id, company_domain, name, start_date, end_date, completed, created_at
FROM periods
WHERE company_domain = $1 AND completed = false AND start_date <= $2 AND end_date >= $2
ORDER BY start_date DESC, id DESC
LIMIT 1`

const insertSQL = `
INSERT INTO periods (company_domain, name, name_normalized, start_date, end_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, company_domain, name, start_date, end_date, completed, created_at`

const markCompletedSQL = `
UPDATE periods SET completed = true
WHERE company_domain = $1 AND id = $2
RETURNING id, company_domain, name, start_date, end_date, completed, created_at`

const deleteSQL = `
DELETE FROM periods WHERE company_domain = $1 AND id = ANY($2::uuid[])
RETURNING id`

// List returns one page of periods matching pred.
func (r *Repo) List(ctx context.Context, pred domain.Predicate, page domain.Page) (domain.PageResult[domain.Period], error) {
	where, err := postgres.Where(pred, Columns)
	if err != nil {
		return domain.PageResult[domain.Period]{}, err
	}

	res, err := postgres.ListPage[row](ctx, r.db, postgres.ListQuery{
		Table:   table,
		Columns: selectColumns,
		Where:   where,
		Page:    page,
	})
	if err != nil {
		return domain.PageResult[domain.Period]{}, err
	}

	periods := make([]domain.Period, len(res.Items))
	for i, p := range res.Items {
		periods[i] = p.toDomain()
	}
	return domain.PageResult[domain.Period]{Items: periods, TotalRowCount: res.TotalRowCount}, nil
}

// GetByID returns a period of tenant by primary key.
func (r *Repo) GetByID(ctx context.Context, tenant string, id uuid.UUID) (domain.Period, error) {
	var p row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &p, getByIDSQL, tenant, id); err != nil {
		return domain.Period{}, postgres.MapError(err, "period", id)
	}
	return p.toDomain(), nil
}

// Current returns the open period containing nowMillis, or
// domain.ErrNotFound when there is none.
func (r *Repo) Current(ctx context.Context, tenant string, nowMillis int64) (domain.Period, error) {
	var p row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &p, currentSQL, tenant, nowMillis); err != nil {
		return domain.Period{}, postgres.MapError(err, "current period", tenant)
	}
	return p.toDomain(), nil
}

// Create inserts p. A name already used in the tenant yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p domain.Period) (domain.Period, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, insertSQL,
		p.CompanyDomain, p.Name, domain.NormalizeText(p.Name), p.StartDate, p.EndDate, p.CreatedAt,
	)
	if err != nil {
		return domain.Period{}, postgres.MapError(err, "period", p.Name)
	}
	return out.toDomain(), nil
}

// MarkCompleted flags the period as completed and returns it.
func (r *Repo) MarkCompleted(ctx context.Context, tenant string, id uuid.UUID) (domain.Period, error) {
	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, markCompletedSQL, tenant, id); err != nil {
		return domain.Period{}, postgres.MapError(err, "period", id)
	}
	return out.toDomain(), nil
}

// DeleteByIDs hard-deletes ids and returns the ones that existed. Tasks and
// goals must be detached first.
func (r *Repo) DeleteByIDs(ctx context.Context, tenant string, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}
	return postgres.CollectIDs(ctx, postgres.QuerierFromCtx(ctx, r.db), deleteSQL, tenant, ids)
}
