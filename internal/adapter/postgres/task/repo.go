// Package task implements the Task repository using PostgreSQL.
// List reads render a domain.Predicate through squirrel; fixed statements
// are raw SQL.
package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

const table = "tasks"

var selectColumns = []string{
	"id", "company_domain", "code", "title", "description", "status", "progress", "priority",
	"start_date", "end_date", "owner_id", "reporter_id", "team_id", "collaborators",
	"period_id", "goal_id", "objective_id", "parent_id", "is_subtask", "archived", "created_at",
}

// Columns is the field mapping used to render list predicates.
var Columns = postgres.Columns{
	domain.FieldID:            "id",
	domain.FieldCompanyDomain: "company_domain",
	domain.FieldCode:          "code",
	domain.FieldTitle:         "title",
	domain.FieldStatus:        "status",
	domain.FieldPriority:      "priority",
	domain.FieldStartDate:     "start_date",
	domain.FieldEndDate:       "end_date",
	domain.FieldOwnerID:       "owner_id",
	domain.FieldTeamID:        "team_id",
	domain.FieldCollaborators: "collaborators",
	domain.FieldGoalID:        "goal_id",
	domain.FieldObjectiveID:   "objective_id",
	domain.FieldParentID:      "parent_id",
	domain.FieldPeriodID:      "period_id",
	domain.FieldArchived:      "archived",
	domain.FieldIsSubtask:     "is_subtask",
	domain.FieldCreatedAt:     "created_at",
}

type row struct {
	ID            uuid.UUID   `db:"id"`
	CompanyDomain string      `db:"company_domain"`
	Code          string      `db:"code"`
	Title         string      `db:"title"`
	Description   *string     `db:"description"`
	Status        string      `db:"status"`
	Progress      int         `db:"progress"`
	Priority      string      `db:"priority"`
	StartDate     *int64      `db:"start_date"`
	EndDate       *int64      `db:"end_date"`
	OwnerID       uuid.UUID   `db:"owner_id"`
	ReporterID    uuid.UUID   `db:"reporter_id"`
	TeamID        *uuid.UUID  `db:"team_id"`
	Collaborators []uuid.UUID `db:"collaborators"`
	PeriodID      *uuid.UUID  `db:"period_id"`
	GoalID        *uuid.UUID  `db:"goal_id"`
	ObjectiveID   *uuid.UUID  `db:"objective_id"`
	ParentID      *uuid.UUID  `db:"parent_id"`
	IsSubtask     bool        `db:"is_subtask"`
	Archived      bool        `db:"archived"`
	CreatedAt     int64       `db:"created_at"`
}

func (r row) toDomain() domain.Task {
	collaborators := r.Collaborators
	if collaborators == nil {
		collaborators = []uuid.UUID{}
	}
	return domain.Task{
		ID:            r.ID,
		CompanyDomain: r.CompanyDomain,
		Code:          r.Code,
		Title:         r.Title,
		Description:   r.Description,
		Status:        domain.TaskStatus(r.Status),
		Progress:      r.Progress,
		Priority:      r.Priority,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		OwnerID:       r.OwnerID,
		ReporterID:    r.ReporterID,
		TeamID:        r.TeamID,
		Collaborators: collaborators,
		PeriodID:      r.PeriodID,
		GoalID:        r.GoalID,
		ObjectiveID:   r.ObjectiveID,
		ParentID:      r.ParentID,
		IsSubtask:     r.IsSubtask,
		Archived:      r.Archived,
		CreatedAt:     r.CreatedAt,
	}
}

func toDomain(rows []row) []domain.Task {
	out := make([]domain.Task, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new task repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const getByIDSQL = `
SELECT id, company_domain, code, title, description, status, progress, priority,
       start_date, end_date, owner_id, reporter_id, team_id, collaborators,
       period_id, goal_id, objective_id, parent_id, is_subtask, archived, created_at
FROM tasks
WHERE company_domain = $1 AND id = $2`

const listByParentIDsSQL = `
SELECT id, company_domain, code, title, description, status, progress, priority,
       start_date, end_date, owner_id, reporter_id, team_id, collaborators,
       period_id, goal_id, objective_id, parent_id, is_subtask, archived, created_at
FROM tasks
WHERE company_domain = $1 AND parent_id = ANY($2::uuid[]) AND archived = false
ORDER BY created_at ASC, id ASC`

const insertSQL = `
INSERT INTO tasks (company_domain, code, title, description, status, progress, priority,
                   start_date, end_date, owner_id, reporter_id, team_id, collaborators,
                   period_id, goal_id, objective_id, parent_id, is_subtask, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
RETURNING id, company_domain, code, title, description, status, progress, priority,
          start_date, end_date, owner_id, reporter_id, team_id, collaborators,
          period_id, goal_id, objective_id, parent_id, is_subtask, archived, created_at`

const setProgressSQL = `
UPDATE tasks SET status = $3, progress = $4
WHERE company_domain = $1 AND id = $2
RETURNING id, company_domain, code, title, description, status, progress, priority,
          start_date, end_date, owner_id, reporter_id, team_id, collaborators,
          period_id, goal_id, objective_id, parent_id, is_subtask, archived, created_at`

const subtaskStatesSQL = `
SELECT status, progress FROM tasks
WHERE company_domain = $1 AND parent_id = $2 AND archived = false`

const objectiveStatesSQL = `
SELECT status, progress FROM tasks
WHERE company_domain = $1 AND objective_id = $2 AND is_subtask = false AND archived = false`

const unlinkOpenSQL = `
UPDATE tasks SET period_id = NULL
WHERE company_domain = $1 AND period_id = $2 AND status <> 'Completed'`

const archiveCompletedSQL = `
UPDATE tasks SET archived = true
WHERE company_domain = $1 AND period_id = $2 AND status = 'Completed' AND archived = false`

const detachPeriodsSQL = `
UPDATE tasks SET period_id = NULL
WHERE company_domain = $1 AND period_id = ANY($2::uuid[])`

const deleteSubtasksSQL = `
DELETE FROM tasks WHERE company_domain = $1 AND parent_id = ANY($2::uuid[])
RETURNING id`

const deleteSQL = `
DELETE FROM tasks WHERE company_domain = $1 AND id = ANY($2::uuid[])
RETURNING id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns one page of tasks matching pred.
func (r *Repo) List(ctx context.Context, pred domain.Predicate, page domain.Page) (domain.PageResult[domain.Task], error) {
	where, err := postgres.Where(pred, Columns)
	if err != nil {
		return domain.PageResult[domain.Task]{}, err
	}

	res, err := postgres.ListPage[row](ctx, r.db, postgres.ListQuery{
		Table:   table,
		Columns: selectColumns,
		Where:   where,
		Page:    page,
	})
	if err != nil {
		return domain.PageResult[domain.Task]{}, err
	}

	return domain.PageResult[domain.Task]{Items: toDomain(res.Items), TotalRowCount: res.TotalRowCount}, nil
}

// GetByID returns a task of tenant by primary key.
func (r *Repo) GetByID(ctx context.Context, tenant string, id uuid.UUID) (domain.Task, error) {
	var t row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &t, getByIDSQL, tenant, id); err != nil {
		return domain.Task{}, postgres.MapError(err, "task", id)
	}
	return t.toDomain(), nil
}

// ListByParentIDs returns the active subtasks of the given parents (batch
// for the subtask loader).
func (r *Repo) ListByParentIDs(ctx context.Context, tenant string, parentIDs []uuid.UUID) ([]domain.Task, error) {
	if len(parentIDs) == 0 {
		return []domain.Task{}, nil
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByParentIDsSQL, tenant, parentIDs); err != nil {
		return nil, fmt.Errorf("list subtasks by parent_ids: %w", err)
	}
	return toDomain(rows), nil
}

// SubtaskStates returns the status and progress of every active subtask of parentID.
func (r *Repo) SubtaskStates(ctx context.Context, tenant string, parentID uuid.UUID) ([]domain.StatusProgress, error) {
	return r.states(ctx, subtaskStatesSQL, tenant, parentID)
}

// ObjectiveStates returns the status and progress of every active top-level
// task linked to objectiveID.
func (r *Repo) ObjectiveStates(ctx context.Context, tenant string, objectiveID uuid.UUID) ([]domain.StatusProgress, error) {
	return r.states(ctx, objectiveStatesSQL, tenant, objectiveID)
}

func (r *Repo) states(ctx context.Context, sql, tenant string, id uuid.UUID) ([]domain.StatusProgress, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, tenant, id)
	if err != nil {
		return nil, fmt.Errorf("task states: %w", err)
	}
	defer rows.Close()

	states := []domain.StatusProgress{}
	for rows.Next() {
		var (
			status   string
			progress int
		)
		if err := rows.Scan(&status, &progress); err != nil {
			return nil, fmt.Errorf("scan task state: %w", err)
		}
		states = append(states, domain.StatusProgress{Status: domain.TaskStatus(status), Progress: progress})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task states rows: %w", err)
	}

	return states, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts t and returns the stored task.
func (r *Repo) Create(ctx context.Context, t domain.Task) (domain.Task, error) {
	collaborators := t.Collaborators
	if collaborators == nil {
		collaborators = []uuid.UUID{}
	}

	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, insertSQL,
		t.CompanyDomain, t.Code, t.Title, t.Description, string(t.Status), t.Progress, t.Priority,
		t.StartDate, t.EndDate, t.OwnerID, t.ReporterID, t.TeamID, collaborators,
		t.PeriodID, t.GoalID, t.ObjectiveID, t.ParentID, t.IsSubtask, t.CreatedAt,
	)
	if err != nil {
		return domain.Task{}, postgres.MapError(err, "task", t.Code)
	}
	return out.toDomain(), nil
}

// Update applies the non-nil fields of p and returns the updated task.
func (r *Repo) Update(ctx context.Context, tenant string, id uuid.UUID, p domain.TaskUpdateParams) (domain.Task, error) {
	if p.IsEmpty() {
		return r.GetByID(ctx, tenant, id)
	}

	set := map[string]any{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Status != nil {
		set["status"] = string(*p.Status)
	}
	if p.Progress != nil {
		set["progress"] = *p.Progress
	}
	if p.Priority != nil {
		set["priority"] = *p.Priority
	}
	if p.StartDate != nil {
		set["start_date"] = *p.StartDate
	}
	if p.EndDate != nil {
		set["end_date"] = *p.EndDate
	}
	if p.Collaborators != nil {
		set["collaborators"] = p.Collaborators
	}
	switch {
	case p.ClearPeriod:
		set["period_id"] = nil
	case p.PeriodID != nil:
		set["period_id"] = *p.PeriodID
	}
	if p.ObjectiveID != nil {
		set["objective_id"] = *p.ObjectiveID
	}
	if p.Archived != nil {
		set["archived"] = *p.Archived
	}

	sql, args, err := postgres.Builder.
		Update(table).
		SetMap(set).
		Where(squirrel.Eq{"company_domain": tenant, "id": id}).
		Suffix("RETURNING " + strings.Join(selectColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.Task{}, fmt.Errorf("build task update: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return domain.Task{}, postgres.MapError(err, "task", id)
	}
	return out.toDomain(), nil
}

// SetProgress overwrites status and progress of a task and returns it.
func (r *Repo) SetProgress(ctx context.Context, tenant string, id uuid.UUID, sp domain.StatusProgress) (domain.Task, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, setProgressSQL, tenant, id, string(sp.Status), sp.Progress)
	if err != nil {
		return domain.Task{}, postgres.MapError(err, "task", id)
	}
	return out.toDomain(), nil
}

// UnlinkOpenInPeriod moves every not completed task of the period, archived
// or not, back to the backlog and returns how many moved.
func (r *Repo) UnlinkOpenInPeriod(ctx context.Context, tenant string, periodID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, unlinkOpenSQL, tenant, periodID)
	if err != nil {
		return 0, postgres.MapError(err, "period tasks", periodID)
	}
	return tag.RowsAffected(), nil
}

// ArchiveCompletedInPeriod archives every completed task of the period and
// returns how many were archived. The period link is kept.
func (r *Repo) ArchiveCompletedInPeriod(ctx context.Context, tenant string, periodID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, archiveCompletedSQL, tenant, periodID)
	if err != nil {
		return 0, postgres.MapError(err, "period tasks", periodID)
	}
	return tag.RowsAffected(), nil
}

// DetachPeriods clears the period link of every task in the given periods.
func (r *Repo) DetachPeriods(ctx context.Context, tenant string, periodIDs []uuid.UUID) error {
	if len(periodIDs) == 0 {
		return nil
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, detachPeriodsSQL, tenant, periodIDs); err != nil {
		return postgres.MapError(err, "period tasks", tenant)
	}
	return nil
}

// DeleteByIDs deletes the subtasks of ids and then ids themselves, and
// returns the requested ids that existed, including subtasks removed with
// their parent. Run it in a transaction.
func (r *Repo) DeleteByIDs(ctx context.Context, tenant string, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	children, err := postgres.CollectIDs(ctx, q, deleteSubtasksSQL, tenant, ids)
	if err != nil {
		return nil, err
	}

	deleted, err := postgres.CollectIDs(ctx, q, deleteSQL, tenant, ids)
	if err != nil {
		return nil, err
	}

	requested := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		requested[id] = struct{}{}
	}
	for _, id := range children {
		if _, ok := requested[id]; ok {
			deleted = append(deleted, id)
		}
	}
	return deleted, nil
}
