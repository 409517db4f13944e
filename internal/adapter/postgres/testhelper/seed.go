package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Tenant returns a fresh company domain so tests sharing the container never
// see each other's rows.
func Tenant() string {
	return "co-" + uniqueSuffix() + ".test"
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// SeedPeriod inserts a period spanning [start, end] for tenant.
func SeedPeriod(t *testing.T, pool *pgxpool.Pool, tenant string, start, end int64) domain.Period {
	t.Helper()

	p := domain.Period{
		ID:            uuid.New(),
		CompanyDomain: tenant,
		Name:          "Period " + uniqueSuffix(),
		StartDate:     start,
		EndDate:       end,
		CreatedAt:     nowMillis(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO periods (id, company_domain, name, name_normalized, start_date, end_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.CompanyDomain, p.Name, domain.NormalizeText(p.Name), p.StartDate, p.EndDate, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPeriod: %v", err)
	}

	return p
}

// TaskOption customizes a seeded task.
type TaskOption func(*domain.Task)

func WithStatus(s domain.TaskStatus) TaskOption { return func(t *domain.Task) { t.Status = s } }
func WithProgress(p int) TaskOption { return func(t *domain.Task) { t.Progress = p } }
func WithPeriod(id uuid.UUID) TaskOption { return func(t *domain.Task) { t.PeriodID = &id } }
func WithObjective(id uuid.UUID) TaskOption { return func(t *domain.Task) { t.ObjectiveID = &id } }
func WithEndDate(ms int64) TaskOption { return func(t *domain.Task) { t.EndDate = &ms } }
func WithCreatedAt(ms int64) TaskOption { return func(t *domain.Task) { t.CreatedAt = ms } }
func WithTitle(title string) TaskOption { return func(t *domain.Task) { t.Title = title } }
func WithArchived() TaskOption { return func(t *domain.Task) { t.Archived = true } }

// WithParent makes the seeded task a subtask of parent.
func WithParent(parent uuid.UUID) TaskOption {
	return func(t *domain.Task) {
		t.ParentID = &parent
		t.IsSubtask = true
	}
}

// SeedTask inserts a task for tenant. Defaults: Not started, no period,
// top-level, created now.
func SeedTask(t *testing.T, pool *pgxpool.Pool, tenant string, opts ...TaskOption) domain.Task {
	t.Helper()

	suffix := uniqueSuffix()
	task := domain.Task{
		ID:            uuid.New(),
		CompanyDomain: tenant,
		Code:          "TS-" + suffix,
		Title:         "Task " + suffix,
		Status:        domain.StatusNotStarted,
		OwnerID:       uuid.New(),
		ReporterID:    uuid.New(),
		Collaborators: []uuid.UUID{},
		CreatedAt:     nowMillis(),
	}
	for _, opt := range opts {
		opt(&task)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tasks (id, company_domain, code, title, status, progress, end_date, owner_id, reporter_id,
		                    collaborators, period_id, objective_id, parent_id, is_subtask, archived, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		task.ID, task.CompanyDomain, task.Code, task.Title, string(task.Status), task.Progress, task.EndDate,
		task.OwnerID, task.ReporterID, task.Collaborators, task.PeriodID, task.ObjectiveID, task.ParentID,
		task.IsSubtask, task.Archived, task.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask: %v", err)
	}

	return task
}

// SeedGoal inserts a goal with the given title for tenant.
func SeedGoal(t *testing.T, pool *pgxpool.Pool, tenant, title string) domain.Goal {
	t.Helper()

	g := domain.Goal{
		ID:            uuid.New(),
		CompanyDomain: tenant,
		Code:          "GL-" + uniqueSuffix(),
		Title:         title,
		Status:        domain.StatusNotStarted,
		OwnerID:       uuid.New(),
		CreatedAt:     nowMillis(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO goals (id, company_domain, code, title, title_normalized, status, owner_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		g.ID, g.CompanyDomain, g.Code, g.Title, domain.NormalizeText(g.Title), string(g.Status), g.OwnerID, g.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGoal: %v", err)
	}

	return g
}

// SeedObjective inserts an objective under goal.
func SeedObjective(t *testing.T, pool *pgxpool.Pool, goal domain.Goal) domain.Objective {
	t.Helper()

	o := domain.Objective{
		ID:            uuid.New(),
		CompanyDomain: goal.CompanyDomain,
		GoalID:        goal.ID,
		Code:          fmt.Sprintf("OB-%s", uniqueSuffix()),
		Title:         "Objective " + uniqueSuffix(),
		Status:        domain.StatusNotStarted,
		OwnerID:       goal.OwnerID,
		CreatedAt:     nowMillis(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO objectives (id, company_domain, goal_id, code, title, status, owner_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID, o.CompanyDomain, o.GoalID, o.Code, o.Title, string(o.Status), o.OwnerID, o.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedObjective: %v", err)
	}

	return o
}
