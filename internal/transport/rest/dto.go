package rest

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

type listMeta struct {
	TotalRowCount int `json:"totalRowCount"`
}

// listResponse renders {"<kind>": [...], "meta": {"totalRowCount": n}}.
func listResponse[T any](kind domain.EntityKind, items []T, total int) map[string]any {
	if items == nil {
		items = []T{}
	}
	return map[string]any{
		kind.String(): items,
		"meta":        listMeta{TotalRowCount: total},
	}
}

func mapSlice[S, D any](src []S, fn func(S) D) []D {
	out := make([]D, len(src))
	for i, s := range src {
		out[i] = fn(s)
	}
	return out
}

type taskResponse struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	Title         string          `json:"title"`
	Description   *string         `json:"description,omitempty"`
	Status        string          `json:"status"`
	Progress      int             `json:"progress"`
	Priority      string          `json:"priority"`
	StartDate     *int64          `json:"startDate,omitempty"`
	EndDate       *int64          `json:"endDate,omitempty"`
	OwnerID       uuid.UUID       `json:"ownerId"`
	ReporterID    uuid.UUID       `json:"reporterId"`
	TeamID        *uuid.UUID      `json:"teamId,omitempty"`
	Collaborators []uuid.UUID     `json:"collaborators"`
	PeriodID      *uuid.UUID      `json:"periodId,omitempty"`
	GoalID        *uuid.UUID      `json:"goalId,omitempty"`
	ObjectiveID   *uuid.UUID      `json:"objectiveId,omitempty"`
	ParentID      *uuid.UUID      `json:"parentId,omitempty"`
	IsSubtask     bool            `json:"isSubtask"`
	Archived      bool            `json:"archived"`
	CreatedAt     int64           `json:"createdAt"`
	// Set on top-level tasks only, to [] when there are no children.
	Subtasks      *[]taskResponse `json:"subtasks,omitempty"`
}

func toTaskResponse(t domain.Task) taskResponse {
	collaborators := t.Collaborators
	if collaborators == nil {
		collaborators = []uuid.UUID{}
	}
	resp := taskResponse{
		ID:            t.ID,
		Code:          t.Code,
		Title:         t.Title,
		Description:   t.Description,
		Status:        t.Status.String(),
		Progress:      t.Progress,
		Priority:      t.Priority,
		StartDate:     t.StartDate,
		EndDate:       t.EndDate,
		OwnerID:       t.OwnerID,
		ReporterID:    t.ReporterID,
		TeamID:        t.TeamID,
		Collaborators: collaborators,
		PeriodID:      t.PeriodID,
		GoalID:        t.GoalID,
		ObjectiveID:   t.ObjectiveID,
		ParentID:      t.ParentID,
		IsSubtask:     t.IsSubtask,
		Archived:      t.Archived,
		CreatedAt:     t.CreatedAt,
	}
	if !t.IsSubtask {
		subtasks := mapSlice(t.Subtasks, toTaskResponse)
		resp.Subtasks = &subtasks
	}
	return resp
}

type objectiveResponse struct {
	ID        uuid.UUID `json:"id"`
	GoalID    uuid.UUID `json:"goalId"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Progress  int       `json:"progress"`
	OwnerID   uuid.UUID `json:"ownerId"`
	CreatedAt int64     `json:"createdAt"`
}

func toObjectiveResponse(o domain.Objective) objectiveResponse {
	return objectiveResponse{
		ID:        o.ID,
		GoalID:    o.GoalID,
		Code:      o.Code,
		Title:     o.Title,
		Status:    o.Status.String(),
		Progress:  o.Progress,
		OwnerID:   o.OwnerID,
		CreatedAt: o.CreatedAt,
	}
}

type goalResponse struct {
	ID         uuid.UUID           `json:"id"`
	Code       string              `json:"code"`
	Title      string              `json:"title"`
	Status     string              `json:"status"`
	Priority   string              `json:"priority"`
	Weight     string              `json:"weight"`
	CategoryID *uuid.UUID          `json:"categoryId,omitempty"`
	OwnerID    uuid.UUID           `json:"ownerId"`
	PeriodID   *uuid.UUID          `json:"periodId,omitempty"`
	StartDate  *int64              `json:"startDate,omitempty"`
	EndDate    *int64              `json:"endDate,omitempty"`
	Archived   bool                `json:"archived"`
	CreatedAt  int64               `json:"createdAt"`
	Objectives []objectiveResponse `json:"objectives"`
}

func toGoalResponse(g domain.Goal) goalResponse {
	return goalResponse{
		ID:         g.ID,
		Code:       g.Code,
		Title:      g.Title,
		Status:     g.Status.String(),
		Priority:   g.Priority,
		Weight:     g.Weight,
		CategoryID: g.CategoryID,
		OwnerID:    g.OwnerID,
		PeriodID:   g.PeriodID,
		StartDate:  g.StartDate,
		EndDate:    g.EndDate,
		Archived:   g.Archived,
		CreatedAt:  g.CreatedAt,
		Objectives: mapSlice(g.Objectives, toObjectiveResponse),
	}
}

// registerResponse renders both risks and challenges; Criticality is set for
// risks and Priority for challenges.
type registerResponse struct {
	ID          uuid.UUID  `json:"id"`
	Code        string     `json:"code"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	Criticality string     `json:"criticality,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	OwnerID     uuid.UUID  `json:"ownerId"`
	GoalID      *uuid.UUID `json:"goalId,omitempty"`
	ObjectiveID *uuid.UUID `json:"objectiveId,omitempty"`
	TaskID      *uuid.UUID `json:"taskId,omitempty"`
	CategoryID  *uuid.UUID `json:"categoryId,omitempty"`
	StartDate   *int64     `json:"startDate,omitempty"`
	EndDate     *int64     `json:"endDate,omitempty"`
	CreatedAt   int64      `json:"createdAt"`
}

func toRiskResponse(r domain.Risk) registerResponse {
	return registerResponse{
		ID:          r.ID,
		Code:        r.Code,
		Title:       r.Title,
		Status:      r.Status.String(),
		Criticality: r.Criticality,
		OwnerID:     r.OwnerID,
		GoalID:      r.GoalID,
		ObjectiveID: r.ObjectiveID,
		TaskID:      r.TaskID,
		CategoryID:  r.CategoryID,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		CreatedAt:   r.CreatedAt,
	}
}

func toChallengeResponse(c domain.Challenge) registerResponse {
	return registerResponse{
		ID:          c.ID,
		Code:        c.Code,
		Title:       c.Title,
		Status:      c.Status.String(),
		Priority:    c.Priority,
		OwnerID:     c.OwnerID,
		GoalID:      c.GoalID,
		ObjectiveID: c.ObjectiveID,
		TaskID:      c.TaskID,
		CategoryID:  c.CategoryID,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		CreatedAt:   c.CreatedAt,
	}
}

type periodResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StartDate int64     `json:"startDate"`
	EndDate   int64     `json:"endDate"`
	Completed bool      `json:"completed"`
	CreatedAt int64     `json:"createdAt"`
}

func toPeriodResponse(p domain.Period) periodResponse {
	return periodResponse{
		ID:        p.ID,
		Name:      p.Name,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Completed: p.Completed,
		CreatedAt: p.CreatedAt,
	}
}

type deleteSummaryResponse struct {
	Deleted  int `json:"deleted"`
	NotFound int `json:"notFound"`
	Errors   int `json:"errors"`
}

type deleteDetailResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type bulkDeleteResponse struct {
	Message string                 `json:"message"`
	Summary deleteSummaryResponse  `json:"summary"`
	Details []deleteDetailResponse `json:"details"`
}

func toBulkDeleteResponse(kind domain.EntityKind, s domain.DeleteSummary) bulkDeleteResponse {
	details := make([]deleteDetailResponse, len(s.Details))
	for i, d := range s.Details {
		details[i] = deleteDetailResponse{ID: d.ID, Status: string(d.Outcome)}
		switch {
		case d.Outcome == domain.DeleteOutcomeError:
			details[i].Error = "internal error"
		case d.Err != nil:
			details[i].Error = d.Err.Error()
		}
	}
	return bulkDeleteResponse{
		Message: fmt.Sprintf("deleted %d of %d %s", s.Deleted, len(s.Details), kind),
		Summary: deleteSummaryResponse{
			Deleted:  s.Deleted,
			NotFound: s.NotFound,
			Errors:   s.Errors,
		},
		Details: details,
	}
}
