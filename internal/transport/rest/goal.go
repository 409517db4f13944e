package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/goal"
	"github.com/heartmarshall/taskboard-backend/internal/service/listing"
)

type goalService interface {
	List(ctx context.Context, raw listing.RawParams) (domain.PageResult[domain.Goal], error)
	CreateGoal(ctx context.Context, input goal.CreateGoalInput) (domain.Goal, error)
	CreateObjective(ctx context.Context, input goal.CreateObjectiveInput) (domain.Objective, error)
	BulkDelete(ctx context.Context, ids []string) (domain.DeleteSummary, error)
}

// GoalHandler serves /api/goals and the objectives nested under a goal.
type GoalHandler struct {
	svc goalService
	log *slog.Logger
}

// NewGoalHandler creates a GoalHandler.
func NewGoalHandler(svc goalService, logger *slog.Logger) *GoalHandler {
	return &GoalHandler{svc: svc, log: logger.With("handler", "goal")}
}

type createGoalRequest struct {
	Title      string     `json:"title"`
	Status     string     `json:"status"`
	Priority   string     `json:"priority"`
	Weight     string     `json:"weight"`
	CategoryID *uuid.UUID `json:"categoryId"`
	OwnerID    *uuid.UUID `json:"ownerId"`
	PeriodID   *uuid.UUID `json:"periodId"`
	StartDate  *int64     `json:"startDate"`
	EndDate    *int64     `json:"endDate"`
}

type createObjectiveRequest struct {
	Title   string     `json:"title"`
	OwnerID *uuid.UUID `json:"ownerId"`
}

// List handles GET /api/goals.
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.List(r.Context(), listParams(r.URL.Query()))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse(domain.KindGoal, mapSlice(page.Items, toGoalResponse), page.TotalRowCount))
}

// Create handles POST /api/goals.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.CreateGoal(r.Context(), goal.CreateGoalInput{
		Title:      req.Title,
		Status:     domain.TaskStatus(req.Status),
		Priority:   req.Priority,
		Weight:     req.Weight,
		CategoryID: req.CategoryID,
		OwnerID:    req.OwnerID,
		PeriodID:   req.PeriodID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGoalResponse(created))
}

// CreateObjective handles POST /api/goals/{id}/objectives.
func (h *GoalHandler) CreateObjective(w http.ResponseWriter, r *http.Request) {
	goalID, err := pathID(r, "goalId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createObjectiveRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.CreateObjective(r.Context(), goal.CreateObjectiveInput{
		GoalID:  goalID,
		Title:   req.Title,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toObjectiveResponse(created))
}

// Delete handles DELETE /api/goals.
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bulkDelete(w, r, h.log, domain.KindGoal, h.svc.BulkDelete)
}
