package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/listing"
	"github.com/heartmarshall/taskboard-backend/internal/service/task"
)

type taskService interface {
	List(ctx context.Context, raw listing.RawParams) (domain.PageResult[domain.Task], error)
	CreateTask(ctx context.Context, input task.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, input task.UpdateTaskInput) (task.UpdateResult, error)
	BulkDelete(ctx context.Context, ids []string) (domain.DeleteSummary, error)
}

// TaskHandler serves /api/tasks.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "task")}
}

type createTaskRequest struct {
	Title         string      `json:"title"`
	Description   *string     `json:"description"`
	Status        string      `json:"status"`
	Progress      int         `json:"progress"`
	Priority      string      `json:"priority"`
	StartDate     *int64      `json:"startDate"`
	EndDate       *int64      `json:"endDate"`
	OwnerID       *uuid.UUID  `json:"ownerId"`
	TeamID        *uuid.UUID  `json:"teamId"`
	Collaborators []uuid.UUID `json:"collaborators"`
	PeriodID      *uuid.UUID  `json:"periodId"`
	GoalID        *uuid.UUID  `json:"goalId"`
	ObjectiveID   *uuid.UUID  `json:"objectiveId"`
	ParentID      *uuid.UUID  `json:"parentId"`
}

type updateTaskRequest struct {
	Title          *string     `json:"title"`
	Description    *string     `json:"description"`
	Status         *string     `json:"status"`
	Progress       *int        `json:"progress"`
	Priority       *string     `json:"priority"`
	StartDate      *int64      `json:"startDate"`
	EndDate        *int64      `json:"endDate"`
	Collaborators  []uuid.UUID `json:"collaborators"`
	PeriodID       *uuid.UUID  `json:"periodId"`
	ClearPeriod    bool        `json:"clearPeriod"`
	ObjectiveID    *uuid.UUID  `json:"objectiveId"`
	Archived       *bool       `json:"archived"`
	ParentStatus   *string     `json:"parentStatus"`
	ParentProgress *int        `json:"parentProgress"`
}

type updateTaskResponse struct {
	Message string        `json:"message,omitempty"`
	Task    taskResponse  `json:"task"`
	Parent  *taskResponse `json:"parent,omitempty"`
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.List(r.Context(), listParams(r.URL.Query()))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse(domain.KindTask, mapSlice(page.Items, toTaskResponse), page.TotalRowCount))
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.CreateTask(r.Context(), task.CreateTaskInput{
		Title:         req.Title,
		Description:   req.Description,
		Status:        domain.TaskStatus(req.Status),
		Progress:      req.Progress,
		Priority:      req.Priority,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		OwnerID:       req.OwnerID,
		TeamID:        req.TeamID,
		Collaborators: req.Collaborators,
		PeriodID:      req.PeriodID,
		GoalID:        req.GoalID,
		ObjectiveID:   req.ObjectiveID,
		ParentID:      req.ParentID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTaskResponse(created))
}

// Update handles PATCH /api/tasks/{id}. When the task is a subtask whose
// parent is gone, the update is kept and the response is a 404 carrying it.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateTaskRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.UpdateTask(r.Context(), task.UpdateTaskInput{
		TaskID:         id,
		Changes:        req.changes(),
		ParentStatus:   statusPtr(req.ParentStatus),
		ParentProgress: req.ParentProgress,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := updateTaskResponse{Task: toTaskResponse(res.Task)}
	if res.Parent != nil {
		parent := toTaskResponse(*res.Parent)
		resp.Parent = &parent
	}
	if res.ParentErr != nil {
		resp.Message = "parent task not found"
		status := http.StatusNotFound
		if !errors.Is(res.ParentErr, domain.ErrNotFound) {
			resp.Message = "parent task not updated"
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /api/tasks.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bulkDelete(w, r, h.log, domain.KindTask, h.svc.BulkDelete)
}

func (req updateTaskRequest) changes() domain.TaskUpdateParams {
	return domain.TaskUpdateParams{
		Title:         req.Title,
		Description:   req.Description,
		Status:        statusPtr(req.Status),
		Progress:      req.Progress,
		Priority:      req.Priority,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Collaborators: req.Collaborators,
		PeriodID:      req.PeriodID,
		ClearPeriod:   req.ClearPeriod,
		ObjectiveID:   req.ObjectiveID,
		Archived:      req.Archived,
	}
}

func statusPtr(s *string) *domain.TaskStatus {
	if s == nil {
		return nil
	}
	st := domain.TaskStatus(*s)
	return &st
}

// bulkDelete runs the shared DELETE contract for every kind: 404 when no
// id was deleted, 200 otherwise, same body either way.
func bulkDelete(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
	kind domain.EntityKind,
	del func(ctx context.Context, ids []string) (domain.DeleteSummary, error),
) {
	ids, err := bulkIDs(r)
	if err != nil {
		handleError(w, r, log, err)
		return
	}

	summary, err := del(r.Context(), ids)
	if err != nil {
		handleError(w, r, log, err)
		return
	}

	status := http.StatusOK
	if summary.Deleted == 0 && len(summary.Details) > 0 {
		status = http.StatusNotFound
	}
	writeJSON(w, status, toBulkDeleteResponse(kind, summary))
}
