package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/challenge"
	"github.com/heartmarshall/taskboard-backend/internal/service/listing"
	"github.com/heartmarshall/taskboard-backend/internal/service/risk"
)

type riskService interface {
	List(ctx context.Context, raw listing.RawParams) (domain.PageResult[domain.Risk], error)
	CreateRisk(ctx context.Context, input risk.CreateRiskInput) (domain.Risk, error)
	BulkDelete(ctx context.Context, ids []string) (domain.DeleteSummary, error)
}

type challengeService interface {
	List(ctx context.Context, raw listing.RawParams) (domain.PageResult[domain.Challenge], error)
	CreateChallenge(ctx context.Context, input challenge.CreateChallengeInput) (domain.Challenge, error)
	BulkDelete(ctx context.Context, ids []string) (domain.DeleteSummary, error)
}

// RegisterHandler serves the risk and challenge registers.
type RegisterHandler struct {
	risks      riskService
	challenges challengeService
	log        *slog.Logger
}

// NewRegisterHandler creates a RegisterHandler.
func NewRegisterHandler(risks riskService, challenges challengeService, logger *slog.Logger) *RegisterHandler {
	return &RegisterHandler{risks: risks, challenges: challenges, log: logger.With("handler", "register")}
}

// createRegisterRequest is the body of both POST /api/risks and
// POST /api/challenges. Criticality applies to risks, Priority to challenges.
type createRegisterRequest struct {
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	Criticality string     `json:"criticality"`
	Priority    string     `json:"priority"`
	OwnerID     *uuid.UUID `json:"ownerId"`
	GoalID      *uuid.UUID `json:"goalId"`
	ObjectiveID *uuid.UUID `json:"objectiveId"`
	TaskID      *uuid.UUID `json:"taskId"`
	CategoryID  *uuid.UUID `json:"categoryId"`
	StartDate   *int64     `json:"startDate"`
	EndDate     *int64     `json:"endDate"`
}

// ListRisks handles GET /api/risks.
func (h *RegisterHandler) ListRisks(w http.ResponseWriter, r *http.Request) {
	page, err := h.risks.List(r.Context(), listParams(r.URL.Query()))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse(domain.KindRisk, mapSlice(page.Items, toRiskResponse), page.TotalRowCount))
}

// CreateRisk handles POST /api/risks.
func (h *RegisterHandler) CreateRisk(w http.ResponseWriter, r *http.Request) {
	var req createRegisterRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.risks.CreateRisk(r.Context(), risk.CreateRiskInput{
		Title:       req.Title,
		Status:      domain.TaskStatus(req.Status),
		Criticality: req.Criticality,
		OwnerID:     req.OwnerID,
		GoalID:      req.GoalID,
		ObjectiveID: req.ObjectiveID,
		TaskID:      req.TaskID,
		CategoryID:  req.CategoryID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRiskResponse(created))
}

// DeleteRisks handles DELETE /api/risks.
func (h *RegisterHandler) DeleteRisks(w http.ResponseWriter, r *http.Request) {
	bulkDelete(w, r, h.log, domain.KindRisk, h.risks.BulkDelete)
}

// ListChallenges handles GET /api/challenges.
func (h *RegisterHandler) ListChallenges(w http.ResponseWriter, r *http.Request) {
	page, err := h.challenges.List(r.Context(), listParams(r.URL.Query()))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse(domain.KindChallenge, mapSlice(page.Items, toChallengeResponse), page.TotalRowCount))
}

// CreateChallenge handles POST /api/challenges.
func (h *RegisterHandler) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	var req createRegisterRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.challenges.CreateChallenge(r.Context(), challenge.CreateChallengeInput{
		Title:       req.Title,
		Status:      domain.TaskStatus(req.Status),
		Priority:    req.Priority,
		OwnerID:     req.OwnerID,
		GoalID:      req.GoalID,
		ObjectiveID: req.ObjectiveID,
		TaskID:      req.TaskID,
		CategoryID:  req.CategoryID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toChallengeResponse(created))
}

// DeleteChallenges handles DELETE /api/challenges.
func (h *RegisterHandler) DeleteChallenges(w http.ResponseWriter, r *http.Request) {
	bulkDelete(w, r, h.log, domain.KindChallenge, h.challenges.BulkDelete)
}
