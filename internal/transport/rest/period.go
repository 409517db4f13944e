package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/listing"
	"github.com/heartmarshall/taskboard-backend/internal/service/period"
)

type periodService interface {
	List(ctx context.Context, raw listing.RawParams) (domain.PageResult[domain.Period], error)
	CreatePeriod(ctx context.Context, input period.CreatePeriodInput) (domain.Period, error)
	CompletePeriod(ctx context.Context, periodID uuid.UUID) (domain.PeriodCompletion, error)
	BulkDelete(ctx context.Context, ids []string) (domain.DeleteSummary, error)
}

// PeriodHandler serves /api/periods.
type PeriodHandler struct {
	svc periodService
	log *slog.Logger
}

// NewPeriodHandler creates a PeriodHandler.
func NewPeriodHandler(svc periodService, logger *slog.Logger) *PeriodHandler {
	return &PeriodHandler{svc: svc, log: logger.With("handler", "period")}
}

type createPeriodRequest struct {
	Name      string `json:"name"`
	StartDate int64  `json:"startDate"`
	EndDate   int64  `json:"endDate"`
}

type completePeriodResponse struct {
	PeriodID uuid.UUID `json:"periodId"`
	Unlinked int       `json:"unlinked"`
	Archived int       `json:"archived"`
}

// List handles GET /api/periods.
func (h *PeriodHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.List(r.Context(), listParams(r.URL.Query()))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse(domain.KindPeriod, mapSlice(page.Items, toPeriodResponse), page.TotalRowCount))
}

// Create handles POST /api/periods.
func (h *PeriodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPeriodRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.CreatePeriod(r.Context(), period.CreatePeriodInput{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPeriodResponse(created))
}

// Complete handles POST /api/periods/{id}/complete.
func (h *PeriodHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.CompletePeriod(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, completePeriodResponse{
		PeriodID: res.PeriodID,
		Unlinked: res.Unlinked,
		Archived: res.Archived,
	})
}

// Delete handles DELETE /api/periods.
func (h *PeriodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bulkDelete(w, r, h.log, domain.KindPeriod, h.svc.BulkDelete)
}
