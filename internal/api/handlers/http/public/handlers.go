package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Rjayskie12/hazards-sub000/internal/domain"
	"github.com/Rjayskie12/hazards-sub000/pkg/e"
	"github.com/Rjayskie12/hazards-sub000/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ReportSubmitter interface {
	Submit(ctx context.Context, req domain.CreateReportRequest) (uuid.UUID, error)
	List(ctx context.Context) ([]domain.HazardReport, error)
}

type FeedbackSubmitter interface {
	Submit(ctx context.Context, reportID uuid.UUID, req domain.CreateFeedbackRequest) (uuid.UUID, error)
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.FeedbackReport, error)
}

type Handler struct {
	logger   *slog.Logger
	Reports  ReportSubmitter
	Feedback FeedbackSubmitter
}

func NewHandler(logger *slog.Logger, reports ReportSubmitter, feedback FeedbackSubmitter) *Handler {
	return &Handler{
		logger:   logger,
		Reports:  reports,
		Feedback: feedback,
	}
}

func (h *Handler) ReportSubmit(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateReportRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	id, err := h.Reports.Submit(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.logger.Info("report received",
		slog.String("id", id.String()),
		slog.String("hazard_type", req.HazardType),
	)
	writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) ReportList(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Reports.List(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"reports": reports,
		"total":   len(reports),
	})
}

func (h *Handler) FeedbackSubmit(w http.ResponseWriter, r *http.Request) {
	reportID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.CreateFeedbackRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	id, err := h.Feedback.Submit(r.Context(), reportID, req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) FeedbackList(w http.ResponseWriter, r *http.Request) {
	reportID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	items, err := h.Feedback.ListByReport(r.Context(), reportID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"feedback": items,
		"total":    len(items),
	})
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, e.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, e.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	default:
		h.logger.Error("public handler error", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

// decodeStrict decodes a single JSON object, rejecting unknown fields and
// trailing data, then runs struct validation.
func decodeStrict(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	if err := validator.ValidateStruct(target); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
