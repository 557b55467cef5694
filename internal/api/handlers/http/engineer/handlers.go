package engineer

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/Rjayskie12/hazards-sub000/internal/domain"
	"github.com/Rjayskie12/hazards-sub000/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ReportCommands interface {
	ListForEngineer(ctx context.Context, engineerID uuid.UUID) ([]domain.RankedReport, error)
	Approve(ctx context.Context, engineerID, reportID uuid.UUID) error
	Reject(ctx context.Context, engineerID, reportID uuid.UUID, reason string) error
	Resolve(ctx context.Context, engineerID, reportID uuid.UUID, notes *string) error
	Unresolve(ctx context.Context, engineerID, reportID uuid.UUID) error
}

type FeedbackCommands interface {
	UpdateStatus(ctx context.Context, engineerID, feedbackID uuid.UUID, status string, notes *string) error
}

// Handler exposes the coverage-gated lifecycle actions. The acting engineer
// comes from the URL, is resolved against storage by the service, and is
// passed explicitly into every call — no ambient identity.
type Handler struct {
	logger   *slog.Logger
	Reports  ReportCommands
	Feedback FeedbackCommands
}

func NewHandler(logger *slog.Logger, reports ReportCommands, feedback FeedbackCommands) *Handler {
	return &Handler{
		logger:   logger,
		Reports:  reports,
		Feedback: feedback,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// MyReports lists the reports inside the acting engineer's own configured
// radius, nearest first.
func (h *Handler) MyReports(w http.ResponseWriter, r *http.Request) {
	engineerID, ok := h.parseID(w, r, "engineerID")
	if !ok {
		return
	}

	reports, err := h.Reports.ListForEngineer(r.Context(), engineerID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"reports": reports,
		"total":   len(reports),
	})
}

func (h *Handler) ReportApprove(w http.ResponseWriter, r *http.Request) {
	engineerID, reportID, ok := h.parseActingPair(w, r)
	if !ok {
		return
	}

	if err := h.Reports.Approve(r.Context(), engineerID, reportID); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("report approved",
		slog.String("engineer_id", engineerID.String()),
		slog.String("report_id", reportID.String()),
	)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ReportReject(w http.ResponseWriter, r *http.Request) {
	engineerID, reportID, ok := h.parseActingPair(w, r)
	if !ok {
		return
	}

	var req domain.RejectReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Reports.Reject(r.Context(), engineerID, reportID, req.Reason); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("report rejected",
		slog.String("engineer_id", engineerID.String()),
		slog.String("report_id", reportID.String()),
	)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ReportResolve(w http.ResponseWriter, r *http.Request) {
	engineerID, reportID, ok := h.parseActingPair(w, r)
	if !ok {
		return
	}

	var req domain.ResolveReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Reports.Resolve(r.Context(), engineerID, reportID, req.Notes); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ReportUnresolve(w http.ResponseWriter, r *http.Request) {
	engineerID, reportID, ok := h.parseActingPair(w, r)
	if !ok {
		return
	}

	if err := h.Reports.Unresolve(r.Context(), engineerID, reportID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) FeedbackStatusUpdate(w http.ResponseWriter, r *http.Request) {
	engineerID, ok := h.parseID(w, r, "engineerID")
	if !ok {
		return
	}
	feedbackID, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateFeedbackStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Feedback.UpdateStatus(r.Context(), engineerID, feedbackID, req.Status, req.Notes); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) parseActingPair(w http.ResponseWriter, r *http.Request) (engineerID, reportID uuid.UUID, ok bool) {
	engineerID, ok = h.parseID(w, r, "engineerID")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	reportID, ok = h.parseID(w, r, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return engineerID, reportID, true
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, param)
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("param", param), slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
