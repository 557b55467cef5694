package admin

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
type EngineerAdmin interface {
	Create(ctx context.Context, req domain.CreateEngineerRequest) (uuid.UUID, error)
	List(ctx context.Context) ([]domain.Engineer, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Engineer, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateEngineerRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CoverageLister interface {
	CoverageMap(ctx context.Context) ([]domain.ReportCoverage, error)
}

type StatsGetter interface {
	Dashboard(ctx context.Context) (*domain.CoverageStats, error)
}

type Handler struct {
	logger    *slog.Logger
	Engineers EngineerAdmin
	Coverage  CoverageLister
	Stats     StatsGetter
}

func NewHandler(logger *slog.Logger, engineers EngineerAdmin, coverage CoverageLister, stats StatsGetter) *Handler {
	return &Handler{
		logger:    logger,
		Engineers: engineers,
		Coverage:  coverage,
		Stats:     stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) EngineerCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateEngineerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	id, err := h.Engineers.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("engineer created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) EngineerList(w http.ResponseWriter, r *http.Request) {
	engineers, err := h.Engineers.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"engineers": engineers,
		"total":     len(engineers),
	})
}

func (h *Handler) EngineerGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	eng, err := h.Engineers.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, eng)
}

func (h *Handler) EngineerUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateEngineerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Engineers.Update(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) EngineerDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Engineers.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AdminCoverage serves the dashboard coverage map: all located reports with
// the engineers in plausible range at the fixed 40 km radius.
func (h *Handler) AdminCoverage(w http.ResponseWriter, r *http.Request) {
	matches, err := h.Coverage.CoverageMap(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"reports": matches,
		"total":   len(matches),
	})
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.Dashboard(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, param)
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
