package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Rjayskie12/hazards-sub000/internal/coverage"
	"github.com/Rjayskie12/hazards-sub000/internal/domain"
	"github.com/Rjayskie12/hazards-sub000/pkg/e"
)

// RejectionReasonPlaceholder is stored when an engineer rejects a report
// without giving a reason.
const RejectionReasonPlaceholder = "No reason provided"

type reportService struct {
	reports   ReportRepository
	engineers EngineerRepository
	cache     EngineerCache
	queue     EventQueue
	logger    *slog.Logger
}

func NewReportService(
	reports ReportRepository,
	engineers EngineerRepository,
	cache EngineerCache,
	queue EventQueue,
	logger *slog.Logger,
) ReportService {
	return &reportService{
		reports:   reports,
		engineers: engineers,
		cache:     cache,
		queue:     queue,
		logger:    logger,
	}
}

func (s *reportService) Submit(ctx context.Context, req domain.CreateReportRequest) (uuid.UUID, error) {
	loc, err := coordinateFrom(req.Lat, req.Lng)
	if err != nil {
		return uuid.Nil, err
	}

	rep := &domain.HazardReport{
		ID:          uuid.New(),
		HazardType:  req.HazardType,
		Severity:    req.Severity,
		Location:    loc,
		Address:     req.Address,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Status:      domain.ReportPending,
	}

	if err := s.reports.Create(ctx, rep); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("report submitted",
		slog.String("id", rep.ID.String()),
		slog.String("hazard_type", rep.HazardType),
		slog.String("severity", string(rep.Severity)),
		slog.Bool("located", rep.Location != nil),
	)
	return rep.ID, nil
}

func (s *reportService) List(ctx context.Context) ([]domain.HazardReport, error) {
	return s.reports.List(ctx)
}

// CoverageMap is the admin dashboard view: every located report with the
// engineers who could plausibly respond at the fixed 40 km radius. Always
// recomputed from the current snapshot.
func (s *reportService) CoverageMap(ctx context.Context) ([]domain.ReportCoverage, error) {
	engineers, err := s.activeEngineers(ctx)
	if err != nil {
		return nil, err
	}
	reports, err := s.reports.List(ctx)
	if err != nil {
		return nil, err
	}
	return coverage.MatchAdmin(engineers, reports), nil
}

func (s *reportService) ListForEngineer(ctx context.Context, engineerID uuid.UUID) ([]domain.RankedReport, error) {
	eng, err := s.engineers.Get(ctx, engineerID)
	if err != nil {
		return nil, err
	}
	reports, err := s.reports.List(ctx)
	if err != nil {
		return nil, err
	}
	return coverage.MatchEngineer(*eng, reports), nil
}

func (s *reportService) Approve(ctx context.Context, engineerID, reportID uuid.UUID) error {
	eng, rep, err := s.authorize(ctx, engineerID, reportID)
	if err != nil {
		return err
	}

	// Deliberately not gated on current status: re-approving an approved
	// report succeeds idempotently.
	now := time.Now().UTC()
	rep.Status = domain.ReportApproved
	rep.ApprovedBy = &eng.ID
	rep.ApprovedAt = &now

	if err := s.reports.UpdateDecision(ctx, rep); err != nil {
		return err
	}

	s.publishEvent(ctx, rep.ID, eng.ID, "approved")
	return nil
}

func (s *reportService) Reject(ctx context.Context, engineerID, reportID uuid.UUID, reason string) error {
	eng, rep, err := s.authorize(ctx, engineerID, reportID)
	if err != nil {
		return err
	}

	if strings.TrimSpace(reason) == "" {
		reason = RejectionReasonPlaceholder
	}

	now := time.Now().UTC()
	rep.Status = domain.ReportRejected
	rep.ApprovedBy = &eng.ID
	rep.ApprovedAt = &now
	rep.RejectionReason = &reason

	if err := s.reports.UpdateDecision(ctx, rep); err != nil {
		return err
	}

	s.publishEvent(ctx, rep.ID, eng.ID, "rejected")
	return nil
}

func (s *reportService) Resolve(ctx context.Context, engineerID, reportID uuid.UUID, notes *string) error {
	eng, rep, err := s.authorize(ctx, engineerID, reportID)
	if err != nil {
		return err
	}

	// Resolving is only reachable from approved; approval itself is the
	// permissive transition, not this one.
	if rep.Status != domain.ReportApproved {
		return e.Wrap("resolve: report not approved", e.ErrInvalidInput)
	}

	now := time.Now().UTC()
	rep.Resolved = true
	rep.ResolvedBy = &eng.ID
	rep.ResolvedAt = &now
	rep.ResolutionNotes = notes

	if err := s.reports.UpdateResolution(ctx, rep); err != nil {
		return err
	}

	s.publishEvent(ctx, rep.ID, eng.ID, "resolved")
	return nil
}

func (s *reportService) Unresolve(ctx context.Context, engineerID, reportID uuid.UUID) error {
	eng, rep, err := s.authorize(ctx, engineerID, reportID)
	if err != nil {
		return err
	}

	rep.Resolved = false
	rep.ResolvedBy = nil
	rep.ResolvedAt = nil
	rep.ResolutionNotes = nil

	if err := s.reports.UpdateResolution(ctx, rep); err != nil {
		return err
	}

	s.publishEvent(ctx, rep.ID, eng.ID, "unresolved")
	return nil
}

// authorize loads both records and applies the coverage guard with the same
// geometry the matcher uses. Check-then-act: nothing is mutated unless the
// whole guard passes. An engineer with no home coordinate cannot prove
// containment and is denied as out-of-coverage; an unlocated report cannot
// be coverage-gated at all and is invalid input.
func (s *reportService) authorize(ctx context.Context, engineerID, reportID uuid.UUID) (*domain.Engineer, *domain.HazardReport, error) {
	eng, err := s.engineers.Get(ctx, engineerID)
	if err != nil {
		return nil, nil, err
	}
	rep, err := s.reports.Get(ctx, reportID)
	if err != nil {
		return nil, nil, err
	}

	if rep.Location == nil {
		return nil, nil, e.Wrap("report has no location", e.ErrInvalidInput)
	}
	if !coverage.Covers(*eng, rep.Location) {
		s.logger.Warn("action denied: outside coverage",
			slog.String("engineer_id", engineerID.String()),
			slog.String("report_id", reportID.String()),
		)
		return nil, nil, e.ErrOutOfCoverage
	}

	return eng, rep, nil
}

func (s *reportService) publishEvent(ctx context.Context, reportID, engineerID uuid.UUID, action string) {
	payload := domain.ReportEventPayload{
		ReportID:   reportID,
		Action:     action,
		EngineerID: engineerID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.queue.Enqueue(ctx, payload); err != nil {
		// Notification delivery is best effort; the state change stands.
		s.logger.Error("enqueue report event failed",
			slog.String("report_id", reportID.String()),
			slog.String("action", action),
			slog.Any("error", err),
		)
	}
}

// activeEngineers serves coverage listings from the snapshot cache when it
// is warm, falling back to the repository and re-warming on a miss.
func (s *reportService) activeEngineers(ctx context.Context) ([]domain.Engineer, error) {
	cached, err := s.cache.GetActive(ctx)
	if err != nil {
		s.logger.Warn("engineer cache read failed", slog.Any("error", err))
	} else if cached != nil {
		return cached, nil
	}

	engineers, err := s.engineers.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Engineer, 0, len(engineers))
	for _, eng := range engineers {
		if eng.Status == domain.EngineerActive {
			active = append(active, eng)
		}
	}
	if err := s.cache.SetActive(ctx, active, engineerCacheTTL); err != nil {
		s.logger.Warn("engineer cache warm failed", slog.Any("error", err))
	}
	return active, nil
}
