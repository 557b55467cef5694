package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Rjayskie12/hazards-sub000/internal/coverage"
	"github.com/Rjayskie12/hazards-sub000/internal/domain"
	"github.com/Rjayskie12/hazards-sub000/pkg/e"
)

type feedbackService struct {
	feedback  FeedbackRepository
	reports   ReportRepository
	engineers EngineerRepository
	logger    *slog.Logger
}

func NewFeedbackService(
	feedback FeedbackRepository,
	reports ReportRepository,
	engineers EngineerRepository,
	logger *slog.Logger,
) FeedbackService {
	return &feedbackService{
		feedback:  feedback,
		reports:   reports,
		engineers: engineers,
		logger:    logger,
	}
}

func (s *feedbackService) Submit(ctx context.Context, reportID uuid.UUID, req domain.CreateFeedbackRequest) (uuid.UUID, error) {
	// Feedback must reference an existing report; anonymous submission is
	// fine, any report state accepts feedback (rejected and resolved too).
	if _, err := s.reports.Get(ctx, reportID); err != nil {
		return uuid.Nil, err
	}

	fb := &domain.FeedbackReport{
		ID:              uuid.New(),
		ReportID:        reportID,
		Type:            req.Type,
		Message:         req.Message,
		ReporterName:    req.ReporterName,
		ReporterContact: req.ReporterContact,
		Status:          domain.FeedbackPending,
	}

	if err := s.feedback.Create(ctx, fb); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("feedback submitted",
		slog.String("id", fb.ID.String()),
		slog.String("report_id", reportID.String()),
		slog.String("type", string(fb.Type)),
	)
	return fb.ID, nil
}

func (s *feedbackService) ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.FeedbackReport, error) {
	return s.feedback.ListByReport(ctx, reportID)
}

// UpdateStatus validates authorization but deliberately not transition
// legality: any of reviewed/in_progress/resolved is accepted from any
// current state. Unknown target statuses are rejected. The coverage guard
// resolves against the parent report's location, since feedback itself
// carries no coordinates.
func (s *feedbackService) UpdateStatus(ctx context.Context, engineerID, feedbackID uuid.UUID, status string, notes *string) error {
	target, ok := parseTargetStatus(status)
	if !ok {
		return e.Wrap("feedback status", e.ErrInvalidInput)
	}

	fb, err := s.feedback.Get(ctx, feedbackID)
	if err != nil {
		return err
	}
	eng, err := s.engineers.Get(ctx, engineerID)
	if err != nil {
		return err
	}
	rep, err := s.reports.Get(ctx, fb.ReportID)
	if err != nil {
		return err
	}

	if rep.Location == nil {
		return e.Wrap("parent report has no location", e.ErrInvalidInput)
	}
	if !coverage.Covers(*eng, rep.Location) {
		s.logger.Warn("feedback action denied: outside coverage",
			slog.String("engineer_id", engineerID.String()),
			slog.String("feedback_id", feedbackID.String()),
		)
		return e.ErrOutOfCoverage
	}

	now := time.Now().UTC()
	fb.Status = target
	fb.ResponseNotes = notes
	fb.RespondedBy = &eng.ID
	fb.RespondedAt = &now

	return s.feedback.UpdateStatus(ctx, fb)
}

func parseTargetStatus(s string) (domain.FeedbackStatus, bool) {
	switch domain.FeedbackStatus(s) {
	case domain.FeedbackReviewed, domain.FeedbackInProgress, domain.FeedbackResolved:
		return domain.FeedbackStatus(s), true
	default:
		return "", false
	}
}
