package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Rjayskie12/hazards-sub000/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// EngineerAdminService covers the administrator's engineer management.
type EngineerAdminService interface {
	Create(ctx context.Context, req domain.CreateEngineerRequest) (uuid.UUID, error)
	List(ctx context.Context) ([]domain.Engineer, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Engineer, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateEngineerRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReportService covers citizen submission, coverage queries and the
// engineer-side lifecycle commands. Every lifecycle command takes the acting
// engineer explicitly; the engine never reads identity from ambient context.
type ReportService interface {
	Submit(ctx context.Context, req domain.CreateReportRequest) (uuid.UUID, error)
	List(ctx context.Context) ([]domain.HazardReport, error)
	CoverageMap(ctx context.Context) ([]domain.ReportCoverage, error)
	ListForEngineer(ctx context.Context, engineerID uuid.UUID) ([]domain.RankedReport, error)
	Approve(ctx context.Context, engineerID, reportID uuid.UUID) error
	Reject(ctx context.Context, engineerID, reportID uuid.UUID, reason string) error
	Resolve(ctx context.Context, engineerID, reportID uuid.UUID, notes *string) error
	Unresolve(ctx context.Context, engineerID, reportID uuid.UUID) error
}

type FeedbackService interface {
	Submit(ctx context.Context, reportID uuid.UUID, req domain.CreateFeedbackRequest) (uuid.UUID, error)
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.FeedbackReport, error)
	UpdateStatus(ctx context.Context, engineerID, feedbackID uuid.UUID, status string, notes *string) error
}

type StatsService interface {
	Dashboard(ctx context.Context) (*domain.CoverageStats, error)
}

// Storage collaborators. The engine owns no persistence; callers must
// serialize concurrent status changes on the same report at the store.
type EngineerRepository interface {
	Create(ctx context.Context, engineer *domain.Engineer) error
	List(ctx context.Context) ([]domain.Engineer, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Engineer, error)
	Update(ctx context.Context, engineer *domain.Engineer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReportRepository interface {
	Create(ctx context.Context, report *domain.HazardReport) error
	List(ctx context.Context) ([]domain.HazardReport, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.HazardReport, error)
	UpdateDecision(ctx context.Context, report *domain.HazardReport) error
	UpdateResolution(ctx context.Context, report *domain.HazardReport) error
}

type FeedbackRepository interface {
	Create(ctx context.Context, fb *domain.FeedbackReport) error
	Get(ctx context.Context, id uuid.UUID) (*domain.FeedbackReport, error)
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.FeedbackReport, error)
	UpdateStatus(ctx context.Context, fb *domain.FeedbackReport) error
}

// EngineerCache is a snapshot cache of active engineer records. Only records
// are cached; the coverage assignment itself is always recomputed. GetActive
// returns (nil, nil) on a cache miss.
type EngineerCache interface {
	GetActive(ctx context.Context) ([]domain.Engineer, error)
	SetActive(ctx context.Context, engineers []domain.Engineer, ttl time.Duration) error
}

type EventQueue interface {
	Enqueue(ctx context.Context, payload domain.ReportEventPayload) error
}

type Service struct {
	Engineers EngineerAdminService
	Reports   ReportService
	Feedback  FeedbackService
	Stats     StatsService
}

func NewService(
	engineers EngineerAdminService,
	reports ReportService,
	feedback FeedbackService,
	stats StatsService,
) *Service {
	return &Service{
		Engineers: engineers,
		Reports:   reports,
		Feedback:  feedback,
		Stats:     stats,
	}
}
