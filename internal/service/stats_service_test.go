package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Rjayskie12/hazards-sub000/internal/domain"
	"github.com/Rjayskie12/hazards-sub000/internal/service"
	mock_service "github.com/Rjayskie12/hazards-sub000/internal/service/mocks"
)

func TestStatsService_Dashboard_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engineers := mock_service.NewMockEngineerRepository(ctrl)
	reports := mock_service.NewMockReportRepository(ctrl)

	active := coveringEngineer()
	inactive := coveringEngineer()
	inactive.Status = domain.EngineerInactive
	located := nearbyReport()
	unlocated := &domain.HazardReport{Status: domain.ReportPending, Severity: domain.SeverityMinor}

	engineers.EXPECT().List(gomock.Any()).Return([]domain.Engineer{*active, *inactive}, nil).Times(1)
	reports.EXPECT().List(gomock.Any()).Return([]domain.HazardReport{*located, *unlocated}, nil).Times(1)

	svc := service.NewStatsService(engineers, reports)

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.TotalReports != 2 {
		t.Fatalf("total must include the unlocated report, got %d", stats.TotalReports)
	}
	if stats.CoveredReports+stats.UncoveredReports != 1 {
		t.Fatalf("only the located report is split, got %d/%d", stats.CoveredReports, stats.UncoveredReports)
	}
	if stats.ActiveEngineers != 1 || stats.InactiveEngineers != 1 {
		t.Fatalf("engineer counts wrong: %+v", stats)
	}
	if len(stats.Workload) != 2 {
		t.Fatalf("workload lists every engineer, got %d", len(stats.Workload))
	}
}

func TestStatsService_Dashboard_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engineers := mock_service.NewMockEngineerRepository(ctrl)
	reports := mock_service.NewMockReportRepository(ctrl)

	engineers.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	svc := service.NewStatsService(engineers, reports)
	if _, err := svc.Dashboard(context.Background()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
