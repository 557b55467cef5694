package service

import (
	"context"

	"github.com/Rjayskie12/hazards-sub000/internal/coverage"
	"github.com/Rjayskie12/hazards-sub000/internal/domain"
)

type statsService struct {
	engineers EngineerRepository
	reports   ReportRepository
}

func NewStatsService(engineers EngineerRepository, reports ReportRepository) StatsService {
	return &statsService{engineers: engineers, reports: reports}
}

// Dashboard recomputes admin-mode matching from the current snapshot and
// aggregates it. Reads the repository directly: the dashboard counts
// inactive engineers too, which the active-only cache cannot supply.
func (s *statsService) Dashboard(ctx context.Context) (*domain.CoverageStats, error) {
	engineers, err := s.engineers.List(ctx)
	if err != nil {
		return nil, err
	}
	reports, err := s.reports.List(ctx)
	if err != nil {
		return nil, err
	}

	matches := coverage.MatchAdmin(engineers, reports)
	stats := coverage.Aggregate(engineers, reports, matches)
	return &stats, nil
}
