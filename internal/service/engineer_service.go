package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Rjayskie12/hazards-sub000/internal/domain"
	"github.com/Rjayskie12/hazards-sub000/pkg/e"
)

const engineerCacheTTL = 30 * time.Second

type engineerService struct {
	repo   EngineerRepository
	cache  EngineerCache
	logger *slog.Logger
}

func NewEngineerService(repo EngineerRepository, cache EngineerCache, logger *slog.Logger) EngineerAdminService {
	return &engineerService{repo: repo, cache: cache, logger: logger}
}

func (s *engineerService) Create(ctx context.Context, req domain.CreateEngineerRequest) (uuid.UUID, error) {
	home, err := coordinateFrom(req.Lat, req.Lng)
	if err != nil {
		return uuid.Nil, err
	}

	radius := domain.DefaultCoverageRadiusMeters
	if req.CoverageRadiusMeters != nil {
		radius = *req.CoverageRadiusMeters
	}

	eng := &domain.Engineer{
		ID:                   uuid.New(),
		FullName:             req.FullName,
		Email:                req.Email,
		Phone:                req.Phone,
		Specialization:       req.Specialization,
		Status:               domain.EngineerActive,
		Home:                 home,
		CoverageRadiusMeters: radius,
	}

	if err := s.repo.Create(ctx, eng); err != nil {
		return uuid.Nil, err
	}

	s.refreshCache(ctx)
	return eng.ID, nil
}

func (s *engineerService) List(ctx context.Context) ([]domain.Engineer, error) {
	return s.repo.List(ctx)
}

func (s *engineerService) Get(ctx context.Context, id uuid.UUID) (*domain.Engineer, error) {
	return s.repo.Get(ctx, id)
}

func (s *engineerService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateEngineerRequest) error {
	eng, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if req.FullName != nil {
		eng.FullName = *req.FullName
	}
	if req.Email != nil {
		eng.Email = *req.Email
	}
	if req.Phone != nil {
		eng.Phone = *req.Phone
	}
	if req.Specialization != nil {
		eng.Specialization = *req.Specialization
	}
	if req.Status != nil {
		eng.Status = *req.Status
	}
	if req.CoverageRadiusMeters != nil {
		eng.CoverageRadiusMeters = *req.CoverageRadiusMeters
	}
	if req.Lat != nil || req.Lng != nil {
		home, err := coordinateFrom(req.Lat, req.Lng)
		if err != nil {
			return err
		}
		eng.Home = home
	}

	if err := s.repo.Update(ctx, eng); err != nil {
		return err
	}

	s.refreshCache(ctx)
	return nil
}

func (s *engineerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.refreshCache(ctx)
	return nil
}

// refreshCache re-snapshots active engineers after a mutation. Best effort:
// a stale snapshot only delays coverage listings, never authorization, which
// always reads the repository.
func (s *engineerService) refreshCache(ctx context.Context) {
	engineers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("engineer cache refresh: list failed", slog.Any("error", err))
		return
	}
	active := make([]domain.Engineer, 0, len(engineers))
	for _, eng := range engineers {
		if eng.Status == domain.EngineerActive {
			active = append(active, eng)
		}
	}
	if err := s.cache.SetActive(ctx, active, engineerCacheTTL); err != nil {
		s.logger.Warn("engineer cache refresh: set failed", slog.Any("error", err))
	}
}

// coordinateFrom applies the both-or-none invariant: a record with only one
// of lat/lng set is invalid input, nil/nil means unlocated.
func coordinateFrom(lat, lng *float64) (*domain.Coordinate, error) {
	if (lat == nil) != (lng == nil) {
		return nil, e.Wrap("coordinate", e.ErrInvalidInput)
	}
	if lat == nil {
		return nil, nil
	}
	return &domain.Coordinate{Lat: *lat, Lng: *lng}, nil
}
