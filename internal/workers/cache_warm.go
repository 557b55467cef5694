package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/Rjayskie12/hazards-sub000/internal/domain"
)

type EngineerLister interface {
	List(ctx context.Context) ([]domain.Engineer, error)
}

type EngineerCache interface {
	SetActive(ctx context.Context, engineers []domain.Engineer, ttl time.Duration) error
}

// CacheWarmer keeps the active-engineer snapshot warm so coverage listings
// rarely fall through to the database. It refreshes on a fixed ticker; a
// failed refresh just leaves the previous snapshot to expire.
type CacheWarmer struct {
	repo     EngineerLister
	cache    EngineerCache
	interval time.Duration
	ttl      time.Duration
	logger   *slog.Logger
}

func NewCacheWarmer(repo EngineerLister, cache EngineerCache, interval, ttl time.Duration, logger *slog.Logger) *CacheWarmer {
	return &CacheWarmer{
		repo:     repo,
		cache:    cache,
		interval: interval,
		ttl:      ttl,
		logger:   logger,
	}
}

func (w *CacheWarmer) Run(ctx context.Context) {
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("cache warmer stopped", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *CacheWarmer) refresh(ctx context.Context) {
	engineers, err := w.repo.List(ctx)
	if err != nil {
		w.logger.Warn("cache warm: list engineers failed", slog.Any("error", err))
		return
	}

	active := make([]domain.Engineer, 0, len(engineers))
	for _, eng := range engineers {
		if eng.Status == domain.EngineerActive {
			active = append(active, eng)
		}
	}

	if err := w.cache.SetActive(ctx, active, w.ttl); err != nil {
		w.logger.Warn("cache warm: set failed", slog.Any("error", err))
		return
	}

	w.logger.Debug("engineer snapshot refreshed", slog.Int("active", len(active)))
}
