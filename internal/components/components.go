package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Rjayskie12/hazards-sub000/internal/api"
	"github.com/Rjayskie12/hazards-sub000/internal/config"
	"github.com/Rjayskie12/hazards-sub000/internal/redis"
	"github.com/Rjayskie12/hazards-sub000/internal/service"
	"github.com/Rjayskie12/hazards-sub000/internal/storage/postgres"
	"github.com/Rjayskie12/hazards-sub000/internal/workers"
	"github.com/Rjayskie12/hazards-sub000/pkg/logger"
)

type Components struct {
	logger        *slog.Logger
	HttpServer    *api.Server
	Postgres      *postgres.Postgres
	Redis         *redis.Redis
	EventQueue    *redis.EventQueue
	WebhookSender *service.WebhookSender
	CacheWarmer   *workers.CacheWarmer
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	engineerCache := redis.NewEngineerCache(redisClient)
	eventQueue := redis.NewEventQueue(redisClient.Client, "report-events:queue")

	engineerSvc := service.NewEngineerService(storage.EngineerRepo, engineerCache, logger)
	reportSvc := service.NewReportService(storage.ReportRepo, storage.EngineerRepo, engineerCache, eventQueue, logger)
	feedbackSvc := service.NewFeedbackService(storage.FeedbackRepo, storage.ReportRepo, storage.EngineerRepo, logger)
	statsSvc := service.NewStatsService(storage.EngineerRepo, storage.ReportRepo)

	srv := service.NewService(engineerSvc, reportSvc, feedbackSvc, statsSvc)

	httpServer := api.NewServer(cfg, logger, srv)
	sender := service.NewWebhookSender(logger, cfg.Webhook, eventQueue)
	warmer := workers.NewCacheWarmer(storage.EngineerRepo, engineerCache, 30*time.Second, time.Minute, logger)

	logger.Info("components initialized")

	return &Components{
		logger:        logger,
		HttpServer:    httpServer,
		Postgres:      storage,
		Redis:         redisClient,
		EventQueue:    eventQueue,
		WebhookSender: sender,
		CacheWarmer:   warmer,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components shut down",
		slog.Duration("latency", time.Since(start)))
}
