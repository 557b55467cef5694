package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Rjayskie12/hazards-sub000/internal/api/handlers/http/admin"
	"github.com/Rjayskie12/hazards-sub000/internal/api/handlers/http/engineer"
	"github.com/Rjayskie12/hazards-sub000/internal/api/handlers/http/public"
	"github.com/Rjayskie12/hazards-sub000/internal/api/handlers/http/system"
	"github.com/Rjayskie12/hazards-sub000/internal/config"
	"github.com/Rjayskie12/hazards-sub000/internal/middleware"
	"github.com/Rjayskie12/hazards-sub000/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	adminHandler := admin.NewHandler(logger, svc.Engineers, svc.Reports, svc.Stats)
	engineerHandler := engineer.NewHandler(logger, svc.Reports, svc.Feedback)
	publicHandler := public.NewHandler(logger, svc.Reports, svc.Feedback)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, adminHandler, engineerHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	cfg *config.Config,
	adminHandler *admin.Handler,
	engineerHandler *engineer.Handler,
	publicHandler *public.Handler,
	systemHandler *system.Handler,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKey(cfg.APIKey))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/stats", adminHandler.AdminStats)
			ar.Get("/coverage", adminHandler.AdminCoverage)

			ar.Route("/engineers", func(er chi.Router) {
				er.Post("/", adminHandler.EngineerCreate)
				er.Get("/", adminHandler.EngineerList)

				er.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.EngineerGet)
					rr.Put("/", adminHandler.EngineerUpdate)
					rr.Delete("/", adminHandler.EngineerDelete)
				})
			})
		})

		// ENGINEER — acting engineer is explicit in the path, never ambient
		api.Route("/engineer/{engineerID}", func(er chi.Router) {
			er.Use(middleware.APIKey(cfg.APIKey))

			er.Get("/reports", engineerHandler.MyReports)
			er.Route("/reports/{id}", func(rr chi.Router) {
				rr.Post("/approve", engineerHandler.ReportApprove)
				rr.Post("/reject", engineerHandler.ReportReject)
				rr.Post("/resolve", engineerHandler.ReportResolve)
				rr.Post("/unresolve", engineerHandler.ReportUnresolve)
			})
			er.Post("/feedback/{id}/status", engineerHandler.FeedbackStatusUpdate)
		})

		// PUBLIC
		api.Route("/public", func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			pr.Post("/reports", publicHandler.ReportSubmit)
			pr.Get("/reports", publicHandler.ReportList)
			pr.Post("/reports/{id}/feedback", publicHandler.FeedbackSubmit)
			pr.Get("/reports/{id}/feedback", publicHandler.FeedbackList)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
