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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rescueops/internal/api/handlers/http/admin"
	"rescueops/internal/api/handlers/http/public"
	"rescueops/internal/api/handlers/http/system"
	"rescueops/internal/config"
	"rescueops/internal/domain"
	"rescueops/internal/middleware"
	"rescueops/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

// Deps are the collaborators the HTTP layer needs besides the services.
type Deps struct {
	Admission public.Admitter
	Verifier  *middleware.Verifier
	Registry  *prometheus.Registry
	Checks    map[string]system.Check
}

func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service, deps Deps) *Server {
	adminHandler := admin.NewHandler(logger, svc.Queries, svc.Lifecycle, svc.Missions, svc.Closure, svc.Roster, svc.Stats)
	publicHandler := public.NewHandler(logger, deps.Admission, svc.Lifecycle)
	systemHandler := system.NewHandler(logger, deps.Checks)

	r := InitRouter(ctx, cfg, adminHandler, publicHandler, systemHandler, deps, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	ctx context.Context,
	cfg *config.Config,
	adminHandler *admin.Handler,
	publicHandler *public.Handler,
	systemHandler *system.Handler,
	deps Deps,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	if cfg.Http.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// PUBLIC: submissions are gated by admission control, not by the limiter
		api.Route("/requests", func(pr chi.Router) {
			pr.Post("/", publicHandler.SubmitRequest)

			pr.Group(func(cr chi.Router) {
				cr.Use(middleware.Limit(ctx, cfg.AdminLimit.RPS, cfg.AdminLimit.Burst, 10*time.Minute, logger))
				cr.Get("/confirm", publicHandler.ConfirmRequest)
				cr.Post("/{id}/confirm", publicHandler.ConfirmRequestByID)
			})
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	r.Route("/admin", func(ar chi.Router) {
		ar.Use(middleware.Limit(ctx, cfg.AdminLimit.RPS, cfg.AdminLimit.Burst, 10*time.Minute, logger))
		ar.Use(middleware.Authenticate(deps.Verifier, logger))
		ar.Use(middleware.RequireRole(domain.RoleAdmin))

		ar.Get("/stats", adminHandler.AdminStats)
		ar.Get("/operators", adminHandler.AdminOperatorList)
		ar.Get("/operators/{id}", adminHandler.AdminOperatorGet)

		ar.Route("/requests", func(rr chi.Router) {
			rr.Get("/", adminHandler.AdminRequestList)
			rr.Get("/non-positive", adminHandler.AdminRequestNonPositive)
			rr.Get("/assignable", adminHandler.AdminRequestAssignable)
			rr.Get("/{id}", adminHandler.AdminRequestGet)
			rr.Put("/{id}/cancel", adminHandler.AdminRequestCancel)
		})

		ar.Route("/missions", func(mr chi.Router) {
			mr.Post("/", adminHandler.AdminMissionCreate)
			mr.Put("/{id}/close", adminHandler.AdminMissionClose)
		})
	})

	if deps.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
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
		s.logger.Info("Starting HTTP server",
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
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
