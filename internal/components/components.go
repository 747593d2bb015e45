package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"rescueops/internal/admission"
	"rescueops/internal/api"
	"rescueops/internal/api/handlers/http/system"
	"rescueops/internal/clock"
	"rescueops/internal/config"
	"rescueops/internal/metrics"
	"rescueops/internal/middleware"
	"rescueops/internal/service"
	"rescueops/internal/storage"
	"rescueops/internal/storage/memory"
	"rescueops/internal/storage/postgres"
	"rescueops/internal/storage/redis"
	"rescueops/internal/workers"
	"rescueops/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Admission  *admission.Controller
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Relay      *workers.NotificationRelay
	Metrics    *metrics.Metrics

	shutdownOnce sync.Once
}

// repositories is what a storage driver has to provide to the services.
type repositories struct {
	requests  service.RequestRepository
	missions  service.MissionRepository
	operators service.OperatorRepository
	stats     service.StatsRepository
	tx        storage.Transactor
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	c := &Components{logger: logger, Metrics: metrics.New()}
	checks := map[string]system.Check{}

	var repos repositories
	switch cfg.Storage {
	case config.StorageMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")
		store := memory.New()
		repos = repositories{requests: store, missions: store, operators: store, stats: store, tx: store}
	default:
		logger.Info("Initializing Postgres")
		pg, err := postgres.NewPostgres(ctx, cfg, logger)
		if err != nil {
			logger.Error("Failed to init postgres", slog.Any("error", err))
			return nil, fmt.Errorf("failed to init postgres: %w", err)
		}
		c.Postgres = pg
		repos = repositories{requests: pg.Requests, missions: pg.Missions, operators: pg.Operators, stats: pg.Stat, tx: pg}
		checks["postgres"] = func(ctx context.Context) error { return pg.Pool.Ping(ctx) }
	}

	if cfg.NeedsRedis() {
		logger.Info("Initializing Redis")
		rds, err := redis.NewRedis(ctx, cfg, logger)
		if err != nil {
			c.ShutdownAll()
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		c.Redis = rds
		checks["redis"] = func(ctx context.Context) error { return rds.Client.Ping(ctx).Err() }
	}

	var backend admission.Backend = admission.NewMemoryBackend()
	if cfg.Admission.Backend == config.AdmissionRedis {
		backend = redis.NewAdmissionBackend(c.Redis)
	}
	c.Admission = admission.New(admission.Config{
		Window:     cfg.Admission.Window,
		Limit:      cfg.Admission.Limit,
		SweepEvery: cfg.Admission.SweepEvery,
	}, backend, clock.Real(), logger, c.Metrics)

	var notifier service.Notifier
	if cfg.Notify.Enabled {
		queue := redis.NewNotificationQueue(c.Redis.Client, cfg.Notify.QueueKey)
		notifier = queue
		if cfg.Notify.WebhookURL != "" {
			c.Relay = workers.NewNotificationRelay(logger, queue, cfg.Notify.WebhookURL, cfg.Notify.WebhookWait, c.Metrics)
		}
	}

	srv := newService(repos, notifier, clock.Real(), logger, c.Metrics)

	c.HttpServer = api.NewServer(ctx, cfg, logger, srv, api.Deps{
		Admission: c.Admission,
		Verifier:  middleware.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer),
		Registry:  c.Metrics.Registry,
		Checks:    checks,
	})
	logger.Info("Initialized server",
		slog.String("storage", cfg.Storage),
		slog.String("admission", cfg.Admission.Backend),
		slog.Bool("notify", notifier != nil),
	)

	return c, nil
}

func newService(repos repositories, notifier service.Notifier, clk clock.Clock, logger *slog.Logger, m *metrics.Metrics) *service.Service {
	return service.NewService(
		service.NewRequestLifecycle(repos.requests, repos.tx, notifier, clk, logger, m),
		service.NewMissionAssigner(repos.requests, repos.missions, repos.operators, repos.tx, notifier, clk, logger, m),
		service.NewMissionCloser(repos.requests, repos.missions, repos.tx, clk, logger, m),
		service.NewRequestQueries(repos.requests, repos.missions, logger, m),
		service.NewOperatorRoster(repos.operators, logger, m),
		service.NewStatsService(repos.stats, logger, m),
	)
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
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

// ShutdownAll releases every component. It is safe to call more than once.
func (c *Components) ShutdownAll() {
	c.shutdownOnce.Do(func() {
		start := time.Now()
		c.logger.Info("Shutting down components")

		if c.Admission != nil {
			if err := c.Admission.Close(); err != nil {
				c.logger.Error("Admission close failed", slog.Any("error", err))
			}
		}
		if c.Postgres != nil {
			c.Postgres.Close()
		}
		if c.Redis != nil {
			if err := c.Redis.Close(); err != nil {
				c.logger.Error("Redis close failed", slog.Any("error", err))
			}
		}

		c.logger.Info("All components stopped", slog.Duration("latency", time.Since(start)))
	})
}
