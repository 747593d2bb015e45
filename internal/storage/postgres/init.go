package postgres

import (
	"context"
	"log/slog"
	"time"

	"rescueops/internal/config"
	"rescueops/pkg/e"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	Pool      *pgxpool.Pool
	Requests  *RequestRepo
	Missions  *MissionRepo
	Operators *OperatorRepo
	Stat      *StatsRepo
	logger    *slog.Logger
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	logger.Info("Connecting to Postgres",
		slog.String("host", cfg.Postgres.Host),
		slog.Int("port", cfg.Postgres.Port),
		slog.String("db", cfg.Postgres.Database),
	)

	configNew, err := pgxpool.ParseConfig(cfg.Postgres.DSN())
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	configNew.MaxConns = cfg.Postgres.MaxConns
	configNew.MinConns = cfg.Postgres.MinConns
	configNew.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, configNew)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	logger.Info("Pinging Postgres database")
	if err := ping(ctx, pool, cfg.Connect.MaxElapsed, logger); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	if cfg.Postgres.AutoMigrate {
		if err := Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, err
		}
	}

	return New(pool, logger), nil
}

// New builds the repositories on an existing pool.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Postgres {
	logger = logger.With(slog.String("component", "postgres"))
	return &Postgres{
		Pool:      pool,
		Requests:  NewRequests(pool, logger),
		Missions:  NewMissions(pool, logger),
		Operators: NewOperators(pool, logger),
		Stat:      NewStats(pool, logger),
		logger:    logger,
	}
}

func ping(ctx context.Context, pool *pgxpool.Pool, maxElapsed time.Duration, logger *slog.Logger) error {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = maxElapsed

	return backoff.RetryNotify(
		func() error { return pool.Ping(ctx) },
		backoff.WithContext(b, ctx),
		func(err error, wait time.Duration) {
			logger.Warn("Postgres not ready, retrying", slog.Any("error", err), slog.Duration("wait", wait))
		},
	)
}

func (p *Postgres) Close() {
	p.Pool.Close()
}
