package postgres

import (
	"context"
	"log/slog"

	"rescueops/internal/domain"
	"rescueops/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStats(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (p *StatsRepo) CountByState(ctx context.Context) (map[domain.RequestState]int64, error) {
	const op = "postgres.Stats.CountByState"

	rows, err := p.pool.Query(ctx, `SELECT state, COUNT(*) FROM rescue_requests GROUP BY state`)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make(map[domain.RequestState]int64, len(domain.AllStates))
	for rows.Next() {
		var (
			name string
			cnt  int64
		)
		if err := rows.Scan(&name, &cnt); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		state, err := domain.ParseRequestState(name)
		if err != nil {
			p.logger.Warn("unknown state in rescue_requests", slog.String("op", op), slog.String("state", name))
			continue
		}
		out[state] = cnt
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}

func (p *StatsRepo) CountNonPositive(ctx context.Context) (int64, error) {
	const op = "postgres.Stats.CountNonPositive"

	var cnt int64
	if err := p.pool.QueryRow(ctx, countNonPositive, domain.StateClosed.String(), domain.MaxSuccessLevel).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return cnt, nil
}
