package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rescueops/internal/domain"
	"rescueops/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewRequests(pool *pgxpool.Pool, logger *slog.Logger) *RequestRepo {
	return &RequestRepo{pool: pool, logger: logger}
}

func (p *RequestRepo) Create(ctx context.Context, req *domain.RescueRequest) error {
	const op = "postgres.Request.Create"

	if req == nil || req.ConfirmationToken == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}
	if req.UpdatedAt.IsZero() {
		req.UpdatedAt = req.CreatedAt
	}

	const query = `
		INSERT INTO rescue_requests (
			state, address, description, incident_name, reporter_email, reporter_name,
			coordinates, photo, source_ip, confirmation_token, assigned_admin_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	err := p.pool.QueryRow(ctx, query,
		req.State.String(),
		req.Address,
		req.Description,
		req.IncidentName,
		req.ReporterEmail,
		req.ReporterName,
		req.Coordinates,
		req.Photo,
		req.SourceIP,
		req.ConfirmationToken,
		req.AssignedAdminID,
		req.CreatedAt,
		req.UpdatedAt,
	).Scan(&req.ID)
	if err != nil {
		p.logger.Error("db insert failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *RequestRepo) GetByID(ctx context.Context, id int64) (*domain.RescueRequest, error) {
	const op = "postgres.Request.GetByID"

	req, err := scanRequest(p.pool.QueryRow(ctx, `SELECT `+requestColumns+` FROM rescue_requests WHERE id = $1`, id))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return req, nil
}

func (p *RequestRepo) GetByToken(ctx context.Context, token string) (*domain.RescueRequest, error) {
	const op = "postgres.Request.GetByToken"

	req, err := scanRequest(p.pool.QueryRow(ctx, `SELECT `+requestColumns+` FROM rescue_requests WHERE confirmation_token = $1`, token))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return req, nil
}

func (p *RequestRepo) ListByState(ctx context.Context, states []domain.RequestState, limit, offset int) ([]*domain.RescueRequest, int64, error) {
	const op = "postgres.Request.ListByState"

	names := stateNames(states)

	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM rescue_requests WHERE state = ANY($1)`, names).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	const query = `
		SELECT ` + requestColumns + `
		FROM rescue_requests
		WHERE state = ANY($1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	list, err := p.list(ctx, op, query, names, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListNonPositive returns closed requests whose outcome is below the top
// success level.
func (p *RequestRepo) ListNonPositive(ctx context.Context, limit, offset int) ([]*domain.RescueRequest, int64, error) {
	const op = "postgres.Request.ListNonPositive"

	var total int64
	if err := p.pool.QueryRow(ctx, countNonPositive, domain.StateClosed.String(), domain.MaxSuccessLevel).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	const query = `
		SELECT ` + requestColumns + `
		FROM rescue_requests r
		JOIN mission_outcomes o ON o.mission_id = r.id
		WHERE r.state = $1 AND o.success_level < $2
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $3 OFFSET $4
	`
	list, err := p.list(ctx, op, query, domain.StateClosed.String(), domain.MaxSuccessLevel, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (p *RequestRepo) UpdateState(ctx context.Context, id int64, from, to domain.RequestState) error {
	return updateState(ctx, p.pool, p.logger, "postgres.Request.UpdateState", id, from, to)
}

func (p *RequestRepo) list(ctx context.Context, op, query string, args ...any) ([]*domain.RescueRequest, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]*domain.RescueRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			p.logger.Error("db scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}

const countNonPositive = `
	SELECT COUNT(*)
	FROM rescue_requests r
	JOIN mission_outcomes o ON o.mission_id = r.id
	WHERE r.state = $1 AND o.success_level < $2
`

// updateState is the guarded transition shared by the repository and the
// transaction: zero affected rows means the request left from.
func updateState(ctx context.Context, q querier, logger *slog.Logger, op string, id int64, from, to domain.RequestState) error {
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("%s: %s -> %s: %w", op, from, to, e.ErrInvalidInput)
	}

	tag, err := q.Exec(ctx, `
		UPDATE rescue_requests
		SET state = $3, updated_at = now()
		WHERE id = $1 AND state = $2
	`, id, from.String(), to.String())
	if err != nil {
		logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrConflict)
	}
	return nil
}
