package postgres

import (
	"context"
	"log/slog"

	"rescueops/internal/domain"
	"rescueops/pkg/e"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OperatorRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewOperators(pool *pgxpool.Pool, logger *slog.Logger) *OperatorRepo {
	return &OperatorRepo{pool: pool, logger: logger}
}

const operatorStatusQuery = `
	SELECT o.id, o.name, o.surname, o.email,
		COUNT(r.id) FILTER (WHERE r.state = $1) AS active,
		COUNT(r.id) FILTER (WHERE r.state = $2) AS completed
	FROM operators o
	LEFT JOIN mission_operators mo ON mo.operator_id = o.id
	LEFT JOIN rescue_requests r ON r.id = mo.mission_id
`

func scanOperatorStatus(row pgx.Row) (*domain.OperatorStatus, error) {
	var st domain.OperatorStatus
	if err := row.Scan(&st.ID, &st.Name, &st.Surname, &st.Email, &st.MissionsActive, &st.MissionsCompleted); err != nil {
		return nil, err
	}
	st.Available = st.MissionsActive == 0
	return &st, nil
}

// ListOperators returns every operator with the number of active and closed
// missions it is assigned to.
func (p *OperatorRepo) ListOperators(ctx context.Context) ([]*domain.OperatorStatus, error) {
	const op = "postgres.Operator.List"

	rows, err := p.pool.Query(ctx, operatorStatusQuery+`
		GROUP BY o.id
		ORDER BY o.id
	`, domain.StateActive.String(), domain.StateClosed.String())
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]*domain.OperatorStatus, 0)
	for rows.Next() {
		st, err := scanOperatorStatus(rows)
		if err != nil {
			p.logger.Error("db scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}

func (p *OperatorRepo) GetOperator(ctx context.Context, id int64) (*domain.OperatorStatus, error) {
	const op = "postgres.Operator.Get"

	row := p.pool.QueryRow(ctx, operatorStatusQuery+`
		WHERE o.id = $3
		GROUP BY o.id
	`, domain.StateActive.String(), domain.StateClosed.String(), id)

	st, err := scanOperatorStatus(row)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return st, nil
}

// OperatorEmails keeps the order of ids and skips operators without an email.
func (p *OperatorRepo) OperatorEmails(ctx context.Context, ids []int64) ([]string, error) {
	const op = "postgres.Operator.Emails"

	if len(ids) == 0 {
		return []string{}, nil
	}

	rows, err := p.pool.Query(ctx, `
		SELECT email
		FROM operators
		WHERE id = ANY($1) AND email <> ''
		ORDER BY array_position($1, id)
	`, ids)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]string, 0, len(ids))
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, email)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}
