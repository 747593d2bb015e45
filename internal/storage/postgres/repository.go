package postgres

import (
	"context"

	"rescueops/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is satisfied by both the pool and a pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const requestColumns = `
	id, state, address, description, incident_name, reporter_email, reporter_name,
	coordinates, photo, source_ip, confirmation_token, assigned_admin_id, created_at, updated_at`

func scanRequest(row pgx.Row) (*domain.RescueRequest, error) {
	var (
		req   domain.RescueRequest
		state string
	)
	err := row.Scan(
		&req.ID,
		&state,
		&req.Address,
		&req.Description,
		&req.IncidentName,
		&req.ReporterEmail,
		&req.ReporterName,
		&req.Coordinates,
		&req.Photo,
		&req.SourceIP,
		&req.ConfirmationToken,
		&req.AssignedAdminID,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if req.State, err = domain.ParseRequestState(state); err != nil {
		return nil, err
	}
	return &req, nil
}

func stateNames(states []domain.RequestState) []string {
	out := make([]string, 0, len(states))
	for _, st := range states {
		out = append(out, st.String())
	}
	return out
}
