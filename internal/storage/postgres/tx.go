package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"rescueops/internal/domain"
	"rescueops/internal/storage"
	"rescueops/pkg/e"

	"github.com/jackc/pgx/v5"
)

// WithinTx commits when fn returns nil. Any error, or a panic, rolls back.
func (p *Postgres) WithinTx(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	const op = "postgres.WithinTx"

	tx, err := p.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		p.logger.Error("begin tx failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer func() {
		// no-op after a successful commit
		_ = tx.Rollback(context.WithoutCancel(ctx))
	}()

	if err := fn(ctx, &pgTx{tx: tx, logger: p.logger}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

type pgTx struct {
	tx     pgx.Tx
	logger *slog.Logger
}

func (t *pgTx) exec(ctx context.Context, op, query string, args ...any) error {
	if _, err := t.tx.Exec(ctx, query, args...); err != nil {
		t.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (t *pgTx) CreateMission(ctx context.Context, m *domain.Mission) error {
	return t.exec(ctx, "postgres.Tx.CreateMission", `
		INSERT INTO missions (request_id, name, location, objective, note, started_at, created_by, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, m.ID, m.Name, m.Location, m.Objective, m.Note, m.StartedAt, m.CreatedBy, m.Version)
}

func (t *pgTx) AssignOperator(ctx context.Context, a domain.TeamAssignment) error {
	return t.exec(ctx, "postgres.Tx.AssignOperator", `
		INSERT INTO mission_operators (mission_id, operator_id, role) VALUES ($1, $2, $3)
	`, a.MissionID, a.OperatorID, a.Role.String())
}

func (t *pgTx) AssignVehicle(ctx context.Context, a domain.VehicleAssignment) error {
	return t.exec(ctx, "postgres.Tx.AssignVehicle", `
		INSERT INTO mission_vehicles (mission_id, plate) VALUES ($1, $2)
	`, a.MissionID, a.Plate)
}

func (t *pgTx) AssignMaterial(ctx context.Context, a domain.MaterialAssignment) error {
	return t.exec(ctx, "postgres.Tx.AssignMaterial", `
		INSERT INTO mission_materials (mission_id, material_id) VALUES ($1, $2)
	`, a.MissionID, a.MaterialID)
}

func (t *pgTx) CreateOutcome(ctx context.Context, out *domain.MissionOutcome) error {
	return t.exec(ctx, "postgres.Tx.CreateOutcome", `
		INSERT INTO mission_outcomes (mission_id, success_level, comment, ended_at) VALUES ($1, $2, $3, $4)
	`, out.MissionID, out.SuccessLevel, out.Comment, out.EndedAt)
}

func (t *pgTx) BumpMissionVersion(ctx context.Context, missionID int64, version int) error {
	const op = "postgres.Tx.BumpMissionVersion"

	tag, err := t.tx.Exec(ctx, `
		UPDATE missions SET version = version + 1
		WHERE request_id = $1 AND version = $2
	`, missionID, version)
	if err != nil {
		t.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrConflict)
	}
	return nil
}

func (t *pgTx) UpdateRequestState(ctx context.Context, id int64, from, to domain.RequestState) error {
	return updateState(ctx, t.tx, t.logger, "postgres.Tx.UpdateRequestState", id, from, to)
}

func (t *pgTx) AppendEvent(ctx context.Context, ev *domain.RequestEvent) error {
	payload := ev.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	return t.exec(ctx, "postgres.Tx.AppendEvent", `
		INSERT INTO request_events (id, request_id, type, actor_id, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, ev.ID, ev.RequestID, ev.Type, ev.ActorID, payload, ev.CreatedAt)
}

// Events returns the audit log of a request, oldest first.
func (p *Postgres) Events(ctx context.Context, requestID int64) ([]domain.RequestEvent, error) {
	const op = "postgres.Events"

	rows, err := p.Pool.Query(ctx, `
		SELECT id, request_id, type, actor_id, payload, created_at
		FROM request_events
		WHERE request_id = $1
		ORDER BY created_at, id
	`, requestID)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var out []domain.RequestEvent
	for rows.Next() {
		var ev domain.RequestEvent
		if err := rows.Scan(&ev.ID, &ev.RequestID, &ev.Type, &ev.ActorID, &ev.Payload, &ev.CreatedAt); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}
