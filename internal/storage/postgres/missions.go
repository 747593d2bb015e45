package postgres

import (
	"context"
	"log/slog"

	"rescueops/internal/domain"
	"rescueops/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MissionRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewMissions(pool *pgxpool.Pool, logger *slog.Logger) *MissionRepo {
	return &MissionRepo{pool: pool, logger: logger}
}

func (p *MissionRepo) GetMission(ctx context.Context, id int64) (*domain.Mission, error) {
	const op = "postgres.Mission.Get"

	const query = `
		SELECT request_id, name, location, objective, note, started_at, created_by, version
		FROM missions
		WHERE request_id = $1
	`

	var m domain.Mission
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.Name,
		&m.Location,
		&m.Objective,
		&m.Note,
		&m.StartedAt,
		&m.CreatedBy,
		&m.Version,
	)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return &m, nil
}

func (p *MissionRepo) GetOutcome(ctx context.Context, missionID int64) (*domain.MissionOutcome, error) {
	const op = "postgres.Outcome.Get"

	var out domain.MissionOutcome
	err := p.pool.QueryRow(ctx, `
		SELECT mission_id, success_level, comment, ended_at
		FROM mission_outcomes
		WHERE mission_id = $1
	`, missionID).Scan(&out.MissionID, &out.SuccessLevel, &out.Comment, &out.EndedAt)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return &out, nil
}

// GetResources reads the team, vehicles and materials of a mission. A mission
// without assignments yields empty slices, not an error.
func (p *MissionRepo) GetResources(ctx context.Context, missionID int64) (*domain.MissionResources, error) {
	const op = "postgres.Mission.Resources"

	res := &domain.MissionResources{
		Team:      []domain.TeamAssignment{},
		Vehicles:  []domain.VehicleAssignment{},
		Materials: []domain.MaterialAssignment{},
	}

	rows, err := p.pool.Query(ctx, `
		SELECT operator_id, role
		FROM mission_operators
		WHERE mission_id = $1
		ORDER BY role, operator_id
	`, missionID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	for rows.Next() {
		a := domain.TeamAssignment{MissionID: missionID}
		var role string
		if err := rows.Scan(&a.OperatorID, &role); err != nil {
			rows.Close()
			return nil, e.WrapError(ctx, op, err)
		}
		if a.Role, err = domain.ParseOperatorRole(role); err != nil {
			rows.Close()
			return nil, e.Wrap(op, err)
		}
		res.Team = append(res.Team, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	rows, err = p.pool.Query(ctx, `
		SELECT plate
		FROM mission_vehicles
		WHERE mission_id = $1
		ORDER BY plate
	`, missionID)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	for rows.Next() {
		a := domain.VehicleAssignment{MissionID: missionID}
		if err := rows.Scan(&a.Plate); err != nil {
			rows.Close()
			return nil, e.WrapError(ctx, op, err)
		}
		res.Vehicles = append(res.Vehicles, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	rows, err = p.pool.Query(ctx, `
		SELECT material_id
		FROM mission_materials
		WHERE mission_id = $1
		ORDER BY material_id
	`, missionID)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()
	for rows.Next() {
		a := domain.MaterialAssignment{MissionID: missionID}
		if err := rows.Scan(&a.MaterialID); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		res.Materials = append(res.Materials, a)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return res, nil
}
