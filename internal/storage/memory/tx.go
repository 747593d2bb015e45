package memory

import (
	"context"
	"fmt"
	"time"

	"rescueops/internal/domain"
	"rescueops/pkg/e"
)

type tx struct {
	d      *data
	strict bool
	now    func() time.Time
}

func (t *tx) CreateMission(_ context.Context, m *domain.Mission) error {
	const op = "memory.Tx.CreateMission"

	if _, ok := t.d.requests[m.ID]; !ok {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if _, ok := t.d.missions[m.ID]; ok {
		return fmt.Errorf("%s: %w", op, e.ErrUniqueViolation)
	}
	t.d.missions[m.ID] = *m
	return nil
}

func (t *tx) AssignOperator(_ context.Context, a domain.TeamAssignment) error {
	const op = "memory.Tx.AssignOperator"

	if err := t.requireMission(op, a.MissionID); err != nil {
		return err
	}
	if _, ok := t.d.operators[a.OperatorID]; t.strict && !ok {
		return fmt.Errorf("%s: operator %d: %w", op, a.OperatorID, e.ErrInvalidInput)
	}
	for _, existing := range t.d.team[a.MissionID] {
		if existing.OperatorID == a.OperatorID {
			return fmt.Errorf("%s: %w", op, e.ErrUniqueViolation)
		}
	}
	t.d.team[a.MissionID] = append(t.d.team[a.MissionID], a)
	return nil
}

func (t *tx) AssignVehicle(_ context.Context, a domain.VehicleAssignment) error {
	const op = "memory.Tx.AssignVehicle"

	if err := t.requireMission(op, a.MissionID); err != nil {
		return err
	}
	if _, ok := t.d.vehicleCatalog[a.Plate]; t.strict && !ok {
		return fmt.Errorf("%s: vehicle %s: %w", op, a.Plate, e.ErrInvalidInput)
	}
	for _, existing := range t.d.vehicles[a.MissionID] {
		if existing.Plate == a.Plate {
			return fmt.Errorf("%s: %w", op, e.ErrUniqueViolation)
		}
	}
	t.d.vehicles[a.MissionID] = append(t.d.vehicles[a.MissionID], a)
	return nil
}

func (t *tx) AssignMaterial(_ context.Context, a domain.MaterialAssignment) error {
	const op = "memory.Tx.AssignMaterial"

	if err := t.requireMission(op, a.MissionID); err != nil {
		return err
	}
	if _, ok := t.d.materialCatalog[a.MaterialID]; t.strict && !ok {
		return fmt.Errorf("%s: material %d: %w", op, a.MaterialID, e.ErrInvalidInput)
	}
	for _, existing := range t.d.materials[a.MissionID] {
		if existing.MaterialID == a.MaterialID {
			return fmt.Errorf("%s: %w", op, e.ErrUniqueViolation)
		}
	}
	t.d.materials[a.MissionID] = append(t.d.materials[a.MissionID], a)
	return nil
}

func (t *tx) CreateOutcome(_ context.Context, out *domain.MissionOutcome) error {
	const op = "memory.Tx.CreateOutcome"

	if err := t.requireMission(op, out.MissionID); err != nil {
		return err
	}
	if out.SuccessLevel < domain.MinSuccessLevel || out.SuccessLevel > domain.MaxSuccessLevel {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if _, ok := t.d.outcomes[out.MissionID]; ok {
		return fmt.Errorf("%s: %w", op, e.ErrUniqueViolation)
	}
	t.d.outcomes[out.MissionID] = *out
	return nil
}

func (t *tx) BumpMissionVersion(_ context.Context, missionID int64, version int) error {
	m, ok := t.d.missions[missionID]
	if !ok || m.Version != version {
		return fmt.Errorf("memory.Tx.BumpMissionVersion: %w", e.ErrConflict)
	}
	m.Version++
	t.d.missions[missionID] = m
	return nil
}

func (t *tx) UpdateRequestState(_ context.Context, id int64, from, to domain.RequestState) error {
	return t.d.updateState(id, from, to, t.now())
}

func (t *tx) AppendEvent(_ context.Context, ev *domain.RequestEvent) error {
	t.d.events = append(t.d.events, *ev)
	return nil
}

func (t *tx) requireMission(op string, id int64) error {
	if _, ok := t.d.missions[id]; !ok {
		return fmt.Errorf("%s: mission %d: %w", op, id, e.ErrInvalidInput)
	}
	return nil
}
