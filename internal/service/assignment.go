package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"rescueops/internal/clock"
	"rescueops/internal/domain"
	"rescueops/internal/metrics"
	"rescueops/internal/storage"
	"rescueops/pkg/e"
)

type missionAssigner struct {
	reporter
	requests  RequestRepository
	missions  MissionRepository
	operators OperatorRepository
	tx        storage.Transactor
	notifier  Notifier
	clock     clock.Clock
}

func NewMissionAssigner(
	requests RequestRepository,
	missions MissionRepository,
	operators OperatorRepository,
	tx storage.Transactor,
	notifier Notifier,
	clk clock.Clock,
	logger *slog.Logger,
	m *metrics.Metrics,
) MissionAssigner {
	return &missionAssigner{
		reporter:  reporter{logger: logger.With(slog.String("component", "missions")), metrics: m},
		requests:  requests,
		missions:  missions,
		operators: operators,
		tx:        tx,
		notifier:  notifier,
		clock:     clk,
	}
}

func (s *missionAssigner) CreateMission(ctx context.Context, in domain.CreateMissionInput) (*domain.MissionAssignment, error) {
	const op = "missions.CreateMission"

	req, err := s.requests.GetByID(ctx, in.RequestID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, s.reject(op, e.NotFound(e.CodeRequestNotFound, fmt.Sprintf("request %d not found", in.RequestID)))
		}
		return nil, s.storageFailure(op, err)
	}
	// an existing mission is reported before the state it moved the request to
	_, err = s.missions.GetMission(ctx, req.ID)
	switch {
	case err == nil:
		return nil, s.reject(op, e.Conflict(e.CodeDuplicateMission, fmt.Sprintf("request %d already has a mission", req.ID)))
	case !errors.Is(err, e.ErrNotFound):
		return nil, s.storageFailure(op, err)
	}

	if req.State != domain.StateValidated {
		return nil, s.reject(op, e.InvalidState(e.CodeInvalidRequestState,
			fmt.Sprintf("request %d is %s, a mission needs a validated request", req.ID, req.State)))
	}

	team := domain.ResolveTeam(in.Team, in.Operators)
	if !domain.HasCaposquadra(team) {
		return nil, s.reject(op, e.Validation(e.CodeNoCaposquadra, "caposquadra", "at least one caposquadra is required"))
	}

	now := s.clock.Now().UTC()
	mission := &domain.Mission{
		ID:        req.ID,
		Name:      in.Name,
		Location:  in.Location,
		Objective: in.Objective,
		Note:      "",
		StartedAt: now,
		CreatedBy: in.AdminID,
		Version:   1,
	}
	out := &domain.MissionAssignment{Mission: mission}
	for _, m := range team {
		out.Team = append(out.Team, domain.TeamAssignment{MissionID: mission.ID, OperatorID: m.OperatorID, Role: m.Role})
	}
	for _, plate := range domain.NormalizePlates(in.VehiclePlates) {
		out.Vehicles = append(out.Vehicles, domain.VehicleAssignment{MissionID: mission.ID, Plate: plate})
	}
	for _, id := range domain.UniqueIDs(in.MaterialIDs) {
		out.Materials = append(out.Materials, domain.MaterialAssignment{MissionID: mission.ID, MaterialID: id})
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		if err := tx.CreateMission(ctx, mission); err != nil {
			if errors.Is(err, e.ErrUniqueViolation) {
				return e.Conflict(e.CodeDuplicateMission, fmt.Sprintf("request %d already has a mission", req.ID))
			}
			return err
		}
		for _, a := range out.Team {
			if err := tx.AssignOperator(ctx, a); err != nil {
				return assignmentError(err, fmt.Sprintf("operator %d", a.OperatorID))
			}
		}
		for _, a := range out.Vehicles {
			if err := tx.AssignVehicle(ctx, a); err != nil {
				return assignmentError(err, fmt.Sprintf("vehicle %s", a.Plate))
			}
		}
		for _, a := range out.Materials {
			if err := tx.AssignMaterial(ctx, a); err != nil {
				return assignmentError(err, fmt.Sprintf("material %d", a.MaterialID))
			}
		}
		if err := tx.UpdateRequestState(ctx, req.ID, domain.StateValidated, domain.StateActive); err != nil {
			if errors.Is(err, e.ErrConflict) {
				return e.InvalidState(e.CodeStateChanged, fmt.Sprintf("request %d changed state during mission creation", req.ID))
			}
			return err
		}
		return tx.AppendEvent(ctx, domain.NewRequestEvent(req.ID, domain.EventMissionCreated, &in.AdminID, map[string]any{
			"operators": len(out.Team),
			"vehicles":  len(out.Vehicles),
			"materials": len(out.Materials),
		}, now))
	})
	if err != nil {
		return nil, s.storageFailure(op, err)
	}

	s.metrics.Transition(domain.StateValidated.String(), domain.StateActive.String())
	s.logger.Info("mission created",
		slog.Int64("mission_id", mission.ID),
		slog.Int64("admin_id", in.AdminID),
		slog.Int("operators", len(out.Team)),
	)

	out.OperatorEmails = s.resolveEmails(ctx, out.Team)

	if s.notifier != nil && len(out.OperatorEmails) > 0 {
		s.notify(ctx, domain.NoticeMissionCreated, func(ctx context.Context) error {
			return s.notifier.MissionCreated(ctx, domain.MissionNotice{
				MissionID:  mission.ID,
				Name:       mission.Name,
				Location:   mission.Location,
				Recipients: out.OperatorEmails,
				CreatedAt:  now,
			})
		})
	}

	return out, nil
}

// resolveEmails never fails the operation: the mission is already committed.
func (s *missionAssigner) resolveEmails(ctx context.Context, team []domain.TeamAssignment) []string {
	ids := make([]int64, 0, len(team))
	for _, a := range team {
		ids = append(ids, a.OperatorID)
	}
	emails, err := s.operators.OperatorEmails(ctx, ids)
	if err != nil {
		s.logger.Warn("operator emails lookup failed", slog.Any("error", err))
		return []string{}
	}
	out := make([]string, 0, len(emails))
	for _, em := range emails {
		if em = domain.NormalizeEmail(em); em != "" {
			out = append(out, em)
		}
	}
	return out
}

func assignmentError(err error, what string) error {
	if errors.Is(err, e.ErrInvalidInput) || errors.Is(err, e.ErrUniqueViolation) {
		return e.Validation(e.CodeInvalidAssignment, "", fmt.Sprintf("cannot assign %s", what))
	}
	return err
}
