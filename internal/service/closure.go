package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"rescueops/internal/clock"
	"rescueops/internal/domain"
	"rescueops/internal/metrics"
	"rescueops/internal/storage"
	"rescueops/pkg/e"
)

type missionCloser struct {
	reporter
	requests RequestRepository
	missions MissionRepository
	tx       storage.Transactor
	clock    clock.Clock
}

func NewMissionCloser(
	requests RequestRepository,
	missions MissionRepository,
	tx storage.Transactor,
	clk clock.Clock,
	logger *slog.Logger,
	m *metrics.Metrics,
) MissionCloser {
	return &missionCloser{
		reporter: reporter{logger: logger.With(slog.String("component", "closure")), metrics: m},
		requests: requests,
		missions: missions,
		tx:       tx,
		clock:    clk,
	}
}

func (s *missionCloser) CloseMission(ctx context.Context, in domain.CloseMissionInput) (*domain.MissionOutcome, error) {
	const op = "closure.CloseMission"

	mission, err := s.missions.GetMission(ctx, in.MissionID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, s.reject(op, e.NotFound(e.CodeMissionNotFound, fmt.Sprintf("mission %d not found", in.MissionID)))
		}
		return nil, s.storageFailure(op, err)
	}

	// an outcome means Closed, so it is reported before the state check
	_, err = s.missions.GetOutcome(ctx, mission.ID)
	switch {
	case err == nil:
		return nil, s.reject(op, e.Conflict(e.CodeAlreadyClosed, fmt.Sprintf("mission %d is already closed", mission.ID)))
	case !errors.Is(err, e.ErrNotFound):
		return nil, s.storageFailure(op, err)
	}

	req, err := s.requests.GetByID(ctx, mission.ID)
	if err != nil {
		return nil, s.storageFailure(op, err)
	}
	if req.State != domain.StateActive {
		return nil, s.reject(op, e.InvalidState(e.CodeInvalidRequestState,
			fmt.Sprintf("request %d is %s, only active missions can be closed", req.ID, req.State)))
	}

	if in.SuccessLevel < domain.MinSuccessLevel || in.SuccessLevel > domain.MaxSuccessLevel {
		return nil, s.reject(op, e.Validation(e.CodeInvalidSuccessLevel, "success_level",
			fmt.Sprintf("success level must be between %d and %d", domain.MinSuccessLevel, domain.MaxSuccessLevel)))
	}
	comment := strings.TrimSpace(in.Comment)
	if comment == "" {
		return nil, s.reject(op, e.Validation(e.CodeCommentRequired, "comment", "comment is required"))
	}

	outcome := &domain.MissionOutcome{
		MissionID:    mission.ID,
		SuccessLevel: in.SuccessLevel,
		Comment:      comment,
		EndedAt:      s.clock.Now().UTC(),
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		if err := tx.CreateOutcome(ctx, outcome); err != nil {
			if errors.Is(err, e.ErrUniqueViolation) {
				return e.Conflict(e.CodeAlreadyClosed, fmt.Sprintf("mission %d is already closed", mission.ID))
			}
			return err
		}
		if err := tx.BumpMissionVersion(ctx, mission.ID, mission.Version); err != nil {
			if errors.Is(err, e.ErrConflict) {
				return e.Conflict(e.CodeConcurrentUpdate, fmt.Sprintf("mission %d was modified concurrently", mission.ID))
			}
			return err
		}
		if err := tx.UpdateRequestState(ctx, mission.ID, domain.StateActive, domain.StateClosed); err != nil {
			if errors.Is(err, e.ErrConflict) {
				return e.InvalidState(e.CodeStateChanged, fmt.Sprintf("request %d changed state during closure", mission.ID))
			}
			return err
		}
		return tx.AppendEvent(ctx, domain.NewRequestEvent(mission.ID, domain.EventMissionClosed, &in.ClosedBy, map[string]any{
			"success_level": outcome.SuccessLevel,
		}, outcome.EndedAt))
	})
	if err != nil {
		return nil, s.storageFailure(op, err)
	}

	s.metrics.Transition(domain.StateActive.String(), domain.StateClosed.String())
	s.logger.Info("mission closed", slog.Int64("mission_id", mission.ID), slog.Int("success_level", outcome.SuccessLevel))
	return outcome, nil
}
