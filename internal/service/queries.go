package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"rescueops/internal/domain"
	"rescueops/internal/metrics"
	"rescueops/pkg/e"
)

type requestQueries struct {
	reporter
	requests RequestRepository
	missions MissionRepository
}

func NewRequestQueries(requests RequestRepository, missions MissionRepository, logger *slog.Logger, m *metrics.Metrics) RequestQueries {
	return &requestQueries{
		reporter: reporter{logger: logger.With(slog.String("component", "queries")), metrics: m},
		requests: requests,
		missions: missions,
	}
}

func (s *requestQueries) Get(ctx context.Context, id int64) (*domain.RescueRequest, error) {
	const op = "queries.Get"

	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, s.reject(op, e.NotFound(e.CodeRequestNotFound, fmt.Sprintf("request %d not found", id)))
		}
		return nil, s.storageFailure(op, err)
	}
	return req, nil
}

// Detail returns the request with its mission, assignments and outcome. A
// request that never got a mission has a nil Mission.
func (s *requestQueries) Detail(ctx context.Context, id int64) (*domain.RequestDetail, error) {
	const op = "queries.Detail"

	req, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &domain.RequestDetail{Request: req}

	mission, err := s.missions.GetMission(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return detail, nil
		}
		return nil, s.storageFailure(op, err)
	}

	res, err := s.missions.GetResources(ctx, mission.ID)
	if err != nil {
		return nil, s.storageFailure(op, err)
	}
	md := &domain.MissionDetail{Mission: mission, MissionResources: *res}

	outcome, err := s.missions.GetOutcome(ctx, mission.ID)
	switch {
	case err == nil:
		md.Outcome = outcome
	case !errors.Is(err, e.ErrNotFound):
		return nil, s.storageFailure(op, err)
	}

	detail.Mission = md
	return detail, nil
}

func (s *requestQueries) List(ctx context.Context, filter domain.RequestFilter) (*domain.RequestPage, error) {
	const op = "queries.List"

	filter = filter.Normalize()
	items, total, err := s.requests.ListByState(ctx, filter.States(), filter.Limit, filter.Offset())
	if err != nil {
		return nil, s.storageFailure(op, err)
	}
	return &domain.RequestPage{Requests: items, Page: filter.Page, Limit: filter.Limit, Total: total}, nil
}

func (s *requestQueries) ListNonPositive(ctx context.Context, page, limit int) (*domain.RequestPage, error) {
	const op = "queries.ListNonPositive"

	filter := domain.RequestFilter{Page: page, Limit: limit}.Normalize()
	items, total, err := s.requests.ListNonPositive(ctx, filter.Limit, filter.Offset())
	if err != nil {
		return nil, s.storageFailure(op, err)
	}
	return &domain.RequestPage{Requests: items, Page: filter.Page, Limit: filter.Limit, Total: total}, nil
}

// ListAssignable returns the validated requests still waiting for a mission.
func (s *requestQueries) ListAssignable(ctx context.Context) ([]*domain.RescueRequest, error) {
	const op = "queries.ListAssignable"

	items, _, err := s.requests.ListByState(ctx, []domain.RequestState{domain.StateValidated}, domain.MaxPageLimit, 0)
	if err != nil {
		return nil, s.storageFailure(op, err)
	}
	return items, nil
}

type operatorRoster struct {
	reporter
	operators OperatorRepository
}

func NewOperatorRoster(operators OperatorRepository, logger *slog.Logger, m *metrics.Metrics) OperatorRoster {
	return &operatorRoster{
		reporter:  reporter{logger: logger.With(slog.String("component", "roster")), metrics: m},
		operators: operators,
	}
}

func (s *operatorRoster) ListOperators(ctx context.Context, onlyAvailable bool) ([]*domain.OperatorStatus, error) {
	const op = "roster.ListOperators"

	all, err := s.operators.ListOperators(ctx)
	if err != nil {
		return nil, s.storageFailure(op, err)
	}
	if !onlyAvailable {
		return all, nil
	}
	out := make([]*domain.OperatorStatus, 0, len(all))
	for _, o := range all {
		if o.Available {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *operatorRoster) GetOperator(ctx context.Context, id int64) (*domain.OperatorStatus, error) {
	const op = "roster.GetOperator"

	st, err := s.operators.GetOperator(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, s.reject(op, e.NotFound(e.CodeOperatorNotFound, fmt.Sprintf("operator %d not found", id)))
		}
		return nil, s.storageFailure(op, err)
	}
	return st, nil
}
