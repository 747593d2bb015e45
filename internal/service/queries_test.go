package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"rescueops/internal/domain"
	"rescueops/internal/service"
	"rescueops/pkg/e"
)

func TestQueries_ListNormalizesPaging(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	q := service.NewRequestQueries(f.requests, f.missions, newTestLogger(), nil)

	f.requests.EXPECT().
		ListByState(gomock.Any(), []domain.RequestState{domain.StateValidated, domain.StateCancelled, domain.StateActive, domain.StateClosed}, domain.MaxPageLimit, 0).
		Return([]*domain.RescueRequest{{ID: 1}}, int64(1), nil)

	page, err := q.List(context.Background(), domain.RequestFilter{Page: 0, Limit: 1000})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Page != 1 || page.Limit != domain.MaxPageLimit || page.Total != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestQueries_ListByStateOffset(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	q := service.NewRequestQueries(f.requests, f.missions, newTestLogger(), nil)

	state := domain.StateClosed
	f.requests.EXPECT().ListByState(gomock.Any(), []domain.RequestState{domain.StateClosed}, 10, 20).
		Return(nil, int64(25), nil)

	if _, err := q.List(context.Background(), domain.RequestFilter{State: &state, Page: 3, Limit: 10}); err != nil {
		t.Fatalf("list: %v", err)
	}
}

func TestQueries_GetNotFound(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	q := service.NewRequestQueries(f.requests, f.missions, newTestLogger(), nil)
	f.requests.EXPECT().GetByID(gomock.Any(), int64(4)).Return(nil, e.Wrap("get", e.ErrNotFound))

	_, err := q.Get(context.Background(), 4)
	assertCode(t, err, e.CodeRequestNotFound)
}

func TestQueries_DetailWithClosedMission(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	q := service.NewRequestQueries(f.requests, f.missions, newTestLogger(), nil)

	req := &domain.RescueRequest{ID: 9, State: domain.StateClosed}
	mission := &domain.Mission{ID: 9, Name: "Elm St fire", Version: 2}
	res := &domain.MissionResources{
		Team:      []domain.TeamAssignment{{MissionID: 9, OperatorID: 1, Role: domain.RoleCaposquadra}},
		Vehicles:  []domain.VehicleAssignment{{MissionID: 9, Plate: "AB123CD"}},
		Materials: []domain.MaterialAssignment{{MissionID: 9, MaterialID: 4}},
	}
	outcome := &domain.MissionOutcome{MissionID: 9, SuccessLevel: 4, Comment: "Resolved"}

	gomock.InOrder(
		f.requests.EXPECT().GetByID(gomock.Any(), int64(9)).Return(req, nil),
		f.missions.EXPECT().GetMission(gomock.Any(), int64(9)).Return(mission, nil),
		f.missions.EXPECT().GetResources(gomock.Any(), int64(9)).Return(res, nil),
		f.missions.EXPECT().GetOutcome(gomock.Any(), int64(9)).Return(outcome, nil),
	)

	got, err := q.Detail(context.Background(), 9)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if got.Request != req || got.Mission == nil || got.Mission.Mission != mission {
		t.Fatalf("unexpected detail: %+v", got)
	}
	if len(got.Mission.Team) != 1 || got.Mission.Vehicles[0].Plate != "AB123CD" || got.Mission.Materials[0].MaterialID != 4 {
		t.Fatalf("unexpected resources: %+v", got.Mission.MissionResources)
	}
	if got.Mission.Outcome != outcome {
		t.Fatalf("expected outcome, got %+v", got.Mission.Outcome)
	}
}

func TestQueries_DetailActiveMissionHasNoOutcome(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	q := service.NewRequestQueries(f.requests, f.missions, newTestLogger(), nil)

	f.requests.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&domain.RescueRequest{ID: 3, State: domain.StateActive}, nil)
	f.missions.EXPECT().GetMission(gomock.Any(), int64(3)).Return(&domain.Mission{ID: 3}, nil)
	f.missions.EXPECT().GetResources(gomock.Any(), int64(3)).Return(&domain.MissionResources{}, nil)
	f.missions.EXPECT().GetOutcome(gomock.Any(), int64(3)).Return(nil, e.Wrap("outcome", e.ErrNotFound))

	got, err := q.Detail(context.Background(), 3)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if got.Mission == nil || got.Mission.Outcome != nil {
		t.Fatalf("expected an open mission, got %+v", got.Mission)
	}
}

func TestQueries_DetailWithoutMission(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	q := service.NewRequestQueries(f.requests, f.missions, newTestLogger(), nil)

	f.requests.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.RescueRequest{ID: 5, State: domain.StateValidated}, nil)
	f.missions.EXPECT().GetMission(gomock.Any(), int64(5)).Return(nil, e.Wrap("mission", e.ErrNotFound))

	got, err := q.Detail(context.Background(), 5)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if got.Mission != nil {
		t.Fatalf("expected no mission, got %+v", got.Mission)
	}
}

func TestQueries_DetailFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		setup func(f *fixture)
		code  string
	}{
		{"request not found", func(f *fixture) {
			f.requests.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, e.Wrap("get", e.ErrNotFound))
		}, e.CodeRequestNotFound},
		{"mission lookup fails", func(f *fixture) {
			f.requests.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.RescueRequest{ID: 1}, nil)
			f.missions.EXPECT().GetMission(gomock.Any(), int64(1)).Return(nil, errors.New("conn reset"))
		}, e.CodeDatabase},
		{"resources fail", func(f *fixture) {
			f.requests.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.RescueRequest{ID: 1}, nil)
			f.missions.EXPECT().GetMission(gomock.Any(), int64(1)).Return(&domain.Mission{ID: 1}, nil)
			f.missions.EXPECT().GetResources(gomock.Any(), int64(1)).Return(nil, errors.New("conn reset"))
		}, e.CodeDatabase},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			tc.setup(f)
			_, err := service.NewRequestQueries(f.requests, f.missions, newTestLogger(), nil).Detail(context.Background(), 1)
			assertCode(t, err, tc.code)
		})
	}
}

func TestQueries_ListNonPositive(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	q := service.NewRequestQueries(f.requests, f.missions, newTestLogger(), nil)
	f.requests.EXPECT().ListNonPositive(gomock.Any(), domain.DefaultPageLimit, 0).
		Return([]*domain.RescueRequest{{ID: 2, State: domain.StateClosed}}, int64(1), nil)

	page, err := q.ListNonPositive(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Requests) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestRoster_OnlyAvailable(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	r := service.NewOperatorRoster(f.operators, newTestLogger(), nil)
	all := []*domain.OperatorStatus{
		{Operator: domain.Operator{ID: 1}, Available: true},
		{Operator: domain.Operator{ID: 2}, Available: false, MissionsActive: 1},
	}
	f.operators.EXPECT().ListOperators(gomock.Any()).Return(all, nil).Times(2)

	got, err := r.ListOperators(context.Background(), true)
	if err != nil || len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected available list: %v %v", got, err)
	}
	got, err = r.ListOperators(context.Background(), false)
	if err != nil || len(got) != 2 {
		t.Fatalf("unexpected full list: %v %v", got, err)
	}
}

func TestRoster_GetOperator(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	r := service.NewOperatorRoster(f.operators, newTestLogger(), nil)

	busy := &domain.OperatorStatus{Operator: domain.Operator{ID: 2}, MissionsActive: 1, MissionsCompleted: 3}
	f.operators.EXPECT().GetOperator(gomock.Any(), int64(2)).Return(busy, nil)
	f.operators.EXPECT().GetOperator(gomock.Any(), int64(8)).Return(nil, e.Wrap("get", e.ErrNotFound))
	f.operators.EXPECT().GetOperator(gomock.Any(), int64(9)).Return(nil, errors.New("down"))

	got, err := r.GetOperator(context.Background(), 2)
	if err != nil || got != busy {
		t.Fatalf("unexpected operator: %v %v", got, err)
	}
	_, err = r.GetOperator(context.Background(), 8)
	assertCode(t, err, e.CodeOperatorNotFound)
	_, err = r.GetOperator(context.Background(), 9)
	assertCode(t, err, e.CodeDatabase)
}

func TestStats_CountsEveryState(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	s := service.NewStatsService(f.stats, newTestLogger(), nil)
	f.stats.EXPECT().CountByState(gomock.Any()).Return(map[domain.RequestState]int64{
		domain.StateSubmitted: 2,
		domain.StateClosed:    3,
	}, nil)
	f.stats.EXPECT().CountNonPositive(gomock.Any()).Return(int64(1), nil)

	got, err := s.GetStats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if got.Total != 5 || got.NonPositive != 1 || len(got.ByState) != len(domain.AllStates) || got.ByState["validated"] != 0 {
		t.Fatalf("unexpected stats: %+v", got)
	}
}

func TestStats_StorageFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	s := service.NewStatsService(f.stats, newTestLogger(), nil)
	f.stats.EXPECT().CountByState(gomock.Any()).Return(nil, errors.New("down"))

	_, err := s.GetStats(context.Background())
	assertCode(t, err, e.CodeDatabase)
}
