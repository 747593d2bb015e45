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

func (f *fixture) assigner() service.MissionAssigner {
	return service.NewMissionAssigner(f.requests, f.missions, f.operators, f.txr, f.notifier, f.clock, newTestLogger(), nil)
}

func missionInput() domain.CreateMissionInput {
	return domain.CreateMissionInput{
		RequestID: 10,
		Name:      "Bridge rescue",
		Location:  "Ponte Vecchio",
		Team: []domain.TeamMember{
			{OperatorID: 1, Role: domain.RoleCaposquadra},
			{OperatorID: 2, Role: domain.RoleStandard},
			{OperatorID: 2, Role: domain.RoleStandard},
		},
		VehiclePlates: []string{"ab123cd", " AB123CD", ""},
		MaterialIDs:   []int64{4, 4},
		AdminID:       77,
	}
}

func (f *fixture) validatedRequest(id int64) {
	f.requests.EXPECT().GetByID(gomock.Any(), id).
		Return(&domain.RescueRequest{ID: id, State: domain.StateValidated}, nil)
	f.missions.EXPECT().GetMission(gomock.Any(), id).Return(nil, e.Wrap("get", e.ErrNotFound))
}

func TestCreateMission_OK(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.validatedRequest(10)
	f.expectTx()

	gomock.InOrder(
		f.tx.EXPECT().CreateMission(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *domain.Mission) error {
				if m.ID != 10 || m.Version != 1 || m.CreatedBy != 77 || !m.StartedAt.Equal(t0) {
					t.Errorf("unexpected mission: %+v", m)
				}
				return nil
			}),
		f.tx.EXPECT().AssignOperator(gomock.Any(), domain.TeamAssignment{MissionID: 10, OperatorID: 1, Role: domain.RoleCaposquadra}).Return(nil),
		f.tx.EXPECT().AssignOperator(gomock.Any(), domain.TeamAssignment{MissionID: 10, OperatorID: 2, Role: domain.RoleStandard}).Return(nil),
		f.tx.EXPECT().AssignVehicle(gomock.Any(), domain.VehicleAssignment{MissionID: 10, Plate: "AB123CD"}).Return(nil),
		f.tx.EXPECT().AssignMaterial(gomock.Any(), domain.MaterialAssignment{MissionID: 10, MaterialID: 4}).Return(nil),
		f.tx.EXPECT().UpdateRequestState(gomock.Any(), int64(10), domain.StateValidated, domain.StateActive).Return(nil),
		f.tx.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(nil),
	)

	f.operators.EXPECT().OperatorEmails(gomock.Any(), []int64{1, 2}).
		Return([]string{"Capo@Rescue.example", ""}, nil)
	f.notifier.EXPECT().MissionCreated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n domain.MissionNotice) error {
			if n.MissionID != 10 || len(n.Recipients) != 1 || n.Recipients[0] != "capo@rescue.example" {
				t.Errorf("unexpected notice: %+v", n)
			}
			return nil
		})

	out, err := f.assigner().CreateMission(context.Background(), missionInput())
	if err != nil {
		t.Fatalf("create mission: %v", err)
	}
	if len(out.Team) != 2 || len(out.Vehicles) != 1 || len(out.Materials) != 1 {
		t.Fatalf("unexpected assignment: %+v", out)
	}
	if len(out.OperatorEmails) != 1 {
		t.Fatalf("unexpected emails: %v", out.OperatorEmails)
	}
}

func TestCreateMission_LegacyOperatorList(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.validatedRequest(10)
	f.expectTx()

	f.tx.EXPECT().CreateMission(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.EXPECT().AssignOperator(gomock.Any(), domain.TeamAssignment{MissionID: 10, OperatorID: 5, Role: domain.RoleCaposquadra}).Return(nil)
	f.tx.EXPECT().AssignOperator(gomock.Any(), domain.TeamAssignment{MissionID: 10, OperatorID: 6, Role: domain.RoleStandard}).Return(nil)
	f.tx.EXPECT().UpdateRequestState(gomock.Any(), int64(10), domain.StateValidated, domain.StateActive).Return(nil)
	f.tx.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(nil)
	f.operators.EXPECT().OperatorEmails(gomock.Any(), []int64{5, 6}).Return(nil, nil)

	in := domain.CreateMissionInput{RequestID: 10, Name: "Legacy", Operators: []int64{5, 6}, AdminID: 1}
	out, err := f.assigner().CreateMission(context.Background(), in)
	if err != nil {
		t.Fatalf("create mission: %v", err)
	}
	if len(out.OperatorEmails) != 0 {
		t.Fatalf("expected no emails, got %v", out.OperatorEmails)
	}
}

func TestCreateMission_Rejections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		setup func(f *fixture)
		edit  func(in *domain.CreateMissionInput)
		code  string
	}{
		{
			name: "unknown request",
			setup: func(f *fixture) {
				f.requests.EXPECT().GetByID(gomock.Any(), int64(10)).Return(nil, e.Wrap("get", e.ErrNotFound))
			},
			code: e.CodeRequestNotFound,
		},
		{
			name: "submitted request",
			setup: func(f *fixture) {
				f.requests.EXPECT().GetByID(gomock.Any(), int64(10)).
					Return(&domain.RescueRequest{ID: 10, State: domain.StateSubmitted}, nil)
				f.missions.EXPECT().GetMission(gomock.Any(), int64(10)).Return(nil, e.Wrap("get", e.ErrNotFound))
			},
			code: e.CodeInvalidRequestState,
		},
		{
			name: "mission exists",
			setup: func(f *fixture) {
				f.requests.EXPECT().GetByID(gomock.Any(), int64(10)).
					Return(&domain.RescueRequest{ID: 10, State: domain.StateActive}, nil)
				f.missions.EXPECT().GetMission(gomock.Any(), int64(10)).Return(&domain.Mission{ID: 10}, nil)
			},
			code: e.CodeDuplicateMission,
		},
		{
			name:  "standard only",
			setup: func(f *fixture) { f.validatedRequest(10) },
			edit: func(in *domain.CreateMissionInput) {
				in.Team = []domain.TeamMember{{OperatorID: 2, Role: domain.RoleStandard}}
			},
			code: e.CodeNoCaposquadra,
		},
		{
			name:  "empty team",
			setup: func(f *fixture) { f.validatedRequest(10) },
			edit:  func(in *domain.CreateMissionInput) { in.Team = nil },
			code:  e.CodeNoCaposquadra,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			tc.setup(f)
			in := missionInput()
			if tc.edit != nil {
				tc.edit(&in)
			}

			_, err := f.assigner().CreateMission(context.Background(), in)
			assertCode(t, err, tc.code)
		})
	}
}

func TestCreateMission_TxFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		setup func(f *fixture)
		code  string
	}{
		{
			name: "unknown operator",
			setup: func(f *fixture) {
				f.tx.EXPECT().CreateMission(gomock.Any(), gomock.Any()).Return(nil)
				f.tx.EXPECT().AssignOperator(gomock.Any(), gomock.Any()).Return(e.Wrap("fk", e.ErrInvalidInput))
			},
			code: e.CodeInvalidAssignment,
		},
		{
			name: "mission row race",
			setup: func(f *fixture) {
				f.tx.EXPECT().CreateMission(gomock.Any(), gomock.Any()).Return(e.Wrap("insert", e.ErrUniqueViolation))
			},
			code: e.CodeDuplicateMission,
		},
		{
			name: "request moved",
			setup: func(f *fixture) {
				f.tx.EXPECT().CreateMission(gomock.Any(), gomock.Any()).Return(nil)
				f.tx.EXPECT().AssignOperator(gomock.Any(), gomock.Any()).Return(nil).Times(2)
				f.tx.EXPECT().AssignVehicle(gomock.Any(), gomock.Any()).Return(nil)
				f.tx.EXPECT().AssignMaterial(gomock.Any(), gomock.Any()).Return(nil)
				f.tx.EXPECT().UpdateRequestState(gomock.Any(), int64(10), domain.StateValidated, domain.StateActive).
					Return(e.Wrap("update", e.ErrConflict))
			},
			code: e.CodeStateChanged,
		},
		{
			name: "storage",
			setup: func(f *fixture) {
				f.tx.EXPECT().CreateMission(gomock.Any(), gomock.Any()).Return(errors.New("broken pipe"))
			},
			code: e.CodeDatabase,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			f.validatedRequest(10)
			f.expectTx()
			tc.setup(f)

			_, err := f.assigner().CreateMission(context.Background(), missionInput())
			assertCode(t, err, tc.code)
		})
	}
}

func TestCreateMission_EmailLookupFailureKeepsMission(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.validatedRequest(10)
	f.expectTx()
	f.tx.EXPECT().CreateMission(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.EXPECT().AssignOperator(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.tx.EXPECT().AssignVehicle(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.EXPECT().AssignMaterial(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.EXPECT().UpdateRequestState(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.tx.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(nil)
	f.operators.EXPECT().OperatorEmails(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	out, err := f.assigner().CreateMission(context.Background(), missionInput())
	if err != nil {
		t.Fatalf("create mission: %v", err)
	}
	if out.OperatorEmails == nil || len(out.OperatorEmails) != 0 {
		t.Fatalf("expected empty email list, got %#v", out.OperatorEmails)
	}
}
