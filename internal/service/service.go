package service

import (
	"context"

	"rescueops/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type RequestLifecycle interface {
	Submit(ctx context.Context, in domain.SubmitRequestInput) (*domain.RescueRequest, error)
	Confirm(ctx context.Context, token string) (domain.Confirmation, error)
	ConfirmByID(ctx context.Context, id int64, token string) (domain.Confirmation, error)
	Cancel(ctx context.Context, id, adminID int64) (*domain.RescueRequest, error)
}

type MissionAssigner interface {
	CreateMission(ctx context.Context, in domain.CreateMissionInput) (*domain.MissionAssignment, error)
}

type MissionCloser interface {
	CloseMission(ctx context.Context, in domain.CloseMissionInput) (*domain.MissionOutcome, error)
}

// Read side
type RequestQueries interface {
	Get(ctx context.Context, id int64) (*domain.RescueRequest, error)
	Detail(ctx context.Context, id int64) (*domain.RequestDetail, error)
	List(ctx context.Context, filter domain.RequestFilter) (*domain.RequestPage, error)
	ListNonPositive(ctx context.Context, page, limit int) (*domain.RequestPage, error)
	ListAssignable(ctx context.Context) ([]*domain.RescueRequest, error)
}

type OperatorRoster interface {
	ListOperators(ctx context.Context, onlyAvailable bool) ([]*domain.OperatorStatus, error)
	GetOperator(ctx context.Context, id int64) (*domain.OperatorStatus, error)
}

type StatsService interface {
	GetStats(ctx context.Context) (*domain.RequestStats, error)
}

type RequestRepository interface {
	Create(ctx context.Context, req *domain.RescueRequest) error
	GetByID(ctx context.Context, id int64) (*domain.RescueRequest, error)
	GetByToken(ctx context.Context, token string) (*domain.RescueRequest, error)
	ListByState(ctx context.Context, states []domain.RequestState, limit, offset int) ([]*domain.RescueRequest, int64, error)
	ListNonPositive(ctx context.Context, limit, offset int) ([]*domain.RescueRequest, int64, error)
	UpdateState(ctx context.Context, id int64, from, to domain.RequestState) error
}

type MissionRepository interface {
	GetMission(ctx context.Context, id int64) (*domain.Mission, error)
	GetOutcome(ctx context.Context, missionID int64) (*domain.MissionOutcome, error)
	GetResources(ctx context.Context, missionID int64) (*domain.MissionResources, error)
}

type OperatorRepository interface {
	ListOperators(ctx context.Context) ([]*domain.OperatorStatus, error)
	GetOperator(ctx context.Context, id int64) (*domain.OperatorStatus, error)
	OperatorEmails(ctx context.Context, ids []int64) ([]string, error)
}

type StatsRepository interface {
	CountByState(ctx context.Context) (map[domain.RequestState]int64, error)
	CountNonPositive(ctx context.Context) (int64, error)
}

// Notifier receives fire-and-forget notices. Its errors are logged, never
// returned to the caller.
type Notifier interface {
	RequestSubmitted(ctx context.Context, notice domain.SubmissionNotice) error
	MissionCreated(ctx context.Context, notice domain.MissionNotice) error
}

type Service struct {
	Lifecycle RequestLifecycle
	Missions  MissionAssigner
	Closure   MissionCloser
	Queries   RequestQueries
	Roster    OperatorRoster
	Stats     StatsService
}

func NewService(
	lifecycle RequestLifecycle,
	missions MissionAssigner,
	closure MissionCloser,
	queries RequestQueries,
	roster OperatorRoster,
	stats StatsService,
) *Service {
	return &Service{
		Lifecycle: lifecycle,
		Missions:  missions,
		Closure:   closure,
		Queries:   queries,
		Roster:    roster,
		Stats:     stats,
	}
}
