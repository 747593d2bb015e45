// Package storage declares the transactional contract shared by the store
// drivers and the services.
package storage

import (
	"context"

	"rescueops/internal/domain"
)

//go:generate mockgen -source=storage.go -destination=mocks/mock.go

// Tx is the set of writes that only happen inside a transaction.
type Tx interface {
	CreateMission(ctx context.Context, mission *domain.Mission) error
	AssignOperator(ctx context.Context, a domain.TeamAssignment) error
	AssignVehicle(ctx context.Context, a domain.VehicleAssignment) error
	AssignMaterial(ctx context.Context, a domain.MaterialAssignment) error
	CreateOutcome(ctx context.Context, outcome *domain.MissionOutcome) error
	// BumpMissionVersion increments the version if it still equals version,
	// e.ErrConflict otherwise.
	BumpMissionVersion(ctx context.Context, missionID int64, version int) error
	// UpdateRequestState moves the request only if it is still in from,
	// e.ErrConflict otherwise.
	UpdateRequestState(ctx context.Context, id int64, from, to domain.RequestState) error
	AppendEvent(ctx context.Context, event *domain.RequestEvent) error
}

// Transactor runs fn in a transaction: committed when fn returns nil, rolled
// back on any error or panic.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
