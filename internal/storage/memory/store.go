// Package memory is a process-local store. Transactions work on a copy of the
// data that replaces the live copy only when the transaction succeeds.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"rescueops/internal/domain"
	"rescueops/internal/storage"
	"rescueops/pkg/e"
)

type Option func(*Store)

// Strict makes assignments fail for operators, vehicles and materials that
// were not registered, like the foreign keys of the SQL store.
func Strict() Option {
	return func(s *Store) { s.strict = true }
}

func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

type Store struct {
	mu     sync.Mutex
	data   *data
	strict bool
	now    func() time.Time
}

type data struct {
	nextID    int64
	requests  map[int64]domain.RescueRequest
	tokens    map[string]int64
	missions  map[int64]domain.Mission
	team      map[int64][]domain.TeamAssignment
	vehicles  map[int64][]domain.VehicleAssignment
	materials map[int64][]domain.MaterialAssignment
	outcomes  map[int64]domain.MissionOutcome
	events    []domain.RequestEvent

	operators       map[int64]domain.Operator
	vehicleCatalog  map[string]struct{}
	materialCatalog map[int64]struct{}
}

func New(opts ...Option) *Store {
	s := &Store{
		data: &data{
			requests:        map[int64]domain.RescueRequest{},
			tokens:          map[string]int64{},
			missions:        map[int64]domain.Mission{},
			team:            map[int64][]domain.TeamAssignment{},
			vehicles:        map[int64][]domain.VehicleAssignment{},
			materials:       map[int64][]domain.MaterialAssignment{},
			outcomes:        map[int64]domain.MissionOutcome{},
			operators:       map[int64]domain.Operator{},
			vehicleCatalog:  map[string]struct{}{},
			materialCatalog: map[int64]struct{}{},
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) AddOperator(op domain.Operator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.operators[op.ID] = op
}

func (s *Store) AddVehicle(plate string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.vehicleCatalog[plate] = struct{}{}
}

func (s *Store) AddMaterial(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.materialCatalog[id] = struct{}{}
}

// Events returns the audit log of a request, oldest first.
func (s *Store) Events(requestID int64) []domain.RequestEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.RequestEvent
	for _, ev := range s.data.events {
		if ev.RequestID == requestID {
			out = append(out, ev)
		}
	}
	return out
}

// Team returns the operators assigned to a mission.
func (s *Store) Team(missionID int64) []domain.TeamAssignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.TeamAssignment(nil), s.data.team[missionID]...)
}

func (s *Store) Create(_ context.Context, req *domain.RescueRequest) error {
	const op = "memory.Request.Create"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.tokens[req.ConfirmationToken]; ok {
		return fmt.Errorf("%s: %w", op, e.ErrUniqueViolation)
	}
	s.data.nextID++
	req.ID = s.data.nextID
	if req.CreatedAt.IsZero() {
		req.CreatedAt = s.now().UTC()
	}
	if req.UpdatedAt.IsZero() {
		req.UpdatedAt = req.CreatedAt
	}
	s.data.requests[req.ID] = *req
	s.data.tokens[req.ConfirmationToken] = req.ID
	return nil
}

func (s *Store) GetByID(_ context.Context, id int64) (*domain.RescueRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.data.requests[id]
	if !ok {
		return nil, fmt.Errorf("memory.Request.GetByID: %w", e.ErrNotFound)
	}
	return &req, nil
}

func (s *Store) GetByToken(_ context.Context, token string) (*domain.RescueRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.data.tokens[token]
	if !ok {
		return nil, fmt.Errorf("memory.Request.GetByToken: %w", e.ErrNotFound)
	}
	req := s.data.requests[id]
	return &req, nil
}

func (s *Store) ListByState(_ context.Context, states []domain.RequestState, limit, offset int) ([]*domain.RescueRequest, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	want := make(map[domain.RequestState]bool, len(states))
	for _, st := range states {
		want[st] = true
	}
	var matched []*domain.RescueRequest
	for _, req := range s.data.requests {
		if want[req.State] {
			req := req
			matched = append(matched, &req)
		}
	}
	return page(matched, limit, offset)
}

func (s *Store) ListNonPositive(_ context.Context, limit, offset int) ([]*domain.RescueRequest, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*domain.RescueRequest
	for id, out := range s.data.outcomes {
		req, ok := s.data.requests[id]
		if !ok || req.State != domain.StateClosed || out.SuccessLevel >= domain.MaxSuccessLevel {
			continue
		}
		matched = append(matched, &req)
	}
	return page(matched, limit, offset)
}

func (s *Store) UpdateState(_ context.Context, id int64, from, to domain.RequestState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.updateState(id, from, to, s.now())
}

func (s *Store) GetMission(_ context.Context, id int64) (*domain.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.data.missions[id]
	if !ok {
		return nil, fmt.Errorf("memory.Mission.Get: %w", e.ErrNotFound)
	}
	return &m, nil
}

func (s *Store) GetOutcome(_ context.Context, missionID int64) (*domain.MissionOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, ok := s.data.outcomes[missionID]
	if !ok {
		return nil, fmt.Errorf("memory.Outcome.Get: %w", e.ErrNotFound)
	}
	return &out, nil
}

func (s *Store) GetResources(_ context.Context, missionID int64) (*domain.MissionResources, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.missions[missionID]; !ok {
		return nil, fmt.Errorf("memory.Mission.Resources: %w", e.ErrNotFound)
	}
	return &domain.MissionResources{
		Team:      append([]domain.TeamAssignment{}, s.data.team[missionID]...),
		Vehicles:  append([]domain.VehicleAssignment{}, s.data.vehicles[missionID]...),
		Materials: append([]domain.MaterialAssignment{}, s.data.materials[missionID]...),
	}, nil
}

func (s *Store) ListOperators(_ context.Context) ([]*domain.OperatorStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.OperatorStatus, 0, len(s.data.operators))
	for _, op := range s.data.operators {
		out = append(out, s.data.operatorStatus(op))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetOperator(_ context.Context, id int64) (*domain.OperatorStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	op, ok := s.data.operators[id]
	if !ok {
		return nil, fmt.Errorf("memory.Operator.Get: %w", e.ErrNotFound)
	}
	return s.data.operatorStatus(op), nil
}

func (s *Store) OperatorEmails(_ context.Context, ids []int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if op, ok := s.data.operators[id]; ok && op.Email != "" {
			out = append(out, op.Email)
		}
	}
	return out, nil
}

func (s *Store) CountByState(_ context.Context) (map[domain.RequestState]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[domain.RequestState]int64, len(domain.AllStates))
	for _, req := range s.data.requests {
		out[req.State]++
	}
	return out, nil
}

func (s *Store) CountNonPositive(ctx context.Context) (int64, error) {
	_, total, err := s.ListNonPositive(ctx, 1, 0)
	return total, err
}

// WithinTx holds the store lock for the whole transaction, so transactions
// are serialized. fn must only use tx.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("memory.WithinTx: panic: %v: %w", p, e.ErrInternal)
		}
	}()

	if err := fn(ctx, &tx{d: work, strict: s.strict, now: s.now}); err != nil {
		return err
	}
	s.data = work
	return nil
}

func page(items []*domain.RescueRequest, limit, offset int) ([]*domain.RescueRequest, int64, error) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	total := int64(len(items))
	if offset >= len(items) {
		return []*domain.RescueRequest{}, total, nil
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end], total, nil
}

func (d *data) operatorStatus(op domain.Operator) *domain.OperatorStatus {
	st := &domain.OperatorStatus{Operator: op}
	for missionID, team := range d.team {
		for _, a := range team {
			if a.OperatorID != op.ID {
				continue
			}
			switch d.requests[missionID].State {
			case domain.StateActive:
				st.MissionsActive++
			case domain.StateClosed:
				st.MissionsCompleted++
			}
		}
	}
	st.Available = st.MissionsActive == 0
	return st
}

func (d *data) updateState(id int64, from, to domain.RequestState, now time.Time) error {
	const op = "memory.Request.UpdateState"

	req, ok := d.requests[id]
	if !ok || req.State != from {
		return fmt.Errorf("%s: %w", op, e.ErrConflict)
	}
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("%s: %s -> %s: %w", op, from, to, e.ErrInvalidInput)
	}
	req.State = to
	req.UpdatedAt = now.UTC()
	d.requests[id] = req
	return nil
}

func (d *data) clone() *data {
	c := &data{
		nextID:          d.nextID,
		requests:        make(map[int64]domain.RescueRequest, len(d.requests)),
		tokens:          make(map[string]int64, len(d.tokens)),
		missions:        make(map[int64]domain.Mission, len(d.missions)),
		team:            make(map[int64][]domain.TeamAssignment, len(d.team)),
		vehicles:        make(map[int64][]domain.VehicleAssignment, len(d.vehicles)),
		materials:       make(map[int64][]domain.MaterialAssignment, len(d.materials)),
		outcomes:        make(map[int64]domain.MissionOutcome, len(d.outcomes)),
		events:          append([]domain.RequestEvent(nil), d.events...),
		operators:       d.operators,
		vehicleCatalog:  d.vehicleCatalog,
		materialCatalog: d.materialCatalog,
	}
	for k, v := range d.requests {
		c.requests[k] = v
	}
	for k, v := range d.tokens {
		c.tokens[k] = v
	}
	for k, v := range d.missions {
		c.missions[k] = v
	}
	for k, v := range d.team {
		c.team[k] = append([]domain.TeamAssignment(nil), v...)
	}
	for k, v := range d.vehicles {
		c.vehicles[k] = append([]domain.VehicleAssignment(nil), v...)
	}
	for k, v := range d.materials {
		c.materials[k] = append([]domain.MaterialAssignment(nil), v...)
	}
	for k, v := range d.outcomes {
		c.outcomes[k] = v
	}
	return c
}
