//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"rescueops/internal/domain"
	"rescueops/internal/storage"
	"rescueops/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := Migrate(ctx, testPool, discard()); err != nil {
		fmt.Println("Migrate:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `
		TRUNCATE TABLE request_events, mission_outcomes, mission_materials, mission_vehicles,
			mission_operators, missions, materials, vehicles, operators, rescue_requests
		RESTART IDENTITY CASCADE
	`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func newRequest(token string, at time.Time) *domain.RescueRequest {
	return &domain.RescueRequest{
		State:             domain.StateSubmitted,
		Address:           "Via Roma 1",
		Description:       "water is rising in the basement",
		IncidentName:      "flood",
		ReporterEmail:     "anna@example.com",
		ReporterName:      "Anna",
		SourceIP:          "10.0.0.1",
		ConfirmationToken: token,
		CreatedAt:         at,
		UpdatedAt:         at,
	}
}

func seedCatalog(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `
		INSERT INTO operators (id, name, surname, email) VALUES
			(1, 'Luca', 'Bianchi', 'luca@example.com'),
			(2, 'Sara', 'Verdi', ''),
			(3, 'Marco', 'Neri', 'marco@example.com');
		INSERT INTO vehicles (plate) VALUES ('AB123CD');
		INSERT INTO materials (id, name) VALUES (7, 'rope');
	`)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	if err := Migrate(context.Background(), testPool, discard()); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestRequests_CreateAndGet(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	pg := New(testPool, discard())

	req := newRequest("tok-1", time.Now().UTC().Truncate(time.Microsecond))
	if err := pg.Requests.Create(ctx, req); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if req.ID == 0 {
		t.Fatalf("expected ID set")
	}

	got, err := pg.Requests.GetByToken(ctx, "tok-1")
	if err != nil {
		t.Fatalf("GetByToken: %v", err)
	}
	if got.ID != req.ID || got.State != domain.StateSubmitted || got.Coordinates != nil {
		t.Fatalf("unexpected row: %+v", got)
	}

	if _, err := pg.Requests.GetByID(ctx, req.ID+100); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}

	dup := newRequest("tok-1", time.Now().UTC())
	if err := pg.Requests.Create(ctx, dup); !errors.Is(err, e.ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation, got: %v", err)
	}
}

func TestRequests_UpdateStateGuard(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	pg := New(testPool, discard())

	req := newRequest("tok-guard", time.Now().UTC())
	if err := pg.Requests.Create(ctx, req); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := pg.Requests.UpdateState(ctx, req.ID, domain.StateSubmitted, domain.StateValidated); err != nil {
		t.Fatalf("UpdateState: %v", err)
	}
	err := pg.Requests.UpdateState(ctx, req.ID, domain.StateSubmitted, domain.StateValidated)
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("expected ErrConflict, got: %v", err)
	}
}

func TestRequests_ListByState_Pagination(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	pg := New(testPool, discard())

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		req := newRequest(fmt.Sprintf("tok-%d", i), base.Add(time.Duration(i)*time.Minute))
		req.State = domain.StateValidated
		if err := pg.Requests.Create(ctx, req); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := pg.Requests.Create(ctx, newRequest("tok-submitted", base)); err != nil {
		t.Fatalf("Create submitted: %v", err)
	}

	states := []domain.RequestState{domain.StateValidated}
	list, total, err := pg.Requests.ListByState(ctx, states, 2, 0)
	if err != nil {
		t.Fatalf("ListByState: %v", err)
	}
	if total != 3 || len(list) != 2 {
		t.Fatalf("expected total=3 len=2, got total=%d len=%d", total, len(list))
	}
	if list[0].CreatedAt.Before(list[1].CreatedAt) {
		t.Fatalf("expected DESC order by created_at")
	}

	list, _, err = pg.Requests.ListByState(ctx, states, 2, 2)
	if err != nil {
		t.Fatalf("ListByState page2: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected len=1 got=%d", len(list))
	}
}

func TestWithinTx_MissionLifecycle(t *testing.T) {
	truncateAll(t)
	seedCatalog(t)
	ctx := context.Background()
	pg := New(testPool, discard())

	req := newRequest("tok-mission", time.Now().UTC())
	req.State = domain.StateValidated
	if err := pg.Requests.Create(ctx, req); err != nil {
		t.Fatalf("Create: %v", err)
	}

	now := time.Now().UTC()
	admin := int64(42)
	err := pg.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		if err := tx.CreateMission(ctx, &domain.Mission{ID: req.ID, Name: "m", StartedAt: now, CreatedBy: admin, Version: 1}); err != nil {
			return err
		}
		if err := tx.AssignOperator(ctx, domain.TeamAssignment{MissionID: req.ID, OperatorID: 1, Role: domain.RoleCaposquadra}); err != nil {
			return err
		}
		if err := tx.AssignOperator(ctx, domain.TeamAssignment{MissionID: req.ID, OperatorID: 2, Role: domain.RoleStandard}); err != nil {
			return err
		}
		if err := tx.AssignVehicle(ctx, domain.VehicleAssignment{MissionID: req.ID, Plate: "AB123CD"}); err != nil {
			return err
		}
		if err := tx.AssignMaterial(ctx, domain.MaterialAssignment{MissionID: req.ID, MaterialID: 7}); err != nil {
			return err
		}
		if err := tx.UpdateRequestState(ctx, req.ID, domain.StateValidated, domain.StateActive); err != nil {
			return err
		}
		return tx.AppendEvent(ctx, domain.NewRequestEvent(req.ID, domain.EventMissionCreated, &admin, map[string]any{"operators": 2}, now))
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	mission, err := pg.Missions.GetMission(ctx, req.ID)
	if err != nil {
		t.Fatalf("GetMission: %v", err)
	}
	if mission.Version != 1 || mission.CreatedBy != admin {
		t.Fatalf("unexpected mission: %+v", mission)
	}

	res, err := pg.Missions.GetResources(ctx, req.ID)
	if err != nil {
		t.Fatalf("GetResources: %v", err)
	}
	if len(res.Team) != 2 || res.Team[0].Role != domain.RoleCaposquadra || res.Team[0].OperatorID != 1 {
		t.Fatalf("unexpected team: %+v", res.Team)
	}
	if len(res.Vehicles) != 1 || res.Vehicles[0].Plate != "AB123CD" || len(res.Materials) != 1 || res.Materials[0].MaterialID != 7 {
		t.Fatalf("unexpected resources: %+v", res)
	}

	ops, err := pg.Operators.ListOperators(ctx)
	if err != nil {
		t.Fatalf("ListOperators: %v", err)
	}
	if len(ops) != 3 || ops[0].Available || ops[0].MissionsActive != 1 || !ops[2].Available {
		t.Fatalf("unexpected operators: %+v %+v %+v", ops[0], ops[1], ops[2])
	}

	emails, err := pg.Operators.OperatorEmails(ctx, []int64{3, 2, 1})
	if err != nil {
		t.Fatalf("OperatorEmails: %v", err)
	}
	if len(emails) != 2 || emails[0] != "marco@example.com" || emails[1] != "luca@example.com" {
		t.Fatalf("unexpected emails: %v", emails)
	}

	events, err := pg.Events(ctx, req.ID)
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	if len(events) != 1 || events[0].Type != domain.EventMissionCreated || *events[0].ActorID != admin {
		t.Fatalf("unexpected events: %+v", events)
	}

	// close: outcome, version bump and transition commit together
	err = pg.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		if err := tx.CreateOutcome(ctx, &domain.MissionOutcome{MissionID: req.ID, SuccessLevel: 3, Comment: "partial", EndedAt: now}); err != nil {
			return err
		}
		if err := tx.BumpMissionVersion(ctx, req.ID, 1); err != nil {
			return err
		}
		return tx.UpdateRequestState(ctx, req.ID, domain.StateActive, domain.StateClosed)
	})
	if err != nil {
		t.Fatalf("close tx: %v", err)
	}

	nonPositive, total, err := pg.Requests.ListNonPositive(ctx, 10, 0)
	if err != nil {
		t.Fatalf("ListNonPositive: %v", err)
	}
	if total != 1 || len(nonPositive) != 1 || nonPositive[0].State != domain.StateClosed {
		t.Fatalf("unexpected non-positive list: total=%d %+v", total, nonPositive)
	}

	counts, err := pg.Stat.CountByState(ctx)
	if err != nil {
		t.Fatalf("CountByState: %v", err)
	}
	if counts[domain.StateClosed] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}

	op, err := pg.Operators.GetOperator(ctx, 1)
	if err != nil {
		t.Fatalf("GetOperator: %v", err)
	}
	if !op.Available || op.MissionsActive != 0 || op.MissionsCompleted != 1 {
		t.Fatalf("unexpected operator: %+v", op)
	}
	if _, err := pg.Operators.GetOperator(ctx, 99); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	truncateAll(t)
	seedCatalog(t)
	ctx := context.Background()
	pg := New(testPool, discard())

	req := newRequest("tok-rollback", time.Now().UTC())
	req.State = domain.StateValidated
	if err := pg.Requests.Create(ctx, req); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := pg.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		if err := tx.CreateMission(ctx, &domain.Mission{ID: req.ID, Name: "m", StartedAt: time.Now().UTC(), Version: 1}); err != nil {
			return err
		}
		// unknown operator violates the foreign key
		return tx.AssignOperator(ctx, domain.TeamAssignment{MissionID: req.ID, OperatorID: 999, Role: domain.RoleCaposquadra})
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got: %v", err)
	}

	if _, err := pg.Missions.GetMission(ctx, req.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected mission rolled back, got: %v", err)
	}
	got, err := pg.Requests.GetByID(ctx, req.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.State != domain.StateValidated {
		t.Fatalf("expected state validated, got %s", got.State)
	}
}

func TestWithinTx_VersionConflict(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	pg := New(testPool, discard())

	req := newRequest("tok-version", time.Now().UTC())
	req.State = domain.StateValidated
	if err := pg.Requests.Create(ctx, req); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := pg.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		return tx.CreateMission(ctx, &domain.Mission{ID: req.ID, Name: "m", StartedAt: time.Now().UTC(), Version: 1})
	})
	if err != nil {
		t.Fatalf("CreateMission: %v", err)
	}

	err = pg.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		return tx.BumpMissionVersion(ctx, req.ID, 5)
	})
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("expected ErrConflict, got: %v", err)
	}
}
