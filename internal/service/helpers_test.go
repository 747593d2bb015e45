package service_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"rescueops/internal/clock"
	mock_service "rescueops/internal/service/mocks"
	"rescueops/internal/storage"
	mock_storage "rescueops/internal/storage/mocks"
	"rescueops/pkg/e"
)

var t0 = time.Date(2025, 4, 2, 8, 30, 0, 0, time.UTC)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

type fixture struct {
	requests  *mock_service.MockRequestRepository
	missions  *mock_service.MockMissionRepository
	operators *mock_service.MockOperatorRepository
	stats     *mock_service.MockStatsRepository
	notifier  *mock_service.MockNotifier
	tx        *mock_storage.MockTx
	txr       *mock_storage.MockTransactor
	clock     *clock.FakeClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &fixture{
		requests:  mock_service.NewMockRequestRepository(ctrl),
		missions:  mock_service.NewMockMissionRepository(ctrl),
		operators: mock_service.NewMockOperatorRepository(ctrl),
		stats:     mock_service.NewMockStatsRepository(ctrl),
		notifier:  mock_service.NewMockNotifier(ctrl),
		tx:        mock_storage.NewMockTx(ctrl),
		txr:       mock_storage.NewMockTransactor(ctrl),
		clock:     clock.Fake(t0),
	}
}

// expectTx runs the transaction body against the mocked Tx and returns what
// it returns, like a real Transactor would after commit or rollback.
func (f *fixture) expectTx() {
	f.txr.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, storage.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got nil", code)
	}
	var be *e.Error
	if !errors.As(err, &be) {
		t.Fatalf("expected *e.Error with %s, got %T: %v", code, err, err)
	}
	if be.Code != code {
		t.Fatalf("expected code %s, got %s (%v)", code, be.Code, err)
	}
}
