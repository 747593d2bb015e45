package admission_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rescueops/internal/admission"
	"rescueops/internal/clock"
)

var t0 = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newController(t *testing.T, cfg admission.Config) (*admission.Controller, *clock.FakeClock, *admission.MemoryBackend) {
	t.Helper()
	clk := clock.Fake(t0)
	backend := admission.NewMemoryBackend()
	c := admission.New(cfg, backend, clk, newTestLogger(), nil)
	t.Cleanup(func() { _ = c.Close() })
	return c, clk, backend
}

func TestTryAdmit_SameIPWithinWindow(t *testing.T) {
	t.Parallel()

	c, clk, _ := newController(t, admission.Config{Window: time.Hour})
	ctx := context.Background()

	d, err := c.TryAdmit(ctx, "10.0.0.1", "a@b.com")
	require.NoError(t, err)
	require.True(t, d.Admitted)

	clk.Advance(10 * time.Minute)
	d, err = c.TryAdmit(ctx, "10.0.0.1", "other@b.com")
	require.NoError(t, err)
	require.False(t, d.Admitted)
	require.Equal(t, admission.ScopeIP, d.Scope)
	require.Equal(t, 50*time.Minute, d.RetryAfter)
	require.Equal(t, 50, d.RetryAfterMinutes())

	clk.Advance(50 * time.Minute)
	d, err = c.TryAdmit(ctx, "10.0.0.1", "third@b.com")
	require.NoError(t, err)
	require.True(t, d.Admitted, "window elapsed, IP must be admitted again")
}

func TestTryAdmit_EmailScopeIsNormalized(t *testing.T) {
	t.Parallel()

	c, clk, _ := newController(t, admission.Config{Window: time.Hour})
	ctx := context.Background()

	_, err := c.TryAdmit(ctx, "10.0.0.1", "A@B.com")
	require.NoError(t, err)

	clk.Advance(90 * time.Second)
	d, err := c.TryAdmit(ctx, "10.0.0.2", " a@b.COM ")
	require.NoError(t, err)
	require.False(t, d.Admitted)
	require.Equal(t, admission.ScopeEmail, d.Scope)
	// 58m30s remaining rounds up
	require.Equal(t, 59*time.Minute, d.RetryAfter)
}

func TestTryAdmit_BothReportsLargerWait(t *testing.T) {
	t.Parallel()

	c, clk, _ := newController(t, admission.Config{Window: time.Hour})
	ctx := context.Background()

	_, err := c.TryAdmit(ctx, "10.0.0.1", "first@b.com")
	require.NoError(t, err)
	clk.Advance(20 * time.Minute)
	_, err = c.TryAdmit(ctx, "10.0.0.9", "second@b.com")
	require.NoError(t, err)

	clk.Advance(5 * time.Minute)
	d, err := c.TryAdmit(ctx, "10.0.0.1", "second@b.com")
	require.NoError(t, err)
	require.False(t, d.Admitted)
	require.Equal(t, admission.ScopeBoth, d.Scope)
	// ip window ends in 35m, email window in 55m
	require.Equal(t, 55*time.Minute, d.RetryAfter)
}

func TestTryAdmit_DenialDoesNotConsumeSlot(t *testing.T) {
	t.Parallel()

	c, clk, _ := newController(t, admission.Config{Window: time.Hour})
	ctx := context.Background()

	_, err := c.TryAdmit(ctx, "10.0.0.1", "a@b.com")
	require.NoError(t, err)

	// denied on IP; the fresh email must not be charged
	d, err := c.TryAdmit(ctx, "10.0.0.1", "fresh@b.com")
	require.NoError(t, err)
	require.False(t, d.Admitted)

	clk.Advance(time.Minute)
	d, err = c.TryAdmit(ctx, "10.0.0.2", "fresh@b.com")
	require.NoError(t, err)
	require.True(t, d.Admitted)
}

func TestTryAdmit_LimitAboveOne(t *testing.T) {
	t.Parallel()

	c, _, _ := newController(t, admission.Config{Window: time.Hour, Limit: 2})
	ctx := context.Background()

	for i, want := range []bool{true, true, false} {
		d, err := c.TryAdmit(ctx, "10.0.0.1", "a@b.com")
		require.NoError(t, err)
		require.Equalf(t, want, d.Admitted, "attempt %d", i)
	}
}

func TestTryAdmit_ConcurrentSameKeyAdmitsOnce(t *testing.T) {
	t.Parallel()

	c, _, _ := newController(t, admission.Config{Window: time.Hour})
	ctx := context.Background()

	var admitted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := c.TryAdmit(ctx, "10.0.0.1", "a@b.com")
			if err == nil && d.Admitted {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), admitted.Load())
}

func TestSweep_RemovesExpiredOnly(t *testing.T) {
	t.Parallel()

	// the background ticker stays out of the way
	c, clk, backend := newController(t, admission.Config{Window: time.Hour, SweepEvery: 24 * time.Hour})
	ctx := context.Background()

	_, err := c.TryAdmit(ctx, "10.0.0.1", "a@b.com")
	require.NoError(t, err)
	clk.Advance(30 * time.Minute)
	_, err = c.TryAdmit(ctx, "10.0.0.2", "b@b.com")
	require.NoError(t, err)
	require.Equal(t, 4, backend.Len())

	clk.Set(t0.Add(time.Hour))
	require.Equal(t, 2, c.Sweep())
	require.Equal(t, 2, backend.Len())
}

func TestSweep_BackgroundLoopRunsOnTicker(t *testing.T) {
	t.Parallel()

	c, clk, backend := newController(t, admission.Config{Window: time.Hour, SweepEvery: 10 * time.Minute})

	_, err := c.TryAdmit(context.Background(), "10.0.0.1", "a@b.com")
	require.NoError(t, err)

	require.Eventually(t, func() bool { return clk.TickerCount() == 1 }, time.Second, 5*time.Millisecond)
	clk.Advance(70 * time.Minute)

	require.Eventually(t, func() bool { return backend.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestClose_StopsAndRejects(t *testing.T) {
	t.Parallel()

	clk := clock.Fake(t0)
	backend := admission.NewMemoryBackend()
	c := admission.New(admission.Config{}, backend, clk, newTestLogger(), nil)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close(), "second close is a no-op")

	_, err := c.TryAdmit(context.Background(), "10.0.0.1", "a@b.com")
	require.ErrorIs(t, err, admission.ErrClosed)
	require.Equal(t, 0, backend.Len())
	require.Equal(t, 0, clk.TickerCount())
}
