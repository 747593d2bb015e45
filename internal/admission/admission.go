// Package admission gates public submissions: each source IP and each
// reporter email may submit a bounded number of requests per fixed window.
package admission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"rescueops/internal/clock"
	"rescueops/internal/metrics"
)

var ErrClosed = errors.New("admission: controller closed")

type Scope uint8

const (
	ScopeNone Scope = iota
	ScopeIP
	ScopeEmail
	ScopeBoth
)

func (s Scope) String() string {
	switch s {
	case ScopeIP:
		return "ip"
	case ScopeEmail:
		return "email"
	case ScopeBoth:
		return "both"
	default:
		return "none"
	}
}

func (s Scope) MarshalText() ([]byte, error) {
	return []byte(strings.ToUpper(s.String())), nil
}

type Decision struct {
	Admitted   bool
	Scope      Scope
	RetryAfter time.Duration
}

// RetryAfterMinutes is RetryAfter in whole minutes, rounded up.
func (d Decision) RetryAfterMinutes() int {
	return int(d.RetryAfter / time.Minute)
}

// Backend stores the per-key windows. Admit must be atomic across keys: either
// every key gets a slot or none does, and it reports the remaining window for
// each key that blocked.
type Backend interface {
	Admit(ctx context.Context, keys []string, now time.Time, window time.Duration, limit int) (map[string]time.Duration, error)
	Sweep(now time.Time) int
	Close() error
}

type Config struct {
	Window     time.Duration
	Limit      int
	SweepEvery time.Duration
}

func (c Config) withDefaults() Config {
	if c.Window <= 0 {
		c.Window = time.Hour
	}
	if c.Limit <= 0 {
		c.Limit = 1
	}
	if c.SweepEvery <= 0 {
		c.SweepEvery = 5 * time.Minute
	}
	return c
}

type Controller struct {
	cfg     Config
	backend Backend
	clock   clock.Clock
	logger  *slog.Logger
	metrics *metrics.Metrics

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
	mu        sync.RWMutex
	closed    bool
}

// New builds the controller and starts its sweep goroutine. Close must be
// called at shutdown.
func New(cfg Config, backend Backend, clk clock.Clock, logger *slog.Logger, m *metrics.Metrics) *Controller {
	c := &Controller{
		cfg:     cfg.withDefaults(),
		backend: backend,
		clock:   clk,
		logger:  logger.With(slog.String("component", "admission")),
		metrics: m,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go c.run()
	return c
}

func IPKey(ip string) string {
	return "ip:" + strings.TrimSpace(ip)
}

func EmailKey(email string) string {
	return "email:" + strings.ToLower(strings.TrimSpace(email))
}

func (c *Controller) TryAdmit(ctx context.Context, ip, email string) (Decision, error) {
	const op = "admission.TryAdmit"

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return Decision{}, ErrClosed
	}

	ipKey, emailKey := IPKey(ip), EmailKey(email)
	blocked, err := c.backend.Admit(ctx, []string{ipKey, emailKey}, c.clock.Now(), c.cfg.Window, c.cfg.Limit)
	if err != nil {
		c.logger.Error("backend admit failed", slog.String("op", op), slog.Any("error", err))
		return Decision{}, fmt.Errorf("%s: %w", op, err)
	}

	if len(blocked) == 0 {
		c.metrics.Admission(true, ScopeNone.String())
		return Decision{Admitted: true}, nil
	}

	ipWait, ipBlocked := blocked[ipKey]
	emailWait, emailBlocked := blocked[emailKey]

	d := Decision{}
	switch {
	case ipBlocked && emailBlocked:
		d.Scope = ScopeBoth
		d.RetryAfter = max(ipWait, emailWait)
	case ipBlocked:
		d.Scope = ScopeIP
		d.RetryAfter = ipWait
	default:
		d.Scope = ScopeEmail
		d.RetryAfter = emailWait
	}
	d.RetryAfter = ceilMinutes(d.RetryAfter)

	c.metrics.Admission(false, d.Scope.String())
	c.logger.Info("submission denied",
		slog.String("scope", d.Scope.String()),
		slog.String("ip", ip),
		slog.Int("retry_after_minutes", d.RetryAfterMinutes()),
	)
	return d, nil
}

// Sweep removes expired windows once. The background loop calls it on every
// tick.
func (c *Controller) Sweep() int {
	n := c.backend.Sweep(c.clock.Now())
	if n > 0 {
		c.metrics.Swept(n)
		c.logger.Debug("expired windows swept", slog.Int("count", n))
	}
	return n
}

// Close stops the sweep and releases the backend. Later calls return the
// first result.
func (c *Controller) Close() error {
	c.closeOnce.Do(func() {
		close(c.stop)
		<-c.done

		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()

		c.closeErr = c.backend.Close()
		c.logger.Info("admission controller stopped")
	})
	return c.closeErr
}

func (c *Controller) run() {
	defer close(c.done)

	ticker := c.clock.NewTicker(c.cfg.SweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.Sweep()
		}
	}
}

func ceilMinutes(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return time.Duration(math.Ceil(d.Minutes())) * time.Minute
}
