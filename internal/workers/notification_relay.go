package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"rescueops/internal/domain"
	"rescueops/internal/metrics"
	"rescueops/pkg/e"
)

const (
	dequeueWait  = 5 * time.Second
	relayRetries = 3
)

type NotificationSource interface {
	Dequeue(ctx context.Context, timeout time.Duration) (domain.Envelope, error)
}

// NotificationRelay drains the notification queue and posts every envelope to
// a webhook. A notice that still fails after the retries is dropped and logged.
type NotificationRelay struct {
	logger  *slog.Logger
	queue   NotificationSource
	url     string
	http    *http.Client
	metrics *metrics.Metrics

	// newBackOff is replaced in tests to avoid real sleeps.
	newBackOff func() backoff.BackOff
}

func NewNotificationRelay(logger *slog.Logger, queue NotificationSource, url string, timeout time.Duration, m *metrics.Metrics) *NotificationRelay {
	return &NotificationRelay{
		logger:  logger.With(slog.String("component", "relay")),
		queue:   queue,
		url:     url,
		http:    &http.Client{Timeout: timeout},
		metrics: m,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = time.Second
			return backoff.WithMaxRetries(b, relayRetries-1)
		},
	}
}

func (s *NotificationRelay) Run(ctx context.Context) {
	s.logger.Info("notification relay started", slog.String("url", s.url))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("notification relay stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		env, err := s.queue.Dequeue(ctx, dequeueWait)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) || ctx.Err() != nil {
				continue
			}
			s.logger.Error("dequeue failed", slog.Any("error", err))
			select {
			case <-ctx.Done():
			case <-time.After(500 * time.Millisecond):
			}
			continue
		}

		err = s.Deliver(ctx, env)
		s.metrics.Relayed(env.Type, err)
		if err != nil {
			s.logger.Warn("notice dropped", slog.String("type", env.Type), slog.Any("error", err))
		}
	}
}

// Deliver posts one envelope, retrying transport errors and non-2xx answers.
func (s *NotificationRelay) Deliver(ctx context.Context, env domain.Envelope) error {
	body, err := json.Marshal(env)
	if err != nil {
		return err
	}

	attempt := 0
	return backoff.RetryNotify(
		func() error {
			attempt++
			return s.post(ctx, body)
		},
		backoff.WithContext(s.newBackOff(), ctx),
		func(err error, wait time.Duration) {
			s.logger.Warn("webhook failed",
				slog.Int("attempt", attempt),
				slog.String("type", env.Type),
				slog.String("reason", err.Error()),
				slog.Duration("wait", wait),
			)
		},
	)
}

func (s *NotificationRelay) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook answered %s", resp.Status)
	}
	return nil
}
