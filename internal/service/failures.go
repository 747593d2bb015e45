package service

import (
	"context"
	"errors"
	"log/slog"

	"rescueops/internal/metrics"
	"rescueops/pkg/e"
)

// reporter turns outcomes of an operation into logs and metrics.
type reporter struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// reject passes a business failure through unchanged.
func (r reporter) reject(operation string, err *e.Error) error {
	r.metrics.Failure(operation, err.Code)
	r.logger.Info("operation rejected",
		slog.String("op", operation),
		slog.String("code", err.Code),
		slog.String("message", err.Message),
	)
	return err
}

// storageFailure is the single place where unexpected store errors are logged
// and converted. Business errors raised inside a transaction pass through.
func (r reporter) storageFailure(operation string, err error) error {
	var be *e.Error
	if errors.As(err, &be) {
		r.metrics.Failure(operation, be.Code)
		return err
	}
	r.logger.Error("storage failure", slog.String("op", operation), slog.Any("error", err))
	r.metrics.Failure(operation, e.CodeDatabase)
	return e.Database(err)
}

// notify runs a notifier call detached from the caller's cancellation.
func (r reporter) notify(ctx context.Context, typ string, call func(ctx context.Context) error) {
	err := call(context.WithoutCancel(ctx))
	r.metrics.Notice(typ, err)
	if err != nil {
		r.logger.Warn("notice not queued", slog.String("type", typ), slog.Any("error", err))
	}
}
