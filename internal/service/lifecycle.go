package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"rescueops/internal/clock"
	"rescueops/internal/domain"
	"rescueops/internal/metrics"
	"rescueops/internal/storage"
	"rescueops/pkg/e"
	"rescueops/pkg/validator"

	"github.com/google/uuid"
)

const tokenAttempts = 3

type requestLifecycle struct {
	reporter
	requests RequestRepository
	tx       storage.Transactor
	notifier Notifier
	clock    clock.Clock
}

func NewRequestLifecycle(
	requests RequestRepository,
	tx storage.Transactor,
	notifier Notifier,
	clk clock.Clock,
	logger *slog.Logger,
	m *metrics.Metrics,
) RequestLifecycle {
	return &requestLifecycle{
		reporter: reporter{logger: logger.With(slog.String("component", "lifecycle")), metrics: m},
		requests: requests,
		tx:       tx,
		notifier: notifier,
		clock:    clk,
	}
}

func (s *requestLifecycle) Submit(ctx context.Context, in domain.SubmitRequestInput) (*domain.RescueRequest, error) {
	const op = "lifecycle.Submit"

	in = in.Normalize()
	if err := validator.ValidateStruct(in); err != nil {
		fe, ok := validator.FirstError(err)
		if !ok {
			return nil, s.reject(op, e.Validation(e.CodeValidation, "", err.Error()))
		}
		return nil, s.reject(op, e.Validation(e.CodeValidation, fe.Field, fe.Message))
	}

	now := s.clock.Now().UTC()
	req := &domain.RescueRequest{
		State:         domain.StateSubmitted,
		Address:       in.Address,
		Description:   in.Description,
		IncidentName:  in.IncidentName,
		ReporterEmail: in.ReporterEmail,
		ReporterName:  in.ReporterName,
		Coordinates:   domain.OptionalString(in.Coordinates),
		Photo:         domain.OptionalString(in.Photo),
		SourceIP:      in.SourceIP,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	var err error
	for attempt := 1; attempt <= tokenAttempts; attempt++ {
		req.ConfirmationToken, err = newConfirmationToken()
		if err != nil {
			return nil, s.reject(op, e.Internal(err))
		}
		err = s.requests.Create(ctx, req)
		if !errors.Is(err, e.ErrUniqueViolation) {
			break
		}
		s.logger.Warn("confirmation token collision", slog.Int("attempt", attempt))
	}
	if err != nil {
		return nil, s.storageFailure(op, err)
	}

	s.logger.Info("request submitted", slog.Int64("request_id", req.ID), slog.String("ip", req.SourceIP))

	if s.notifier != nil {
		s.notify(ctx, domain.NoticeRequestSubmitted, func(ctx context.Context) error {
			return s.notifier.RequestSubmitted(ctx, domain.SubmissionNotice{
				RequestID:    req.ID,
				Email:        req.ReporterEmail,
				ReporterName: req.ReporterName,
				IncidentName: req.IncidentName,
				Token:        req.ConfirmationToken,
				SubmittedAt:  req.CreatedAt,
			})
		})
	}

	return req, nil
}

func (s *requestLifecycle) Confirm(ctx context.Context, token string) (domain.Confirmation, error) {
	const op = "lifecycle.Confirm"

	req, err := s.lookupToken(ctx, op, token)
	if err != nil {
		return domain.Confirmation{}, err
	}
	return s.confirm(ctx, op, req)
}

// ConfirmByID checks the id before touching anything.
func (s *requestLifecycle) ConfirmByID(ctx context.Context, id int64, token string) (domain.Confirmation, error) {
	const op = "lifecycle.ConfirmByID"

	req, err := s.lookupToken(ctx, op, token)
	if err != nil {
		return domain.Confirmation{}, err
	}
	if req.ID != id {
		return domain.Confirmation{}, s.reject(op, e.Conflict(e.CodeIDMismatch,
			fmt.Sprintf("token does not belong to request %d", id)))
	}
	return s.confirm(ctx, op, req)
}

func (s *requestLifecycle) lookupToken(ctx context.Context, op, token string) (*domain.RescueRequest, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, s.reject(op, e.Validation(e.CodeInvalidToken, "token", "token is required"))
	}

	req, err := s.requests.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, s.reject(op, e.NotFound(e.CodeTokenNotFound, "no request matches this token"))
		}
		return nil, s.storageFailure(op, err)
	}
	return req, nil
}

func (s *requestLifecycle) confirm(ctx context.Context, op string, req *domain.RescueRequest) (domain.Confirmation, error) {
	// one retry: a concurrent click may win the guarded update
	for attempt := 0; attempt < 2; attempt++ {
		switch req.State {
		case domain.StateValidated:
			return domain.Confirmation{Request: req, Status: domain.ConfirmationRepeated}, nil
		case domain.StateSubmitted:
		default:
			return domain.Confirmation{}, s.reject(op, e.InvalidState(e.CodeInvalidState,
				fmt.Sprintf("request %d is %s and cannot be confirmed", req.ID, req.State)))
		}

		err := s.requests.UpdateState(ctx, req.ID, domain.StateSubmitted, domain.StateValidated)
		if err == nil {
			s.metrics.Transition(domain.StateSubmitted.String(), domain.StateValidated.String())
			req.State = domain.StateValidated
			req.UpdatedAt = s.clock.Now().UTC()
			s.logger.Info("request confirmed", slog.Int64("request_id", req.ID))
			return domain.Confirmation{Request: req, Status: domain.ConfirmationApplied}, nil
		}
		if !errors.Is(err, e.ErrConflict) {
			return domain.Confirmation{}, s.storageFailure(op, err)
		}

		req, err = s.requests.GetByID(ctx, req.ID)
		if err != nil {
			return domain.Confirmation{}, s.storageFailure(op, err)
		}
	}
	return domain.Confirmation{}, s.reject(op, e.InvalidState(e.CodeStateChanged,
		fmt.Sprintf("request %d changed state during confirmation", req.ID)))
}

func (s *requestLifecycle) Cancel(ctx context.Context, id, adminID int64) (*domain.RescueRequest, error) {
	const op = "lifecycle.Cancel"

	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, s.reject(op, e.NotFound(e.CodeRequestNotFound, fmt.Sprintf("request %d not found", id)))
		}
		return nil, s.storageFailure(op, err)
	}

	switch req.State {
	case domain.StateCancelled:
		return nil, s.reject(op, e.Conflict(e.CodeAlreadyCancelled, fmt.Sprintf("request %d is already cancelled", id)))
	case domain.StateClosed:
		return nil, s.reject(op, e.InvalidState(e.CodeCannotCancelClosed, fmt.Sprintf("request %d is closed", id)))
	case domain.StateValidated:
	default:
		return nil, s.reject(op, e.InvalidState(e.CodeInvalidStateForCancellation,
			fmt.Sprintf("request %d is %s, only validated requests can be cancelled", id, req.State)))
	}

	now := s.clock.Now().UTC()
	err = s.tx.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		if err := tx.UpdateRequestState(ctx, id, domain.StateValidated, domain.StateCancelled); err != nil {
			if errors.Is(err, e.ErrConflict) {
				return e.InvalidState(e.CodeStateChanged, fmt.Sprintf("request %d changed state during cancellation", id))
			}
			return err
		}
		return tx.AppendEvent(ctx, domain.NewRequestEvent(id, domain.EventRequestCancelled, &adminID, map[string]any{
			"from": domain.StateValidated.String(),
			"to":   domain.StateCancelled.String(),
		}, now))
	})
	if err != nil {
		return nil, s.storageFailure(op, err)
	}

	s.metrics.Transition(domain.StateValidated.String(), domain.StateCancelled.String())
	s.logger.Info("request cancelled", slog.Int64("request_id", id), slog.Int64("admin_id", adminID))

	req.State = domain.StateCancelled
	req.UpdatedAt = now
	return req, nil
}

// newConfirmationToken returns 64 hex characters from two random UUIDs.
func newConfirmationToken() (string, error) {
	a, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	b, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(a.String()+b.String(), "-", ""), nil
}
