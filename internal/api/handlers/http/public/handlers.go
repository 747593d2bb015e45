package public

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"rescueops/internal/admission"
	"rescueops/internal/domain"
	"rescueops/internal/middleware"
	"rescueops/internal/render"
	"rescueops/pkg/e"

	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Admitter interface {
	TryAdmit(ctx context.Context, ip, email string) (admission.Decision, error)
}

type Lifecycle interface {
	Submit(ctx context.Context, in domain.SubmitRequestInput) (*domain.RescueRequest, error)
	Confirm(ctx context.Context, token string) (domain.Confirmation, error)
	ConfirmByID(ctx context.Context, id int64, token string) (domain.Confirmation, error)
}

type Handler struct {
	logger    *slog.Logger
	Admission Admitter
	Lifecycle Lifecycle
}

func NewHandler(logger *slog.Logger, admitter Admitter, lifecycle Lifecycle) *Handler {
	return &Handler{
		logger:    logger,
		Admission: admitter,
		Lifecycle: lifecycle,
	}
}

// SubmitRequest validates the form, asks admission control for a slot and
// stores the request. Invalid forms never consume a slot.
func (h *Handler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	ip := middleware.ClientIP(r)

	var in domain.SubmitRequestInput
	if err := middleware.ReadJSON(w, r, &in); err != nil {
		render.Error(w, err)
		return
	}
	in.SourceIP = ip
	in = in.Normalize()
	if err := middleware.Validate(in); err != nil {
		l.Warn("invalid submission", slog.String("ip", ip), slog.Any("error", err))
		render.Error(w, err)
		return
	}

	decision, err := h.Admission.TryAdmit(r.Context(), ip, in.ReporterEmail)
	if err != nil {
		l.Error("admission failed", slog.Any("error", err))
		render.Error(w, e.Internal(err))
		return
	}
	if !decision.Admitted {
		w.Header().Set("Retry-After", strconv.Itoa(int(decision.RetryAfter.Seconds())))
		render.JSON(w, http.StatusTooManyRequests, newDeniedResponse(decision))
		return
	}

	req, err := h.Lifecycle.Submit(r.Context(), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("request accepted", slog.Int64("request_id", req.ID))
	render.JSON(w, http.StatusCreated, req)
}

func (h *Handler) ConfirmRequest(w http.ResponseWriter, r *http.Request) {
	res, err := h.Lifecycle.Confirm(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	render.JSON(w, http.StatusOK, newConfirmationResponse(res))
}

func (h *Handler) ConfirmRequestByID(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		l.Warn("invalid id", slog.String("id", idStr))
		render.Error(w, e.Validation(e.CodeValidation, "id", "id must be a positive integer"))
		return
	}

	var body domain.ConfirmByIDRequest
	if err := middleware.DecodeJSON(w, r, &body); err != nil {
		render.Error(w, err)
		return
	}

	res, err := h.Lifecycle.ConfirmByID(r.Context(), id, body.Token)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	render.JSON(w, http.StatusOK, newConfirmationResponse(res))
}
