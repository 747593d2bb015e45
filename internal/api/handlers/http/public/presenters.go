package public

import (
	"log/slog"
	"net/http"

	"rescueops/internal/admission"
	"rescueops/internal/domain"
	"rescueops/internal/render"
	"rescueops/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type deniedResponse struct {
	Error             render.ErrorDetail `json:"error"`
	Scope             admission.Scope    `json:"scope"`
	RetryAfterMinutes int                `json:"retry_after_minutes"`
}

func newDeniedResponse(d admission.Decision) deniedResponse {
	return deniedResponse{
		Error: render.ErrorDetail{
			Code:    e.CodeRateLimited,
			Message: "too many submissions, try again later",
		},
		Scope:             d.Scope,
		RetryAfterMinutes: d.RetryAfterMinutes(),
	}
}

type confirmationResponse struct {
	Status  domain.ConfirmationStatus `json:"status"`
	Warning bool                      `json:"warning"`
	Request *domain.RescueRequest     `json:"request"`
}

func newConfirmationResponse(c domain.Confirmation) confirmationResponse {
	return confirmationResponse{Status: c.Status, Warning: c.Warning(), Request: c.Request}
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := render.Error(w, err)
	if status >= http.StatusInternalServerError {
		h.log(r).Error("handler error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}
