package admin

import (
	"log/slog"
	"net/http"
	"strconv"

	"rescueops/internal/domain"
	"rescueops/internal/middleware"
	"rescueops/internal/render"
	"rescueops/pkg/e"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := render.Error(w, err)

	l := h.log(r)
	if status >= http.StatusInternalServerError {
		l.Error("handler error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		return
	}
	l.Info("request rejected", slog.String("path", r.URL.Path), slog.String("code", e.CodeOf(err)))
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		h.log(r).Warn("invalid id", slog.String("id", idStr))
		render.Error(w, e.Validation(e.CodeValidation, "id", "id must be a positive integer"))
		return 0, false
	}
	return id, true
}

func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		render.Fail(w, http.StatusUnauthorized, e.CodeUnauthorized, "missing identity")
		return domain.Identity{}, false
	}
	return ident, true
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
