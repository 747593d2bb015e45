package admin

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"rescueops/internal/domain"
	"rescueops/internal/middleware"
	"rescueops/internal/render"
	"rescueops/pkg/e"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type RequestQueries interface {
	Detail(ctx context.Context, id int64) (*domain.RequestDetail, error)
	List(ctx context.Context, filter domain.RequestFilter) (*domain.RequestPage, error)
	ListNonPositive(ctx context.Context, page, limit int) (*domain.RequestPage, error)
	ListAssignable(ctx context.Context) ([]*domain.RescueRequest, error)
}

type RequestCanceller interface {
	Cancel(ctx context.Context, id, adminID int64) (*domain.RescueRequest, error)
}

type MissionAssigner interface {
	CreateMission(ctx context.Context, in domain.CreateMissionInput) (*domain.MissionAssignment, error)
}

type MissionCloser interface {
	CloseMission(ctx context.Context, in domain.CloseMissionInput) (*domain.MissionOutcome, error)
}

type OperatorRoster interface {
	ListOperators(ctx context.Context, onlyAvailable bool) ([]*domain.OperatorStatus, error)
	GetOperator(ctx context.Context, id int64) (*domain.OperatorStatus, error)
}

type StatsGetter interface {
	GetStats(ctx context.Context) (*domain.RequestStats, error)
}

type Handler struct {
	logger    *slog.Logger
	Requests  RequestQueries
	Canceller RequestCanceller
	Assigner  MissionAssigner
	Closer    MissionCloser
	Roster    OperatorRoster
	Stats     StatsGetter
}

func NewHandler(
	logger *slog.Logger,
	requests RequestQueries,
	canceller RequestCanceller,
	assigner MissionAssigner,
	closer MissionCloser,
	roster OperatorRoster,
	stats StatsGetter,
) *Handler {
	return &Handler{
		logger:    logger,
		Requests:  requests,
		Canceller: canceller,
		Assigner:  assigner,
		Closer:    closer,
		Roster:    roster,
		Stats:     stats,
	}
}

func (h *Handler) AdminRequestList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminRequestList", slog.String("query", r.URL.RawQuery))

	q := r.URL.Query()
	filter := domain.RequestFilter{
		Page:  parseInt(q.Get("page"), 1),
		Limit: parseInt(q.Get("limit"), domain.DefaultPageLimit),
	}
	if raw := q.Get("state"); raw != "" {
		state, err := domain.ParseRequestState(raw)
		if err != nil {
			l.Warn("invalid state filter", slog.String("state", raw))
			render.Error(w, e.Validation(e.CodeValidation, "state", err.Error()))
			return
		}
		filter.State = &state
	}

	page, err := h.Requests.List(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("requests listed", slog.Int("count", len(page.Requests)), slog.Int64("total", page.Total))
	render.JSON(w, http.StatusOK, page)
}

func (h *Handler) AdminRequestNonPositive(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.Requests.ListNonPositive(r.Context(),
		parseInt(q.Get("page"), 1),
		parseInt(q.Get("limit"), domain.DefaultPageLimit),
	)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	render.JSON(w, http.StatusOK, page)
}

func (h *Handler) AdminRequestAssignable(w http.ResponseWriter, r *http.Request) {
	list, err := h.Requests.ListAssignable(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	render.JSON(w, http.StatusOK, map[string]any{"requests": list})
}

func (h *Handler) AdminRequestGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	detail, err := h.Requests.Detail(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	render.JSON(w, http.StatusOK, detail)
}

func (h *Handler) AdminRequestCancel(w http.ResponseWriter, r *http.Request) {
	ident, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	req, err := h.Canceller.Cancel(r.Context(), id, ident.UserID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("request cancelled", slog.Int64("id", id), slog.Int64("admin_id", ident.UserID))
	render.JSON(w, http.StatusOK, req)
}

func (h *Handler) AdminMissionCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	ident, ok := h.identity(w, r)
	if !ok {
		return
	}

	var body domain.CreateMissionRequest
	if err := middleware.DecodeJSON(w, r, &body); err != nil {
		l.Warn("invalid mission payload", slog.Any("error", err))
		render.Error(w, err)
		return
	}
	if body.MixesTeamLists() {
		l.Warn("mission payload mixes operators with explicit roles")
		render.Error(w, e.Validation(e.CodeValidation, "operators", "operators cannot be combined with caposquadra or standard"))
		return
	}

	out, err := h.Assigner.CreateMission(r.Context(), body.ToInput(ident.UserID))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("mission created", slog.Int64("mission_id", out.Mission.ID), slog.Int("operators", len(out.Team)))
	render.JSON(w, http.StatusCreated, out)
}

func (h *Handler) AdminMissionClose(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	ident, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var body domain.CloseMissionRequest
	if err := middleware.DecodeJSON(w, r, &body); err != nil {
		render.Error(w, err)
		return
	}

	out, err := h.Closer.CloseMission(r.Context(), domain.CloseMissionInput{
		MissionID:    id,
		SuccessLevel: body.SuccessLevel,
		Comment:      body.Comment,
		ClosedBy:     ident.UserID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("mission closed", slog.Int64("mission_id", id), slog.Int("success_level", out.SuccessLevel))
	render.JSON(w, http.StatusOK, out)
}

func (h *Handler) AdminOperatorList(w http.ResponseWriter, r *http.Request) {
	onlyAvailable, _ := strconv.ParseBool(r.URL.Query().Get("available"))

	list, err := h.Roster.ListOperators(r.Context(), onlyAvailable)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	render.JSON(w, http.StatusOK, map[string]any{"operators": list})
}

func (h *Handler) AdminOperatorGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	op, err := h.Roster.GetOperator(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	render.JSON(w, http.StatusOK, op)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.GetStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	render.JSON(w, http.StatusOK, stats)
}
