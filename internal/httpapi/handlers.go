// Package httpapi exposes the read-only JSON surface over the game services.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"mlbscores/internal/app/games"
	"mlbscores/internal/dates"
	"mlbscores/internal/domain"
	"mlbscores/internal/providers"
	"mlbscores/internal/teams"
)

// Handler wires HTTP routes to the game service.
type Handler struct {
	games  *games.Service
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc *games.Service, logger *slog.Logger) *Handler {
	return &Handler{games: svc, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	switch {
	case r.URL.Path == "/healthz":
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
	case r.URL.Path == "/teams":
		writeJSON(w, http.StatusOK, map[string][]domain.Team{"teams": teams.All()}, h.logger)
	case r.URL.Path == "/games":
		h.listGames(w, r)
	case strings.HasPrefix(r.URL.Path, "/games/"):
		h.gameDetail(w, r)
	default:
		writeError(w, http.StatusNotFound, "not found", h.logger)
	}
}

func (h *Handler) listGames(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	date, err := dates.Resolve(q.Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	var filter *domain.Team
	if teamQuery := q.Get("team"); teamQuery != "" {
		team, err := teams.Resolve(teamQuery)
		if err != nil {
			writeError(w, errorStatus(err), err.Error(), h.logger)
			return
		}
		filter = &team
	}

	days := 1
	if raw := q.Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "days must be a positive integer", h.logger)
			return
		}
		days = parsed
	}

	list, err := h.games.ListGames(r.Context(), date, filter, days)
	if err != nil {
		writeError(w, errorStatus(err), err.Error(), h.logger)
		return
	}
	if list == nil {
		list = []domain.GameSummary{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"date":  dates.FormatAPI(date),
		"games": list,
	}, h.logger)
}

func (h *Handler) gameDetail(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimPrefix(r.URL.Path, "/games/")
	gamePk, err := strconv.Atoi(raw)
	if err != nil || gamePk <= 0 {
		writeError(w, http.StatusBadRequest, "game id must be a positive integer", h.logger)
		return
	}

	detail, err := h.games.Detail(r.Context(), gamePk)
	if err != nil {
		writeError(w, errorStatus(err), err.Error(), h.logger)
		return
	}
	writeJSON(w, http.StatusOK, detail, h.logger)
}

// errorStatus maps the client error taxonomy onto HTTP statuses: caller
// mistakes are 4xx, upstream trouble is 502.
func errorStatus(err error) int {
	var (
		unknownTeam   *teams.UnknownTeamError
		ambiguousTeam *teams.AmbiguousTeamError
		invalidDate   *dates.InvalidDateError
		noGame        *games.NoGameError
	)
	switch {
	case providers.IsGameNotFound(err):
		return http.StatusNotFound
	case errors.As(err, &unknownTeam), errors.As(err, &noGame):
		return http.StatusNotFound
	case errors.As(err, &ambiguousTeam), errors.As(err, &invalidDate):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout
	default:
		return http.StatusBadGateway
	}
}
