// Package games coordinates schedule, game resolution, and live-feed lookups
// over a games provider.
package games

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"mlbscores/internal/dates"
	"mlbscores/internal/domain"
	"mlbscores/internal/logging"
	"mlbscores/internal/providers"
	"mlbscores/internal/teams"
)

// NoGameError reports that a team has no game on the requested date.
type NoGameError struct {
	Team domain.Team
	Date string
}

func (e *NoGameError) Error() string {
	return fmt.Sprintf("%s (%s) is not playing on %s", e.Team.Name, e.Team.Abbreviation, e.Date)
}

// Resolution is the outcome of resolving a game reference. For a
// doubleheader, GamePk is the game with the earliest start time and
// Alternates carries the remaining gamePks so the caller can disambiguate.
type Resolution struct {
	GamePk     int   `json:"gamePk"`
	Alternates []int `json:"alternates,omitempty"`
}

// Doubleheader reports whether the reference matched more than one game.
func (r Resolution) Doubleheader() bool {
	return len(r.Alternates) > 0
}

// Service exposes the normalized game operations.
type Service struct {
	provider providers.GameProvider
	logger   *slog.Logger
}

// NewService constructs a Service over the given provider.
func NewService(provider providers.GameProvider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// ListGames returns the games for days consecutive days starting at start, in
// date order, preserving upstream per-day ordering. One schedule request is
// issued per day, sequentially; there is deliberately no per-game fan-out
// against the live-feed endpoint. An empty result is valid. When filter is
// non-nil only games involving that team (compared by id) are kept.
func (s *Service) ListGames(ctx context.Context, start time.Time, filter *domain.Team, days int) ([]domain.GameSummary, error) {
	if days < 1 {
		days = 1
	}

	var out []domain.GameSummary
	for i := 0; i < days; i++ {
		day := dates.FormatAPI(start.AddDate(0, 0, i))
		games, err := s.provider.FetchSchedule(ctx, day)
		if err != nil {
			return nil, err
		}
		for _, g := range games {
			if filter != nil && !g.Involves(filter.ID) {
				continue
			}
			out = append(out, g)
		}
	}
	return out, nil
}

// ResolveGame turns a user-supplied reference into a concrete gamePk. A
// numeric reference is returned as-is without any network traffic; existence
// is checked downstream by the live-feed lookup. Anything else is treated as
// a team query against the schedule for the given date.
func (s *Service) ResolveGame(ctx context.Context, reference string, date time.Time) (Resolution, error) {
	trimmed := strings.TrimSpace(reference)
	if pk, err := strconv.Atoi(trimmed); err == nil && pk > 0 {
		return Resolution{GamePk: pk}, nil
	}

	team, err := teams.Resolve(trimmed)
	if err != nil {
		return Resolution{}, err
	}

	matches, err := s.ListGames(ctx, date, &team, 1)
	if err != nil {
		return Resolution{}, err
	}
	if len(matches) == 0 {
		return Resolution{}, &NoGameError{Team: team, Date: dates.FormatAPI(date)}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].StartTime.Before(matches[j].StartTime)
	})

	resolution := Resolution{GamePk: matches[0].GamePk}
	for _, g := range matches[1:] {
		resolution.Alternates = append(resolution.Alternates, g.GamePk)
	}
	if resolution.Doubleheader() {
		logging.Warn(s.logger, "doubleheader: picked earliest game",
			slog.String(logging.FieldTeam, team.Abbreviation),
			slog.String(logging.FieldDate, dates.FormatAPI(date)),
			slog.Int(logging.FieldGamePk, resolution.GamePk),
			slog.Int(logging.FieldCount, len(matches)))
	}
	return resolution, nil
}

// Detail returns the normalized live-feed view of one game.
func (s *Service) Detail(ctx context.Context, gamePk int) (domain.GameDetail, error) {
	return s.provider.FetchFeed(ctx, gamePk)
}
