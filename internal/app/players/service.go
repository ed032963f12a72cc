// Package players coordinates player search and season-stat lookups over a
// player provider.
package players

import (
	"context"
	"log/slog"
	"time"

	"mlbscores/internal/domain"
	"mlbscores/internal/logging"
	"mlbscores/internal/providers"
	"mlbscores/internal/teams"
)

// Service exposes the normalized player operations.
type Service struct {
	provider providers.PlayerProvider
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a Service over the given provider.
func NewService(provider providers.PlayerProvider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger, now: time.Now}
}

// Search finds active players by (partial) name. When teamQuery is non-empty
// it is resolved through the team directory and results are narrowed to that
// club.
func (s *Service) Search(ctx context.Context, name, teamQuery string) ([]domain.Player, error) {
	var filter *domain.Team
	if teamQuery != "" {
		team, err := teams.Resolve(teamQuery)
		if err != nil {
			return nil, err
		}
		filter = &team
	}

	found, err := s.provider.SearchPlayers(ctx, name)
	if err != nil {
		return nil, err
	}

	matches := make([]domain.Player, 0, len(found))
	for _, p := range found {
		if !p.Active {
			continue
		}
		if filter != nil && p.Team.ID != filter.ID {
			continue
		}
		matches = append(matches, p)
	}
	logging.Debug(s.logger, "player search",
		slog.String("name", name),
		slog.Int(logging.FieldCount, len(matches)))
	return matches, nil
}

// SeasonStats returns a player's profile with their hitting and pitching
// lines for the given season. A zero season means the current year.
func (s *Service) SeasonStats(ctx context.Context, playerID, season int) (domain.PlayerStats, error) {
	player, err := s.provider.FetchPlayer(ctx, playerID)
	if err != nil {
		return domain.PlayerStats{}, err
	}

	if season == 0 {
		season = s.now().Year()
	}
	batting, pitching, err := s.provider.FetchSeasonStats(ctx, playerID, season)
	if err != nil {
		return domain.PlayerStats{}, err
	}

	return domain.PlayerStats{Player: player, Batting: batting, Pitching: pitching}, nil
}
