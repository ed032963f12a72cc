package providers

import (
	"context"

	"mlbscores/internal/domain"
)

// ScheduleProvider fetches the normalized schedule for one day.
// The date must be a YYYY-MM-DD string.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, date string) ([]domain.GameSummary, error)
}

// FeedProvider fetches the normalized live feed for one game.
type FeedProvider interface {
	FetchFeed(ctx context.Context, gamePk int) (domain.GameDetail, error)
}

// GameProvider combines the schedule and live-feed capabilities.
type GameProvider interface {
	ScheduleProvider
	FeedProvider
}

// PlayerProvider fetches normalized player profiles and season stats.
type PlayerProvider interface {
	SearchPlayers(ctx context.Context, name string) ([]domain.Player, error)
	FetchPlayer(ctx context.Context, playerID int) (domain.Player, error)
	FetchSeasonStats(ctx context.Context, playerID int, season int) (*domain.BattingLine, *domain.PitchingLine, error)
}
