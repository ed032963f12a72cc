package statsapi

import (
	"fmt"
	"strings"
	"time"

	"mlbscores/internal/domain"
	"mlbscores/internal/teams"
)

func mapSummary(g scheduleGame, dateLabel string) domain.GameSummary {
	return domain.GameSummary{
		GamePk:     g.GamePk,
		Status:     mapStatus(g.Status.DetailedState),
		StatusText: g.Status.DetailedState,
		AwayTeam:   mapTeamNode(g.Teams.Away.Team),
		HomeTeam:   mapTeamNode(g.Teams.Home.Team),
		AwayRecord: mapRecord(g.Teams.Away.LeagueRecord),
		HomeRecord: mapRecord(g.Teams.Home.LeagueRecord),
		AwayScore:  g.Teams.Away.Score,
		HomeScore:  g.Teams.Home.Score,
		Venue:      g.Venue.Name,
		StartTime:  parseTimestamp(g.GameDate),
		Date:       dateLabel,
	}
}

func mapDetail(f feedResponse) domain.GameDetail {
	ls := f.LiveData.Linescore

	detail := domain.GameDetail{
		GamePk:     f.GamePk,
		Status:     mapStatus(f.GameData.Status.DetailedState),
		StatusText: f.GameData.Status.DetailedState,
		AwayTeam:   mapTeamNode(f.GameData.Teams.Away),
		HomeTeam:   mapTeamNode(f.GameData.Teams.Home),
		Venue:      f.GameData.Venue.Name,
		StartTime:  parseTimestamp(f.GameData.Datetime.DateTime),
		Inning:     ls.CurrentInning,
		Outs:       ls.Outs,
		AwayTotals: mapTotals(ls.Teams.Away),
		HomeTotals: mapTotals(ls.Teams.Home),
	}

	if ls.IsTopInning != nil {
		if *ls.IsTopInning {
			detail.InningHalf = domain.HalfTop
		} else {
			detail.InningHalf = domain.HalfBottom
		}
	}

	for _, inning := range ls.Innings {
		detail.LineScore = append(detail.LineScore, domain.InningLine{
			Away: inning.Away.Runs,
			Home: inning.Home.Runs,
		})
	}

	if play := f.LiveData.Plays.CurrentPlay; play != nil {
		detail.Balls = play.Count.Balls
		detail.Strikes = play.Count.Strikes
		if play.Count.Outs != nil {
			detail.Outs = play.Count.Outs
		}

		if m := play.Matchup; m != nil {
			if m.Batter.FullName != "" || m.Pitcher.FullName != "" {
				detail.Matchup = &domain.Matchup{
					Batter:  m.Batter.FullName,
					Pitcher: m.Pitcher.FullName,
				}
			}
			detail.Runners = domain.BaseState{
				First:  m.PostOnFirst != nil,
				Second: m.PostOnSecond != nil,
				Third:  m.PostOnThird != nil,
			}
		}

		if play.Result.Description != "" {
			detail.LastPlay = &domain.PlayResult{
				Description: play.Result.Description,
				Event:       play.Result.Event,
				RBI:         play.Result.RBI,
				AwayScore:   play.Result.AwayScore,
				HomeScore:   play.Result.HomeScore,
			}
		}
	}

	return detail
}

func mapPlayer(p personDetailNode) domain.Player {
	team := domain.Team{ID: p.CurrentTeam.ID, Name: p.CurrentTeam.Name, Abbreviation: p.CurrentTeam.Abbreviation}
	if team.Abbreviation == "" {
		if known, ok := teams.ByID(team.ID); ok {
			team.Abbreviation = known.Abbreviation
			if team.Name == "" {
				team.Name = known.Name
			}
		}
	}
	return domain.Player{
		ID:            p.ID,
		FullName:      p.FullName,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Active:        p.Active,
		PrimaryNumber: p.PrimaryNumber,
		Height:        p.Height,
		Weight:        p.Weight,
		BirthDate:     p.BirthDate,
		Age:           p.CurrentAge,
		DebutDate:     p.MLBDebutDate,
		Position:      p.PrimaryPosition.Abbreviation,
		PositionName:  p.PrimaryPosition.Name,
		Bats:          p.BatSide.Code,
		Throws:        p.PitchHand.Code,
		Team:          team,
	}
}

func mapBatting(s splitNode) *domain.BattingLine {
	return &domain.BattingLine{
		Season:           s.Season,
		TeamName:         s.Team.Name,
		Games:            s.Stat.GamesPlayed,
		AtBats:           s.Stat.AtBats,
		PlateAppearances: s.Stat.PlateAppearances,
		Runs:             s.Stat.Runs,
		Hits:             s.Stat.Hits,
		Doubles:          s.Stat.Doubles,
		Triples:          s.Stat.Triples,
		HomeRuns:         s.Stat.HomeRuns,
		RBI:              s.Stat.RBI,
		StolenBases:      s.Stat.StolenBases,
		Walks:            s.Stat.BaseOnBalls,
		Strikeouts:       s.Stat.StrikeOuts,
		AVG:              s.Stat.AVG,
		OBP:              s.Stat.OBP,
		SLG:              s.Stat.SLG,
		OPS:              s.Stat.OPS,
	}
}

func mapPitching(s splitNode) *domain.PitchingLine {
	return &domain.PitchingLine{
		Season:         s.Season,
		TeamName:       s.Team.Name,
		Games:          s.Stat.GamesPlayed,
		Starts:         s.Stat.GamesStarted,
		Wins:           s.Stat.Wins,
		Losses:         s.Stat.Losses,
		ERA:            s.Stat.ERA,
		InningsPitched: s.Stat.InningsPitched,
		Hits:           s.Stat.Hits,
		Runs:           s.Stat.Runs,
		EarnedRuns:     s.Stat.EarnedRuns,
		HomeRuns:       s.Stat.HomeRuns,
		Strikeouts:     s.Stat.StrikeOuts,
		Walks:          s.Stat.BaseOnBalls,
		Saves:          s.Stat.Saves,
		Holds:          s.Stat.Holds,
		WHIP:           s.Stat.WHIP,
		StrikeoutsPer9: s.Stat.StrikeoutsPer9,
		WalksPer9:      s.Stat.WalksPer9,
	}
}

// mapStatus normalizes the upstream detailedState. Unrecognized states map to
// StatusOther so new upstream states never fail a parse.
func mapStatus(detailed string) domain.GameStatus {
	lower := strings.ToLower(strings.TrimSpace(detailed))
	switch lower {
	case "scheduled":
		return domain.StatusScheduled
	case "pre-game":
		return domain.StatusPreGame
	case "warmup":
		return domain.StatusWarmup
	case "in progress", "manager challenge":
		return domain.StatusInProgress
	case "final", "game over":
		return domain.StatusFinal
	}
	switch {
	case strings.HasPrefix(lower, "completed early"):
		return domain.StatusFinal
	case strings.HasPrefix(lower, "postponed"):
		return domain.StatusPostponed
	default:
		return domain.StatusOther
	}
}

func mapTeamNode(t teamNode) domain.Team {
	team := domain.Team{ID: t.ID, Name: t.Name, Abbreviation: t.Abbreviation}
	if known, ok := teams.ByID(t.ID); ok {
		if team.Abbreviation == "" {
			team.Abbreviation = known.Abbreviation
		}
		if team.Name == "" {
			team.Name = known.Name
		}
	}
	return team
}

func mapRecord(r *leagueRecord) string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("%d-%d", r.Wins, r.Losses)
}

func mapTotals(t lineTotalsNode) domain.LineTotals {
	return domain.LineTotals{Runs: t.Runs, Hits: t.Hits, Errors: t.Errors}
}

func parseTimestamp(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
