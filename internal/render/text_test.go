package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlbscores/internal/domain"
	"mlbscores/internal/teams"
)

func intPtr(n int) *int { return &n }

func TestTeamsTable(t *testing.T) {
	var buf bytes.Buffer
	Teams(&buf, teams.All())

	out := buf.String()
	assert.Contains(t, out, "Abbr")
	assert.Contains(t, out, "PHI    Philadelphia Phillies")
	// Header, separator, and one row per club.
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 32)
}

func TestGamesEmptySchedule(t *testing.T) {
	var buf bytes.Buffer
	Games(&buf, "2026-12-25", nil, false)

	assert.Contains(t, buf.String(), "MLB Games - 2026-12-25")
	assert.Contains(t, buf.String(), "No games found")
}

func TestGamesTableRows(t *testing.T) {
	phi, _ := teams.ByID(143)
	nym, _ := teams.ByID(121)
	games := []domain.GameSummary{
		{
			GamePk:     718415,
			Status:     domain.StatusFinal,
			StatusText: "Final",
			AwayTeam:   phi,
			HomeTeam:   nym,
			AwayRecord: "70-58",
			HomeRecord: "65-63",
			AwayScore:  intPtr(6),
			HomeScore:  intPtr(4),
			Date:       "2026-08-25",
		},
	}

	var buf bytes.Buffer
	Games(&buf, "2026-08-25", games, false)

	out := buf.String()
	assert.Contains(t, out, "PHI Phillies")
	assert.Contains(t, out, "NYM Mets")
	assert.Contains(t, out, "70-58")
	assert.Contains(t, out, "Final (6-4)")
	assert.Contains(t, out, "718415")
}

func TestGamesMultiDaySeparators(t *testing.T) {
	phi, _ := teams.ByID(143)
	nym, _ := teams.ByID(121)
	games := []domain.GameSummary{
		{GamePk: 1, Status: domain.StatusFinal, AwayTeam: phi, HomeTeam: nym, Date: "2026-08-25"},
		{GamePk: 2, Status: domain.StatusFinal, AwayTeam: nym, HomeTeam: phi, Date: "2026-08-26"},
	}

	var buf bytes.Buffer
	Games(&buf, "2026-08-25 - 2026-08-26", games, true)

	out := buf.String()
	assert.Contains(t, out, "  2026-08-25\n")
	assert.Contains(t, out, "  2026-08-26\n")
}

func TestStatusDisplay(t *testing.T) {
	assert.Equal(t, "Final (6-4)", statusDisplay(domain.GameSummary{
		Status: domain.StatusFinal, AwayScore: intPtr(6), HomeScore: intPtr(4),
	}))
	assert.Equal(t, "Final", statusDisplay(domain.GameSummary{Status: domain.StatusFinal}))
	assert.Equal(t, "In Progress", statusDisplay(domain.GameSummary{Status: domain.StatusInProgress}))
	assert.Equal(t, "TBD", statusDisplay(domain.GameSummary{Status: domain.StatusScheduled}))
	assert.Equal(t, "Postponed: Rain", statusDisplay(domain.GameSummary{
		Status: domain.StatusPostponed, StatusText: "Postponed: Rain",
	}))
}

func TestLineScorePadsToNineInnings(t *testing.T) {
	sd, _ := teams.ByID(135)
	sf, _ := teams.ByID(137)
	detail := domain.GameDetail{
		AwayTeam: sd,
		HomeTeam: sf,
		LineScore: []domain.InningLine{
			{Away: intPtr(1), Home: intPtr(0)},
			{Away: intPtr(0), Home: intPtr(0)},
			{Away: intPtr(0), Home: intPtr(2)},
			{Away: intPtr(2), Home: intPtr(0)},
			{Away: intPtr(0), Home: intPtr(0)},
			{Away: intPtr(0), Home: intPtr(0)},
			{Away: intPtr(0), Home: nil},
		},
		AwayTotals: domain.LineTotals{Runs: 3, Hits: 7, Errors: 0},
		HomeTotals: domain.LineTotals{Runs: 2, Hits: 5, Errors: 1},
	}

	var buf bytes.Buffer
	LineScore(&buf, detail)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	header, away, home := lines[0], lines[1], lines[2]
	assert.Contains(t, header, "  9")
	assert.Contains(t, header, "R  H  E")

	assert.True(t, strings.HasPrefix(away, "SD"))
	assert.True(t, strings.HasPrefix(home, "SF"))
	// Away played seven innings; eight and nine render as dashes.
	assert.Equal(t, 2, strings.Count(away, "-"))
	// Home has not batted in the seventh either.
	assert.Equal(t, 3, strings.Count(home, "-"))
}

func TestLineScoreCompleteGameHasNoDashes(t *testing.T) {
	phi, _ := teams.ByID(143)
	nym, _ := teams.ByID(121)
	innings := make([]domain.InningLine, 9)
	for i := range innings {
		innings[i] = domain.InningLine{Away: intPtr(0), Home: intPtr(0)}
	}
	detail := domain.GameDetail{AwayTeam: phi, HomeTeam: nym, LineScore: innings}

	var buf bytes.Buffer
	LineScore(&buf, detail)
	assert.NotContains(t, buf.String(), "-")
}

func TestLiveWritesGameState(t *testing.T) {
	sd, _ := teams.ByID(135)
	sf, _ := teams.ByID(137)
	detail := domain.GameDetail{
		Status:     domain.StatusInProgress,
		StatusText: "In Progress",
		AwayTeam:   sd,
		HomeTeam:   sf,
		Inning:     intPtr(7),
		InningHalf: domain.HalfTop,
		Balls:      intPtr(2),
		Strikes:    intPtr(1),
		Outs:       intPtr(1),
		Runners:    domain.BaseState{First: true, Third: true},
		Matchup:    &domain.Matchup{Batter: "Fernando Tatis Jr.", Pitcher: "Logan Webb"},
		LastPlay:   &domain.PlayResult{Event: "Single", Description: "Manny Machado singles."},
		AwayTotals: domain.LineTotals{Runs: 3, Hits: 7},
		HomeTotals: domain.LineTotals{Runs: 2, Hits: 5, Errors: 1},
	}

	var buf bytes.Buffer
	Live(&buf, detail)

	out := buf.String()
	assert.Contains(t, out, "SD Padres 3  @  SF Giants 2")
	assert.Contains(t, out, "Top 7th")
	assert.Contains(t, out, "1 out")
	assert.Contains(t, out, "2-1 count")
	assert.Contains(t, out, "Bases: 1B [X]  2B [ ]  3B [X]")
	assert.Contains(t, out, "AB: Fernando Tatis Jr.  vs  P: Logan Webb")
	assert.Contains(t, out, "Last: Manny Machado singles.")
}

func TestScoreFinalHeader(t *testing.T) {
	phi, _ := teams.ByID(143)
	nym, _ := teams.ByID(121)
	detail := domain.GameDetail{
		Status:     domain.StatusFinal,
		StatusText: "Game Over",
		AwayTeam:   phi,
		HomeTeam:   nym,
		AwayTotals: domain.LineTotals{Runs: 6, Hits: 11},
		HomeTotals: domain.LineTotals{Runs: 4, Hits: 8, Errors: 1},
	}

	var buf bytes.Buffer
	Score(&buf, detail)
	assert.Contains(t, buf.String(), "Final: PHI Phillies 6  @  NYM Mets 4")
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 9: "9th", 11: "11th", 12: "12th", 13: "13th", 21: "21st"}
	for n, want := range cases {
		assert.Equal(t, want, ordinal(n))
	}
}

func TestPlayersTable(t *testing.T) {
	nyy, _ := teams.ByID(147)
	players := []domain.Player{{
		ID: 592450, FullName: "Aaron Judge", Position: "RF", PrimaryNumber: "99", Team: nyy,
	}}

	var buf bytes.Buffer
	Players(&buf, players)

	out := buf.String()
	assert.Contains(t, out, "592450")
	assert.Contains(t, out, "Aaron Judge")
	assert.Contains(t, out, "NYY")
}

func TestPlayerStatsCard(t *testing.T) {
	nyy, _ := teams.ByID(147)
	stats := domain.PlayerStats{
		Player: domain.Player{
			FullName: "Aaron Judge", PrimaryNumber: "99", Position: "RF",
			Bats: "R", Throws: "R", Age: 34, DebutDate: "2016-08-13", Team: nyy,
		},
		Batting: &domain.BattingLine{
			Season: "2026", Games: 120, AtBats: 420, Runs: 98, Hits: 135,
			HomeRuns: 41, RBI: 102, AVG: ".321", OBP: ".442", SLG: ".674", OPS: "1.116",
		},
	}

	var buf bytes.Buffer
	PlayerStats(&buf, stats)

	out := buf.String()
	assert.Contains(t, out, "Aaron Judge #99  RF  New York Yankees")
	assert.Contains(t, out, "Batting (2026)")
	assert.Contains(t, out, ".321")
	assert.NotContains(t, out, "Pitching")
}

func TestFormatStartTimeZeroIsTBD(t *testing.T) {
	assert.Equal(t, "TBD", formatStartTime(time.Time{}))
}
