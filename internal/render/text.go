// Package render formats normalized game data as text tables or JSON. All
// functions are pure formatting over already-normalized values.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"mlbscores/internal/domain"
)

// Teams writes the team directory as a two-column table.
func Teams(w io.Writer, list []domain.Team) {
	fmt.Fprintf(w, "%-6s %s\n", "Abbr", "Team Name")
	fmt.Fprintln(w, strings.Repeat("-", 35))
	for _, t := range list {
		fmt.Fprintf(w, "%-6s %s\n", t.Abbreviation, t.Name)
	}
}

// Games writes the schedule table. With multiDay set, a date separator is
// printed whenever the date bucket changes.
func Games(w io.Writer, label string, games []domain.GameSummary, multiDay bool) {
	fmt.Fprintf(w, "MLB Games - %s\n", label)
	if len(games) == 0 {
		fmt.Fprintln(w, "No games found")
		return
	}

	fmt.Fprintf(w, "%-17s %-10s %-17s %-10s %-10s %-20s %s\n",
		"Away", "Record", "Home", "Record", "Time", "Status", "Game ID")
	fmt.Fprintln(w, strings.Repeat("-", 95))

	currentDate := ""
	for _, g := range games {
		if multiDay && g.Date != "" && g.Date != currentDate {
			if currentDate != "" {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "  %s\n", g.Date)
			currentDate = g.Date
		}
		fmt.Fprintf(w, "%-17s %-10s %-17s %-10s %-10s %-20s %d\n",
			teamLabel(g.AwayTeam), g.AwayRecord,
			teamLabel(g.HomeTeam), g.HomeRecord,
			formatStartTime(g.StartTime), statusDisplay(g), g.GamePk)
	}
}

// Live writes the live view: score header, in-game state, and the line score.
func Live(w io.Writer, d domain.GameDetail) {
	fmt.Fprintf(w, "%s %d  @  %s %d\n",
		teamLabel(d.AwayTeam), d.AwayScore(), teamLabel(d.HomeTeam), d.HomeScore())

	if d.Status.Live() {
		writeLiveState(w, d)
	} else {
		fmt.Fprintf(w, "  Status: %s\n", d.StatusText)
	}

	fmt.Fprintln(w)
	LineScore(w, d)
}

// Score writes the box-score view: result header and the line score.
func Score(w io.Writer, d domain.GameDetail) {
	header := d.StatusText
	if d.Status == domain.StatusFinal {
		header = "Final"
	}
	fmt.Fprintf(w, "%s: %s %d  @  %s %d\n",
		header, teamLabel(d.AwayTeam), d.AwayScore(), teamLabel(d.HomeTeam), d.HomeScore())
	fmt.Fprintln(w)
	LineScore(w, d)
}

// LineScore writes the per-inning grid with R/H/E totals. Innings that have
// not been played render as "-", not zero.
func LineScore(w io.Writer, d domain.GameDetail) {
	innings := d.LineScore
	count := len(innings)
	if count < 9 {
		count = 9
	}

	var header strings.Builder
	header.WriteString("    ")
	for i := 1; i <= count; i++ {
		fmt.Fprintf(&header, "%3d", i)
	}
	header.WriteString("    R  H  E")
	fmt.Fprintln(w, header.String())

	fmt.Fprintln(w, sideLine(d.AwayTeam, count, innings, d.AwayTotals, awayRuns))
	fmt.Fprintln(w, sideLine(d.HomeTeam, count, innings, d.HomeTotals, homeRuns))
}

func writeLiveState(w io.Writer, d domain.GameDetail) {
	if d.Inning != nil {
		half := "Top"
		if d.InningHalf == domain.HalfBottom {
			half = "Bot"
		}
		parts := []string{fmt.Sprintf("%s %s", half, ordinal(*d.Inning))}
		if d.Outs != nil {
			parts = append(parts, fmt.Sprintf("%d %s", *d.Outs, plural("out", *d.Outs)))
		}
		if d.Balls != nil && d.Strikes != nil {
			parts = append(parts, fmt.Sprintf("%d-%d count", *d.Balls, *d.Strikes))
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(parts, "  |  "))
	}

	fmt.Fprintf(w, "  Bases: 1B %s  2B %s  3B %s\n",
		baseMark(d.Runners.First), baseMark(d.Runners.Second), baseMark(d.Runners.Third))

	if d.Matchup != nil {
		fmt.Fprintf(w, "  AB: %s  vs  P: %s\n", d.Matchup.Batter, d.Matchup.Pitcher)
	}
	if d.LastPlay != nil && d.LastPlay.Description != "" {
		fmt.Fprintf(w, "  Last: %s\n", d.LastPlay.Description)
	}
}

func sideLine(team domain.Team, count int, innings []domain.InningLine, totals domain.LineTotals, runs func(domain.InningLine) *int) string {
	var line strings.Builder
	fmt.Fprintf(&line, "%-4s", team.Abbreviation)
	for i := 0; i < count; i++ {
		if i < len(innings) && runs(innings[i]) != nil {
			fmt.Fprintf(&line, "%3d", *runs(innings[i]))
		} else {
			line.WriteString("  -")
		}
	}
	fmt.Fprintf(&line, "  %3d%3d%3d", totals.Runs, totals.Hits, totals.Errors)
	return line.String()
}

func awayRuns(l domain.InningLine) *int { return l.Away }
func homeRuns(l domain.InningLine) *int { return l.Home }

// Players writes a search-result table.
func Players(w io.Writer, players []domain.Player) {
	fmt.Fprintf(w, "%-10s %-25s %-5s %-6s %s\n", "ID", "Name", "Pos", "Team", "Number")
	fmt.Fprintln(w, strings.Repeat("-", 55))
	for _, p := range players {
		fmt.Fprintf(w, "%-10d %-25s %-5s %-6s %s\n",
			p.ID, p.FullName, p.Position, p.Team.Abbreviation, p.PrimaryNumber)
	}
}

// PlayerStats writes a player card with season batting/pitching lines.
func PlayerStats(w io.Writer, ps domain.PlayerStats) {
	p := ps.Player
	fmt.Fprintf(w, "%s #%s  %s  %s\n", p.FullName, p.PrimaryNumber, p.Position, p.Team.Name)
	fmt.Fprintf(w, "  Bats/Throws: %s/%s  Age: %d  Debut: %s\n", p.Bats, p.Throws, p.Age, p.DebutDate)

	if b := ps.Batting; b != nil {
		fmt.Fprintf(w, "\nBatting (%s)\n", b.Season)
		fmt.Fprintf(w, "  %-4s %-4s %-4s %-4s %-4s %-5s %-6s %-6s %-6s %-6s\n",
			"G", "AB", "R", "H", "HR", "RBI", "AVG", "OBP", "SLG", "OPS")
		fmt.Fprintf(w, "  %-4d %-4d %-4d %-4d %-4d %-5d %-6s %-6s %-6s %-6s\n",
			b.Games, b.AtBats, b.Runs, b.Hits, b.HomeRuns, b.RBI, b.AVG, b.OBP, b.SLG, b.OPS)
	}
	if pl := ps.Pitching; pl != nil {
		fmt.Fprintf(w, "\nPitching (%s)\n", pl.Season)
		fmt.Fprintf(w, "  %-4s %-4s %-4s %-6s %-7s %-4s %-4s %-6s\n",
			"G", "W", "L", "ERA", "IP", "SO", "BB", "WHIP")
		fmt.Fprintf(w, "  %-4d %-4d %-4d %-6s %-7s %-4d %-4d %-6s\n",
			pl.Games, pl.Wins, pl.Losses, pl.ERA, pl.InningsPitched, pl.Strikeouts, pl.Walks, pl.WHIP)
	}
}

func teamLabel(t domain.Team) string {
	return fmt.Sprintf("%s %s", t.Abbreviation, nickname(t.Name))
}

// nickname returns the last word of the club name ("Boston Red Sox" -> "Sox").
func nickname(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[len(fields)-1]
}

func statusDisplay(g domain.GameSummary) string {
	switch {
	case g.Status == domain.StatusFinal:
		if g.AwayScore != nil && g.HomeScore != nil {
			return fmt.Sprintf("Final (%d-%d)", *g.AwayScore, *g.HomeScore)
		}
		return "Final"
	case g.Status.Live():
		return "In Progress"
	case g.Status.Upcoming():
		return formatStartTime(g.StartTime)
	default:
		return g.StatusText
	}
}

func formatStartTime(t time.Time) string {
	if t.IsZero() {
		return "TBD"
	}
	return t.Local().Format("3:04 PM")
}

func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func baseMark(occupied bool) string {
	if occupied {
		return "[X]"
	}
	return "[ ]"
}
