// Package teams holds the static MLB team directory and query resolution.
package teams

import (
	"sort"
	"strings"

	"mlbscores/internal/domain"
)

// directory lists all 30 MLB clubs with their upstream statsapi ids, sorted by
// abbreviation. The table is fixed at compile time and never mutated.
var directory = []domain.Team{
	{ID: 109, Abbreviation: "ARI", Name: "Arizona Diamondbacks"},
	{ID: 144, Abbreviation: "ATL", Name: "Atlanta Braves"},
	{ID: 110, Abbreviation: "BAL", Name: "Baltimore Orioles"},
	{ID: 111, Abbreviation: "BOS", Name: "Boston Red Sox"},
	{ID: 112, Abbreviation: "CHC", Name: "Chicago Cubs"},
	{ID: 113, Abbreviation: "CIN", Name: "Cincinnati Reds"},
	{ID: 114, Abbreviation: "CLE", Name: "Cleveland Guardians"},
	{ID: 115, Abbreviation: "COL", Name: "Colorado Rockies"},
	{ID: 145, Abbreviation: "CWS", Name: "Chicago White Sox"},
	{ID: 116, Abbreviation: "DET", Name: "Detroit Tigers"},
	{ID: 117, Abbreviation: "HOU", Name: "Houston Astros"},
	{ID: 118, Abbreviation: "KC", Name: "Kansas City Royals"},
	{ID: 108, Abbreviation: "LAA", Name: "Los Angeles Angels"},
	{ID: 119, Abbreviation: "LAD", Name: "Los Angeles Dodgers"},
	{ID: 146, Abbreviation: "MIA", Name: "Miami Marlins"},
	{ID: 158, Abbreviation: "MIL", Name: "Milwaukee Brewers"},
	{ID: 142, Abbreviation: "MIN", Name: "Minnesota Twins"},
	{ID: 121, Abbreviation: "NYM", Name: "New York Mets"},
	{ID: 147, Abbreviation: "NYY", Name: "New York Yankees"},
	{ID: 133, Abbreviation: "OAK", Name: "Oakland Athletics"},
	{ID: 143, Abbreviation: "PHI", Name: "Philadelphia Phillies"},
	{ID: 134, Abbreviation: "PIT", Name: "Pittsburgh Pirates"},
	{ID: 135, Abbreviation: "SD", Name: "San Diego Padres"},
	{ID: 136, Abbreviation: "SEA", Name: "Seattle Mariners"},
	{ID: 137, Abbreviation: "SF", Name: "San Francisco Giants"},
	{ID: 138, Abbreviation: "STL", Name: "St. Louis Cardinals"},
	{ID: 139, Abbreviation: "TB", Name: "Tampa Bay Rays"},
	{ID: 140, Abbreviation: "TEX", Name: "Texas Rangers"},
	{ID: 141, Abbreviation: "TOR", Name: "Toronto Blue Jays"},
	{ID: 120, Abbreviation: "WSH", Name: "Washington Nationals"},
}

var byID = func() map[int]domain.Team {
	m := make(map[int]domain.Team, len(directory))
	for _, t := range directory {
		m[t.ID] = t
	}
	return m
}()

// All returns every team sorted by abbreviation. The slice is a copy.
func All() []domain.Team {
	out := make([]domain.Team, len(directory))
	copy(out, directory)
	sort.Slice(out, func(i, j int) bool { return out[i].Abbreviation < out[j].Abbreviation })
	return out
}

// ByID looks up a team by its upstream id.
func ByID(id int) (domain.Team, bool) {
	t, ok := byID[id]
	return t, ok
}

// Resolve matches a query against the directory: exact abbreviation first
// (case-insensitive), then case-insensitive substring match on the full name.
// It returns *UnknownTeamError when nothing matches and *AmbiguousTeamError
// when the substring matches more than one club.
func Resolve(query string) (domain.Team, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return domain.Team{}, &UnknownTeamError{Query: query}
	}

	upper := strings.ToUpper(trimmed)
	for _, t := range directory {
		if t.Abbreviation == upper {
			return t, nil
		}
	}

	lower := strings.ToLower(trimmed)
	var matches []domain.Team
	for _, t := range directory {
		if strings.Contains(strings.ToLower(t.Name), lower) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return domain.Team{}, &UnknownTeamError{Query: trimmed}
	case 1:
		return matches[0], nil
	default:
		abbrs := make([]string, len(matches))
		for i, t := range matches {
			abbrs[i] = t.Abbreviation
		}
		sort.Strings(abbrs)
		return domain.Team{}, &AmbiguousTeamError{Query: trimmed, Matches: abbrs}
	}
}
