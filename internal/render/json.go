package render

import (
	"encoding/json"
	"io"

	"mlbscores/internal/domain"
)

type teamsEnvelope struct {
	Teams []domain.Team `json:"teams"`
}

type gamesEnvelope struct {
	Date  string               `json:"date"`
	Games []domain.GameSummary `json:"games"`
}

type playersEnvelope struct {
	Players []domain.Player `json:"players"`
}

// TeamsJSON writes the team directory as an indented JSON envelope.
func TeamsJSON(w io.Writer, list []domain.Team) error {
	return writeJSON(w, teamsEnvelope{Teams: list})
}

// GamesJSON writes a schedule as an indented JSON envelope. An empty slice
// renders as an empty array, not null.
func GamesJSON(w io.Writer, label string, games []domain.GameSummary) error {
	if games == nil {
		games = []domain.GameSummary{}
	}
	return writeJSON(w, gamesEnvelope{Date: label, Games: games})
}

// DetailJSON writes a game detail as indented JSON.
func DetailJSON(w io.Writer, d domain.GameDetail) error {
	return writeJSON(w, d)
}

// PlayersJSON writes search results as an indented JSON envelope.
func PlayersJSON(w io.Writer, players []domain.Player) error {
	if players == nil {
		players = []domain.Player{}
	}
	return writeJSON(w, playersEnvelope{Players: players})
}

// PlayerStatsJSON writes a player stats bundle as indented JSON.
func PlayerStatsJSON(w io.Writer, ps domain.PlayerStats) error {
	return writeJSON(w, ps)
}

func writeJSON(w io.Writer, payload any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
