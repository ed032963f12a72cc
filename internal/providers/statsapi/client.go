// Package statsapi implements the providers contracts against the public MLB
// Stats API.
package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"mlbscores/internal/domain"
	"mlbscores/internal/logging"
	"mlbscores/internal/providers"
)

// Recorder receives one observation per upstream request. A nil Recorder is
// valid and records nothing.
type Recorder interface {
	RecordUpstreamRequest(endpoint string, statusCode int, duration time.Duration, err error)
}

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *slog.Logger
	Recorder   Recorder
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues single blocking GETs against the statsapi endpoints and maps
// the responses to domain models. It keeps no state between calls and never
// retries; the caller decides how to surface failures.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	recorder   Recorder
}

// NewClient constructs a statsapi client with the provided configuration.
func NewClient(cfg Config) *Client {
	logger := cfg.Logger
	if logger != nil {
		logger = logger.With(slog.String("provider", providerName))
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     logger,
		recorder:   cfg.Recorder,
	}
}

// FetchSchedule retrieves the schedule for one YYYY-MM-DD day and returns the
// games in upstream order.
func (c *Client) FetchSchedule(ctx context.Context, date string) ([]domain.GameSummary, error) {
	q := url.Values{}
	q.Set("sportId", sportID)
	q.Set("date", date)
	endpoint := c.baseURL + schedulePath + "?" + q.Encode()

	var payload scheduleResponse
	if err := c.get(ctx, "schedule", endpoint, &payload); err != nil {
		return nil, err
	}

	var games []domain.GameSummary
	for _, bucket := range payload.Dates {
		for _, g := range bucket.Games {
			games = append(games, mapSummary(g, bucket.Date))
		}
	}
	logging.Debug(c.logger, "fetched schedule",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(games)))
	return games, nil
}

// FetchFeed retrieves the live feed for one game. An upstream 404, or a feed
// document without a gamePk, maps to *providers.GameNotFoundError.
func (c *Client) FetchFeed(ctx context.Context, gamePk int) (domain.GameDetail, error) {
	endpoint := c.baseURL + fmt.Sprintf(liveFeedPathFmt, gamePk)

	var payload feedResponse
	if err := c.get(ctx, "feed", endpoint, &payload); err != nil {
		if apiErr, ok := providers.AsAPIError(err); ok && apiErr.StatusCode == http.StatusNotFound {
			return domain.GameDetail{}, &providers.GameNotFoundError{GamePk: gamePk}
		}
		return domain.GameDetail{}, err
	}
	if payload.GamePk == 0 {
		return domain.GameDetail{}, &providers.GameNotFoundError{GamePk: gamePk}
	}
	return mapDetail(payload), nil
}

// SearchPlayers queries the people-search endpoint by (partial) name.
func (c *Client) SearchPlayers(ctx context.Context, name string) ([]domain.Player, error) {
	q := url.Values{}
	q.Set("names", name)
	q.Set("hydrate", "currentTeam")
	endpoint := c.baseURL + peopleSearchPath + "?" + q.Encode()

	var payload peopleResponse
	if err := c.get(ctx, "people_search", endpoint, &payload); err != nil {
		return nil, err
	}

	players := make([]domain.Player, 0, len(payload.People))
	for _, p := range payload.People {
		players = append(players, mapPlayer(p))
	}
	return players, nil
}

// FetchPlayer retrieves one player profile by id.
func (c *Client) FetchPlayer(ctx context.Context, playerID int) (domain.Player, error) {
	endpoint := c.baseURL + fmt.Sprintf(personPathFmt, playerID) + "?hydrate=currentTeam"

	var payload peopleResponse
	if err := c.get(ctx, "person", endpoint, &payload); err != nil {
		if apiErr, ok := providers.AsAPIError(err); ok && apiErr.StatusCode == http.StatusNotFound {
			return domain.Player{}, &providers.PlayerNotFoundError{PlayerID: playerID}
		}
		return domain.Player{}, err
	}
	if len(payload.People) == 0 {
		return domain.Player{}, &providers.PlayerNotFoundError{PlayerID: playerID}
	}
	return mapPlayer(payload.People[0]), nil
}

// FetchSeasonStats retrieves the hitting and pitching season splits for one
// player. A missing group returns as nil, not an error.
func (c *Client) FetchSeasonStats(ctx context.Context, playerID int, season int) (*domain.BattingLine, *domain.PitchingLine, error) {
	q := url.Values{}
	q.Set("stats", "season")
	q.Set("season", strconv.Itoa(season))
	q.Set("group", "hitting,pitching")
	endpoint := c.baseURL + fmt.Sprintf(personStatsFmt, playerID) + "?" + q.Encode()

	var payload statsResponse
	if err := c.get(ctx, "person_stats", endpoint, &payload); err != nil {
		return nil, nil, err
	}

	var batting *domain.BattingLine
	var pitching *domain.PitchingLine
	for _, group := range payload.Stats {
		if len(group.Splits) == 0 {
			continue
		}
		// The last split is the season aggregate when a player changed teams.
		split := group.Splits[len(group.Splits)-1]
		switch group.Group.DisplayName {
		case "hitting":
			batting = mapBatting(split)
		case "pitching":
			pitching = mapPitching(split)
		}
	}
	return batting, pitching, nil
}

// get performs one GET and decodes the JSON body into out, translating
// failures into the typed provider errors.
func (c *Client) get(ctx context.Context, kind, endpoint string, out any) error {
	start := time.Now()
	status, err := c.doGet(ctx, endpoint, out)
	if c.recorder != nil {
		c.recorder.RecordUpstreamRequest(kind, status, time.Since(start), err)
	}
	if err != nil {
		logging.Error(c.logger, "statsapi request failed", err,
			slog.String(logging.FieldEndpoint, kind),
			slog.Int(logging.FieldStatusCode, status))
	}
	return err
}

func (c *Client) doGet(ctx context.Context, endpoint string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, &providers.NetworkError{URL: endpoint, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &providers.NetworkError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, &providers.APIError{URL: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, &providers.DecodeError{URL: endpoint, Err: err}
	}
	return resp.StatusCode, nil
}

func normalizeBaseURL(base string) string {
	if base == "" {
		return defaultBaseURL
	}
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return base
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if client == nil {
		return &http.Client{Timeout: timeout}
	}
	if client.Timeout == 0 {
		client.Timeout = timeout
	}
	return client
}
