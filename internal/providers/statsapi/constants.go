package statsapi

import "time"

const providerName = "statsapi"

const (
	defaultBaseURL = "https://statsapi.mlb.com"
	// Bounded timeout so a stalled upstream connection never blocks a caller
	// indefinitely.
	defaultTimeout = 15 * time.Second

	schedulePath     = "/api/v1/schedule/games"
	liveFeedPathFmt  = "/api/v1.1/game/%d/feed/live"
	peopleSearchPath = "/api/v1/people/search"
	personPathFmt    = "/api/v1/people/%d"
	personStatsFmt   = "/api/v1/people/%d/stats"

	// sportID 1 is MLB in the statsapi taxonomy.
	sportID = "1"
)
