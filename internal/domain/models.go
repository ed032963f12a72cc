package domain

import "time"

// GameStatus is the normalized game lifecycle state. Upstream reports free-form
// detailed states; anything unrecognized maps to StatusOther so schema drift
// never fails a parse.
type GameStatus string

const (
	StatusScheduled  GameStatus = "SCHEDULED"
	StatusPreGame    GameStatus = "PRE_GAME"
	StatusWarmup     GameStatus = "WARMUP"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusFinal      GameStatus = "FINAL"
	StatusPostponed  GameStatus = "POSTPONED"
	StatusOther      GameStatus = "OTHER"
)

// Live reports whether the game is currently being played.
func (s GameStatus) Live() bool {
	return s == StatusInProgress
}

// Upcoming reports whether the game has not started yet.
func (s GameStatus) Upcoming() bool {
	return s == StatusScheduled || s == StatusPreGame || s == StatusWarmup
}

// InningHalf identifies which half of an inning is in progress.
type InningHalf string

const (
	HalfTop    InningHalf = "TOP"
	HalfBottom InningHalf = "BOTTOM"
)

// Team is the normalized team shape.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// GameSummary is one contest as reported by the schedule endpoint.
// Score pointers are nil until the game has started.
type GameSummary struct {
	GamePk     int        `json:"gamePk"`
	Status     GameStatus `json:"status"`
	StatusText string     `json:"statusText"`
	AwayTeam   Team       `json:"awayTeam"`
	HomeTeam   Team       `json:"homeTeam"`
	AwayRecord string     `json:"awayRecord,omitempty"`
	HomeRecord string     `json:"homeRecord,omitempty"`
	AwayScore  *int       `json:"awayScore,omitempty"`
	HomeScore  *int       `json:"homeScore,omitempty"`
	Venue      string     `json:"venue"`
	StartTime  time.Time  `json:"startTime"`
	Date       string     `json:"date"`
}

// Involves reports whether the team with the given upstream id plays in this game.
func (g GameSummary) Involves(teamID int) bool {
	return g.AwayTeam.ID == teamID || g.HomeTeam.ID == teamID
}

// BaseState marks which bases are occupied.
type BaseState struct {
	First  bool `json:"first"`
	Second bool `json:"second"`
	Third  bool `json:"third"`
}

// Matchup is the current batter/pitcher pairing.
type Matchup struct {
	Batter  string `json:"batter"`
	Pitcher string `json:"pitcher"`
}

// PlayResult describes the most recent completed play.
type PlayResult struct {
	Description string `json:"description"`
	Event       string `json:"event"`
	RBI         int    `json:"rbi"`
	AwayScore   int    `json:"awayScore"`
	HomeScore   int    `json:"homeScore"`
}

// InningLine holds the runs scored in one inning. A nil half means that half
// has not been played (distinct from scoring zero), e.g. the bottom of the
// ninth when the home team is already ahead.
type InningLine struct {
	Away *int `json:"awayRuns"`
	Home *int `json:"homeRuns"`
}

// LineTotals is the R/H/E line for one side.
type LineTotals struct {
	Runs   int `json:"runs"`
	Hits   int `json:"hits"`
	Errors int `json:"errors"`
}

// GameDetail is the normalized live-feed view of one game. Fields that only
// exist while play is in progress (count, runners, matchup, last play) are
// zero-valued or nil for pre-game and final documents.
type GameDetail struct {
	GamePk     int          `json:"gamePk"`
	Status     GameStatus   `json:"status"`
	StatusText string       `json:"statusText"`
	AwayTeam   Team         `json:"awayTeam"`
	HomeTeam   Team         `json:"homeTeam"`
	Venue      string       `json:"venue"`
	StartTime  time.Time    `json:"startTime"`
	Inning     *int         `json:"inning,omitempty"`
	InningHalf InningHalf   `json:"inningHalf,omitempty"`
	Balls      *int         `json:"balls,omitempty"`
	Strikes    *int         `json:"strikes,omitempty"`
	Outs       *int         `json:"outs,omitempty"`
	Runners    BaseState    `json:"runners"`
	Matchup    *Matchup     `json:"matchup,omitempty"`
	LastPlay   *PlayResult  `json:"lastPlay,omitempty"`
	LineScore  []InningLine `json:"lineScore"`
	AwayTotals LineTotals   `json:"awayTotals"`
	HomeTotals LineTotals   `json:"homeTotals"`
}

// AwayScore returns the away run total.
func (d GameDetail) AwayScore() int { return d.AwayTotals.Runs }

// HomeScore returns the home run total.
func (d GameDetail) HomeScore() int { return d.HomeTotals.Runs }
