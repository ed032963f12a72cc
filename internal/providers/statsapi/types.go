package statsapi

// Wire shapes for the statsapi documents. Every field is optional from the
// decoder's point of view; the upstream schema is not contractually stable, so
// missing nodes decode to zero values and the mapper decides what they mean.

type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string         `json:"date"`
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	GamePk   int           `json:"gamePk"`
	GameDate string        `json:"gameDate"`
	Status   statusNode    `json:"status"`
	Teams    scheduleTeams `json:"teams"`
	Venue    venueNode     `json:"venue"`
}

type statusNode struct {
	DetailedState string `json:"detailedState"`
}

type scheduleTeams struct {
	Away scheduleSide `json:"away"`
	Home scheduleSide `json:"home"`
}

type scheduleSide struct {
	Score        *int          `json:"score"`
	LeagueRecord *leagueRecord `json:"leagueRecord"`
	Team         teamNode      `json:"team"`
}

type leagueRecord struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

type teamNode struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type venueNode struct {
	Name string `json:"name"`
}

type feedResponse struct {
	GamePk   int          `json:"gamePk"`
	GameData gameDataNode `json:"gameData"`
	LiveData liveDataNode `json:"liveData"`
}

type gameDataNode struct {
	Status   statusNode   `json:"status"`
	Teams    feedTeams    `json:"teams"`
	Venue    venueNode    `json:"venue"`
	Datetime datetimeNode `json:"datetime"`
}

type feedTeams struct {
	Away teamNode `json:"away"`
	Home teamNode `json:"home"`
}

type datetimeNode struct {
	DateTime string `json:"dateTime"`
}

type liveDataNode struct {
	Linescore linescoreNode `json:"linescore"`
	Plays     playsNode     `json:"plays"`
}

type linescoreNode struct {
	CurrentInning *int           `json:"currentInning"`
	IsTopInning   *bool          `json:"isTopInning"`
	Outs          *int           `json:"outs"`
	Teams         linescoreTeams `json:"teams"`
	Innings       []inningNode   `json:"innings"`
}

type linescoreTeams struct {
	Away lineTotalsNode `json:"away"`
	Home lineTotalsNode `json:"home"`
}

type lineTotalsNode struct {
	Runs   int `json:"runs"`
	Hits   int `json:"hits"`
	Errors int `json:"errors"`
}

type inningNode struct {
	Num  int            `json:"num"`
	Away inningHalfNode `json:"away"`
	Home inningHalfNode `json:"home"`
}

// Runs stays nil when that half inning has not been played; the distinction
// between "no runs" and "did not bat" matters downstream.
type inningHalfNode struct {
	Runs *int `json:"runs"`
}

type playsNode struct {
	CurrentPlay *playNode `json:"currentPlay"`
}

type playNode struct {
	Result  resultNode   `json:"result"`
	Count   countNode    `json:"count"`
	Matchup *matchupNode `json:"matchup"`
}

type resultNode struct {
	Description string `json:"description"`
	Event       string `json:"event"`
	RBI         int    `json:"rbi"`
	AwayScore   int    `json:"awayScore"`
	HomeScore   int    `json:"homeScore"`
}

type countNode struct {
	Balls   *int `json:"balls"`
	Strikes *int `json:"strikes"`
	Outs    *int `json:"outs"`
}

type matchupNode struct {
	Batter       personNode  `json:"batter"`
	Pitcher      personNode  `json:"pitcher"`
	PostOnFirst  *personNode `json:"postOnFirst"`
	PostOnSecond *personNode `json:"postOnSecond"`
	PostOnThird  *personNode `json:"postOnThird"`
}

type personNode struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

type peopleResponse struct {
	People []personDetailNode `json:"people"`
}

type personDetailNode struct {
	ID              int          `json:"id"`
	FullName        string       `json:"fullName"`
	FirstName       string       `json:"firstName"`
	LastName        string       `json:"lastName"`
	Active          bool         `json:"active"`
	PrimaryNumber   string       `json:"primaryNumber"`
	Height          string       `json:"height"`
	Weight          int          `json:"weight"`
	BirthDate       string       `json:"birthDate"`
	CurrentAge      int          `json:"currentAge"`
	MLBDebutDate    string       `json:"mlbDebutDate"`
	PrimaryPosition positionNode `json:"primaryPosition"`
	BatSide         codeNode     `json:"batSide"`
	PitchHand       codeNode     `json:"pitchHand"`
	CurrentTeam     teamNode     `json:"currentTeam"`
}

type positionNode struct {
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
}

type codeNode struct {
	Code string `json:"code"`
}

type statsResponse struct {
	Stats []statGroupNode `json:"stats"`
}

type statGroupNode struct {
	Group  groupNode   `json:"group"`
	Splits []splitNode `json:"splits"`
}

type groupNode struct {
	DisplayName string `json:"displayName"`
}

type splitNode struct {
	Season string   `json:"season"`
	Team   teamNode `json:"team"`
	Stat   statNode `json:"stat"`
}

// statNode is the superset of the hitting and pitching stat fields we read.
type statNode struct {
	GamesPlayed      int    `json:"gamesPlayed"`
	GamesStarted     int    `json:"gamesStarted"`
	AtBats           int    `json:"atBats"`
	PlateAppearances int    `json:"plateAppearances"`
	Runs             int    `json:"runs"`
	Hits             int    `json:"hits"`
	Doubles          int    `json:"doubles"`
	Triples          int    `json:"triples"`
	HomeRuns         int    `json:"homeRuns"`
	RBI              int    `json:"rbi"`
	StolenBases      int    `json:"stolenBases"`
	BaseOnBalls      int    `json:"baseOnBalls"`
	StrikeOuts       int    `json:"strikeOuts"`
	AVG              string `json:"avg"`
	OBP              string `json:"obp"`
	SLG              string `json:"slg"`
	OPS              string `json:"ops"`
	Wins             int    `json:"wins"`
	Losses           int    `json:"losses"`
	ERA              string `json:"era"`
	InningsPitched   string `json:"inningsPitched"`
	EarnedRuns       int    `json:"earnedRuns"`
	Saves            int    `json:"saves"`
	Holds            int    `json:"holds"`
	WHIP             string `json:"whip"`
	StrikeoutsPer9   string `json:"strikeoutsPer9Inn"`
	WalksPer9        string `json:"walksPer9Inn"`
}
