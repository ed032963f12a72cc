package domain

// Player is a normalized player profile from the people endpoints.
type Player struct {
	ID            int    `json:"id"`
	FullName      string `json:"fullName"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Active        bool   `json:"active"`
	PrimaryNumber string `json:"primaryNumber,omitempty"`
	Height        string `json:"height,omitempty"`
	Weight        int    `json:"weight,omitempty"`
	BirthDate     string `json:"birthDate,omitempty"`
	Age           int    `json:"age,omitempty"`
	DebutDate     string `json:"debutDate,omitempty"`
	Position      string `json:"position,omitempty"`
	PositionName  string `json:"positionName,omitempty"`
	Bats          string `json:"bats,omitempty"`
	Throws        string `json:"throws,omitempty"`
	Team          Team   `json:"team"`
}

// BattingLine is one season of batting statistics.
type BattingLine struct {
	Season           string `json:"season"`
	TeamName         string `json:"teamName"`
	Games            int    `json:"games"`
	AtBats           int    `json:"atBats"`
	PlateAppearances int    `json:"plateAppearances"`
	Runs             int    `json:"runs"`
	Hits             int    `json:"hits"`
	Doubles          int    `json:"doubles"`
	Triples          int    `json:"triples"`
	HomeRuns         int    `json:"homeRuns"`
	RBI              int    `json:"rbi"`
	StolenBases      int    `json:"stolenBases"`
	Walks            int    `json:"walks"`
	Strikeouts       int    `json:"strikeouts"`
	AVG              string `json:"avg"`
	OBP              string `json:"obp"`
	SLG              string `json:"slg"`
	OPS              string `json:"ops"`
}

// PitchingLine is one season of pitching statistics.
type PitchingLine struct {
	Season         string `json:"season"`
	TeamName       string `json:"teamName"`
	Games          int    `json:"games"`
	Starts         int    `json:"starts"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	ERA            string `json:"era"`
	InningsPitched string `json:"inningsPitched"`
	Hits           int    `json:"hits"`
	Runs           int    `json:"runs"`
	EarnedRuns     int    `json:"earnedRuns"`
	HomeRuns       int    `json:"homeRuns"`
	Strikeouts     int    `json:"strikeouts"`
	Walks          int    `json:"walks"`
	Saves          int    `json:"saves"`
	Holds          int    `json:"holds"`
	WHIP           string `json:"whip"`
	StrikeoutsPer9 string `json:"strikeoutsPer9"`
	WalksPer9      string `json:"walksPer9"`
}

// PlayerStats bundles a player profile with their season stat lines. A nil
// line means the player has no recorded stats in that group for the season.
type PlayerStats struct {
	Player   Player        `json:"player"`
	Batting  *BattingLine  `json:"batting,omitempty"`
	Pitching *PitchingLine `json:"pitching,omitempty"`
}
