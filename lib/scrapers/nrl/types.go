package nrl

// Fixture is a single match box on the draw page for a given round. Score
// pointers are nil until the match has been played.
type Fixture struct {
	Season    int
	Round     int
	Title     string
	Date      string
	HomeTeam  string
	AwayTeam  string
	HomeScore *int
	AwayScore *int
	Venue     string
}

func (f Fixture) Played() bool {
	return f.HomeScore != nil && f.AwayScore != nil
}

// BarStatKeys are the bar-chart statistics of the match centre page in
// display order. The page carries no machine-readable labels so order is
// the contract.
var BarStatKeys = []string{
	"time_in_possession",
	"all_runs",
	"all_run_metres",
	"post_contact_metres",
	"line_breaks",
	"tackle_breaks",
	"average_set_distance",
	"kick_return_metres",
	"offloads",
	"receipts",
	"total_passes",
	"dummy_passes",
	"kicks",
	"kicking_metres",
	"forced_drop_outs",
	"bombs",
	"grubbers",
	"tackles_made",
	"missed_tackles",
	"intercepts",
	"ineffective_tackles",
	"errors",
	"penalties_conceded",
	"ruck_infringements",
	"inside_10_metres",
	"interchanges_used",
}

// DonutStatKeys are the four percentage donuts below the possession wheel.
var DonutStatKeys = []string{
	"completion_rate",
	"average_play_ball_speed",
	"kick_defusal",
	"effective_tackle",
}

// SummaryStatKeys are the scoreboard summary rows. Matches without extra
// time may omit the field goal rows entirely, see parseSummary.
var SummaryStatKeys = []string{
	"tries",
	"conversions",
	"penalty_goals",
	"sin_bins",
	"one_point_field_goals",
	"two_point_field_goals",
	"half_time",
}

// summaryHeadings maps the on-page heading of each summary row to its key.
var summaryHeadings = map[string]string{
	"TRIES":               "tries",
	"CONVERSIONS":         "conversions",
	"PENALTY GOALS":       "penalty_goals",
	"SIN BINS":            "sin_bins",
	"1 POINT FIELD GOALS": "one_point_field_goals",
	"2 POINT FIELD GOALS": "two_point_field_goals",
	"HALF TIME":           "half_time",
}

type TryEvent struct {
	Scorer string
	// minute of the match, -1 when the page omitted it
	Minute int
}

type Official struct {
	Name     string
	Position string
}

// SideStats holds one team's numbers for a match. Stats is keyed by
// BarStatKeys, DonutStatKeys and SummaryStatKeys; absent groups leave
// their keys out entirely rather than writing zeroes.
type SideStats struct {
	Team           string
	Possession     float64
	Stats          map[string]float64
	Tries          []TryEvent
	FirstTryScorer string
	FirstTryMinute int
}

type MatchDetail struct {
	Home SideStats
	Away SideStats

	// overall first try across both sides, resolved by earliest minute
	FirstTryScorer string
	FirstTryMinute int
	// "home" or "away", empty if no tries were scored
	FirstTryTeam string

	Officials   []Official
	MainReferee string

	GroundCondition  string
	WeatherCondition string
}
