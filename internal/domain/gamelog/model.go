package gamelog

import "time"

// RawGame is one regular-season boxscore line as delivered by the stats provider.
// Any field may be absent.
type RawGame struct {
	GameID            *int64
	GameDate          *string
	TeamAbbrev        *string
	OpponentAbbrev    *string
	HomeRoadFlag      *string
	TOI               *string
	PowerPlayTOI      *string
	ShorthandedTOI    *string
	Goals             *int
	Assists           *int
	Points            *int
	Shots             *int
	PlusMinus         *int
	PowerPlayGoals    *int
	PowerPlayPoints   *int
	ShorthandedGoals  *int
	ShorthandedPoints *int
	PIM               *int
	Shifts            *int
}

// Game is a normalized boxscore line. Index is the 1-based position of the
// game in chronological order and the Cum* fields are running totals up to
// and including this game.
type Game struct {
	Index          int
	GameID         int64
	Date           time.Time
	TeamAbbrev     string
	OpponentAbbrev string
	HomeRoadFlag   string

	TOI            string
	PowerPlayTOI   string
	ShorthandedTOI string

	TOIMinutes             float64
	PowerPlayTOIMinutes    float64
	ShorthandedTOIMinutes  float64
	EvenStrengthTOIMinutes float64

	Goals             int
	Assists           int
	Points            int
	Shots             int
	PlusMinus         int
	PowerPlayGoals    int
	PowerPlayPoints   int
	ShorthandedGoals  int
	ShorthandedPoints int
	PIM               int
	Shifts            int

	CumGoals              int
	CumShots              int
	CumPoints             int
	CumSpecialTeamsPoints int
}

// SpecialTeamsPoints is power-play plus shorthanded points.
func (g Game) SpecialTeamsPoints() int {
	return g.PowerPlayPoints + g.ShorthandedPoints
}

func (g Game) EvenStrengthPoints() int {
	return g.Points - g.SpecialTeamsPoints()
}
