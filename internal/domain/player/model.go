package player

import (
	"strings"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/season"
)

// MinSearchQueryLength is the shortest query sent to the search endpoint.
const MinSearchQueryLength = 3

// MaxSearchResults caps the number of search hits shown to the user.
const MaxSearchResults = 10

// Summary is a player search hit.
type Summary struct {
	ID           int64
	Name         string
	TeamAbbrev   string
	PositionCode string
	Active       bool
}

// Profile is the subset of a player's landing page used for season lookup.
type Profile struct {
	ID            int64
	FirstName     string
	LastName      string
	TeamAbbrev    string
	PositionCode  string
	CurrentSeason season.ID
	SeasonTotals  []season.Total
}

func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Seasons lists the player's NHL regular seasons, newest first.
func (p Profile) Seasons() []season.ID {
	return season.Available(p.SeasonTotals, p.CurrentSeason)
}

// NormalizeQuery trims a search query and reports whether it is long enough
// to search for.
func NormalizeQuery(raw string) (string, bool) {
	query := strings.TrimSpace(raw)
	return query, len([]rune(query)) >= MinSearchQueryLength
}
