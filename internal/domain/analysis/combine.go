package analysis

import "github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/season"

// PlayerSeries is one player-season's computed series ready for rendering.
type PlayerSeries struct {
	PlayerID int64
	Name     string
	Season   season.ID
	Color    string
	Points   []Point
}

// DistributionView is one player-season's selected distribution buckets.
type DistributionView struct {
	PlayerID int64
	Name     string
	Season   season.ID
	Color    string
	Summary  Distribution
	Slices   []Slice
}

// Row is one line of the raw-data export.
type Row struct {
	PlayerName string
	Season     season.ID
	GameNumber int
	Value      float64
	Rolling    *float64
}

// Combine keeps series in input order and drops those without games.
// Each series keeps its own game indexes.
func Combine(series ...PlayerSeries) []PlayerSeries {
	out := make([]PlayerSeries, 0, len(series))
	for _, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Rows flattens combined series for tabular export.
func Rows(series []PlayerSeries) []Row {
	total := 0
	for _, s := range series {
		total += len(s.Points)
	}

	rows := make([]Row, 0, total)
	for _, s := range series {
		for _, p := range s.Points {
			rows = append(rows, Row{
				PlayerName: s.Name,
				Season:     s.Season,
				GameNumber: p.GameIndex,
				Value:      p.Value,
				Rolling:    p.Rolling,
			})
		}
	}
	return rows
}

// MaxGames is the longest series length, used to size a shared x axis.
func MaxGames(series []PlayerSeries) int {
	longest := 0
	for _, s := range series {
		if n := len(s.Points); n > longest {
			longest = n
		}
	}
	return longest
}
