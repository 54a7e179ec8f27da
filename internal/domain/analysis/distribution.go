package analysis

import (
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/gamelog"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/metric"
)

const (
	LabelGoals        = "Goals"
	LabelAssists      = "Assists"
	LabelEvenStrength = "Even Strength"
	LabelPowerPlay    = "Power Play"
	LabelShorthanded  = "Shorthanded"
)

// Split is a season total broken down by manpower situation.
type Split struct {
	Total        int
	EvenStrength int
	PowerPlay    int
	Shorthanded  int
}

// Distribution holds season totals for one player-season.
type Distribution struct {
	Goals   Split
	Assists Split
	Points  Split
}

// Slice is one labelled bucket of a distribution view.
type Slice struct {
	Label string
	Value float64
}

// Summarize totals a season. Even-strength buckets are derived by
// subtraction and assists per situation are points minus goals.
func Summarize(games []gamelog.Game) Distribution {
	var d Distribution
	var ppPoints, shPoints int
	for _, g := range games {
		d.Goals.Total += g.Goals
		d.Goals.PowerPlay += g.PowerPlayGoals
		d.Goals.Shorthanded += g.ShorthandedGoals
		d.Assists.Total += g.Assists
		d.Points.Total += g.Points
		ppPoints += g.PowerPlayPoints
		shPoints += g.ShorthandedPoints
	}

	d.Points.PowerPlay = ppPoints
	d.Points.Shorthanded = shPoints

	d.Goals.EvenStrength = d.Goals.Total - d.Goals.PowerPlay - d.Goals.Shorthanded
	d.Points.EvenStrength = d.Points.Total - d.Points.PowerPlay - d.Points.Shorthanded

	d.Assists.PowerPlay = d.Points.PowerPlay - d.Goals.PowerPlay
	d.Assists.Shorthanded = d.Points.Shorthanded - d.Goals.Shorthanded
	d.Assists.EvenStrength = d.Assists.Total - d.Assists.PowerPlay - d.Assists.Shorthanded

	return d
}

// Slices returns the buckets selected by a distribution breakdown.
func (d Distribution) Slices(breakdown metric.Breakdown) []Slice {
	switch breakdown {
	case metric.BreakdownGoalsAssists:
		return []Slice{
			{Label: LabelGoals, Value: float64(d.Goals.Total)},
			{Label: LabelAssists, Value: float64(d.Assists.Total)},
		}
	case metric.BreakdownPointsSituation:
		return situationSlices(d.Points)
	case metric.BreakdownGoalsSituation:
		return situationSlices(d.Goals)
	case metric.BreakdownAssistsSituation:
		return situationSlices(d.Assists)
	default:
		return nil
	}
}

func situationSlices(s Split) []Slice {
	return []Slice{
		{Label: LabelEvenStrength, Value: float64(s.EvenStrength)},
		{Label: LabelPowerPlay, Value: float64(s.PowerPlay)},
		{Label: LabelShorthanded, Value: float64(s.Shorthanded)},
	}
}
