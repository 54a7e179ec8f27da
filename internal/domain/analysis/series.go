package analysis

import (
	"fmt"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/gamelog"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/metric"
)

const (
	// PaceGames is the length of a full regular season.
	PaceGames = 82
	// RollingWindow is the trailing window length used in projection mode.
	RollingWindow = 10
)

// Point is one game of a computed series. Rolling is nil until the trailing
// window is full, and always nil outside projection mode.
type Point struct {
	GameIndex int
	Value     float64
	Rolling   *float64
}

type sums struct {
	value   float64
	goals   float64
	shots   float64
	points  float64
	special float64
}

func (s *sums) add(g gamelog.Game, value float64) {
	s.value += value
	s.goals += float64(g.Goals)
	s.shots += float64(g.Shots)
	s.points += float64(g.Points)
	s.special += float64(g.SpecialTeamsPoints())
}

// BuildSeries folds normalized games into one value per game for a
// cumulative or projection metric. Games must come from gamelog.Normalize.
func BuildSeries(games []gamelog.Game, def metric.Definition) []Point {
	if def.Mode == metric.ModeDistribution {
		panic(fmt.Sprintf("analysis: distribution metric %q has no series", def.ID))
	}
	if len(games) == 0 {
		return nil
	}

	values := make([]float64, len(games))
	for i, g := range games {
		values[i] = def.Extract(g)
	}

	rolling := def.Mode == metric.ModeProjection
	out := make([]Point, len(games))

	var running sums
	for i, g := range games {
		running.add(g, values[i])
		point := Point{
			GameIndex: g.Index,
			Value:     evaluate(def.Aggregation, running, float64(g.Index)),
		}

		if rolling && i+1 >= RollingWindow {
			var window sums
			for j := i + 1 - RollingWindow; j <= i; j++ {
				window.add(games[j], values[j])
			}
			v := evaluate(def.Aggregation, window, RollingWindow)
			point.Rolling = &v
		}

		out[i] = point
	}

	return out
}

func evaluate(aggregation metric.Aggregation, s sums, games float64) float64 {
	switch aggregation {
	case metric.AggregateShootingPct:
		if s.shots == 0 {
			return 0
		}
		return s.goals / s.shots * 100
	case metric.AggregateEvenStrengthPct:
		if s.points == 0 {
			return 0
		}
		return (s.points - s.special) / s.points * 100
	case metric.AggregatePerGame:
		return s.value / games
	case metric.AggregatePace:
		return (s.value / games) * PaceGames
	default:
		return s.value
	}
}
