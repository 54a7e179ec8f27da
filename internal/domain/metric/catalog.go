package metric

import (
	"fmt"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/gamelog"
)

var catalog = map[Mode][]Definition{
	ModeCumulative: {
		counting(ModeCumulative, Points, "Points", points, AggregateTotal),
		counting(ModeCumulative, Goals, "Goals", goals, AggregateTotal),
		counting(ModeCumulative, Assists, "Assists", assists, AggregateTotal),
		counting(ModeCumulative, Shots, "Shots on Goal", shots, AggregateTotal),
		counting(ModeCumulative, PlusMinus, "Plus/Minus", plusMinus, AggregateTotal),
		counting(ModeCumulative, EvenStrengthPoints, "Even Strength Points", evenStrengthPoints, AggregateTotal),
	},
	ModeProjection: {
		counting(ModeProjection, Points, "Points", points, AggregatePace),
		counting(ModeProjection, Goals, "Goals", goals, AggregatePace),
		counting(ModeProjection, Assists, "Assists", assists, AggregatePace),
		counting(ModeProjection, Shots, "Shots Per Game", shots, AggregatePerGame),
		{Mode: ModeProjection, ID: ShootingPct, Label: "Shooting %", Unit: "%", Extract: none, Aggregation: AggregateShootingPct},
		{Mode: ModeProjection, ID: TOI, Label: "Avg Time On Ice", Unit: "m", Extract: toiMinutes, Aggregation: AggregatePerGame},
		{Mode: ModeProjection, ID: EvenStrengthTOI, Label: "Avg Even Strength TOI", Unit: "m", Extract: evenStrengthTOIMinutes, Aggregation: AggregatePerGame},
		{Mode: ModeProjection, ID: EvenStrengthPct, Label: "Even Strength % of Prod", Unit: "%", Extract: none, Aggregation: AggregateEvenStrengthPct},
		counting(ModeProjection, PlusMinus, "Plus/Minus", plusMinus, AggregatePace),
	},
	ModeDistribution: {
		{Mode: ModeDistribution, ID: PointsComposition, Label: "Points (Goals vs Assists)", Extract: none, Breakdown: BreakdownGoalsAssists},
		{Mode: ModeDistribution, ID: PointsSituation, Label: "Points Situation (ES/PP/SH)", Extract: none, Breakdown: BreakdownPointsSituation},
		{Mode: ModeDistribution, ID: GoalsSituation, Label: "Goals Situation (ES/PP/SH)", Extract: none, Breakdown: BreakdownGoalsSituation},
		{Mode: ModeDistribution, ID: AssistsSituation, Label: "Assists Situation (ES/PP/SH)", Extract: none, Breakdown: BreakdownAssistsSituation},
	},
}

func counting(mode Mode, id ID, label string, extract Extractor, aggregation Aggregation) Definition {
	return Definition{Mode: mode, ID: id, Label: label, Extract: extract, Aggregation: aggregation}
}

// Lookup resolves a metric id within a mode.
func Lookup(mode Mode, id ID) (Definition, error) {
	defs, ok := catalog[mode]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	for _, def := range defs {
		if def.ID == id {
			return def, nil
		}
	}
	return Definition{}, fmt.Errorf("%w: mode=%s metric=%s", ErrUnknownMetric, mode, id)
}

// MustLookup is Lookup for ids known at compile time. It panics on unknown ids.
func MustLookup(mode Mode, id ID) Definition {
	def, err := Lookup(mode, id)
	if err != nil {
		panic(err)
	}
	return def
}

// List returns the metrics available in mode, in display order.
func List(mode Mode) []Definition {
	defs := catalog[mode]
	out := make([]Definition, len(defs))
	copy(out, defs)
	return out
}

func none(gamelog.Game) float64 { return 0 }

func points(g gamelog.Game) float64 { return float64(g.Points) }

func goals(g gamelog.Game) float64 { return float64(g.Goals) }

func assists(g gamelog.Game) float64 { return float64(g.Assists) }

func shots(g gamelog.Game) float64 { return float64(g.Shots) }

func plusMinus(g gamelog.Game) float64 { return float64(g.PlusMinus) }

func evenStrengthPoints(g gamelog.Game) float64 { return float64(g.EvenStrengthPoints()) }

func toiMinutes(g gamelog.Game) float64 { return g.TOIMinutes }

func evenStrengthTOIMinutes(g gamelog.Game) float64 { return g.EvenStrengthTOIMinutes }
