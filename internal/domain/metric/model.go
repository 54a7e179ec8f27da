package metric

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/gamelog"
)

var (
	ErrUnknownMode   = errors.New("unknown analysis mode")
	ErrUnknownMetric = errors.New("unknown metric for mode")
)

// Mode selects how per-game values are folded into a series.
type Mode string

const (
	ModeCumulative   Mode = "cumulative"
	ModeProjection   Mode = "projection"
	ModeDistribution Mode = "distribution"
)

var modeLabels = map[Mode]string{
	ModeCumulative:   "Cumulative",
	ModeProjection:   "82-Gm Pace",
	ModeDistribution: "Distribution",
}

func (m Mode) Label() string {
	return modeLabels[m]
}

func ParseMode(raw string) (Mode, error) {
	mode := Mode(strings.TrimSpace(raw))
	if _, ok := modeLabels[mode]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, raw)
	}
	return mode, nil
}

// Modes lists every mode in display order.
func Modes() []Mode {
	return []Mode{ModeCumulative, ModeProjection, ModeDistribution}
}

type ID string

const (
	Points             ID = "points"
	Goals              ID = "goals"
	Assists            ID = "assists"
	Shots              ID = "shots"
	PlusMinus          ID = "plusMinus"
	EvenStrengthPoints ID = "evenStrengthPoints"
	ShootingPct        ID = "shootingPct"
	TOI                ID = "toi"
	EvenStrengthTOI    ID = "esToi"
	EvenStrengthPct    ID = "evenStrengthPct"

	PointsComposition ID = "pointsComp"
	PointsSituation   ID = "pointsSit"
	GoalsSituation    ID = "goalsSit"
	AssistsSituation  ID = "assistsSit"
)

// Aggregation is the rule that turns running sums into the reported value.
type Aggregation int

const (
	AggregateTotal Aggregation = iota
	AggregatePace
	AggregatePerGame
	AggregateShootingPct
	AggregateEvenStrengthPct
)

// Breakdown selects the buckets reported by a distribution metric.
type Breakdown int

const (
	BreakdownNone Breakdown = iota
	BreakdownGoalsAssists
	BreakdownPointsSituation
	BreakdownGoalsSituation
	BreakdownAssistsSituation
)

// Extractor returns the raw per-game value accumulated by a metric.
type Extractor func(g gamelog.Game) float64

type Definition struct {
	Mode        Mode
	ID          ID
	Label       string
	Unit        string
	Extract     Extractor
	Aggregation Aggregation
	Breakdown   Breakdown
}

// IsRate reports whether the metric is reported as a rate rather than a
// paced or running total.
func (d Definition) IsRate() bool {
	switch d.Aggregation {
	case AggregatePerGame, AggregateShootingPct, AggregateEvenStrengthPct:
		return true
	default:
		return false
	}
}

// Title is the chart heading, e.g. "Points - 82-Gm Pace".
func (d Definition) Title() string {
	return d.Label + " - " + d.Mode.Label()
}
