package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/gamelog"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/metric"
)

func buildGames(lines ...gamelog.Game) []gamelog.Game {
	start := time.Date(2023, 10, 10, 0, 0, 0, 0, time.UTC)
	out := make([]gamelog.Game, len(lines))
	for i, line := range lines {
		line.Index = i + 1
		line.Date = start.AddDate(0, 0, i)
		out[i] = line
	}
	return out
}

func repeatGame(n int, line gamelog.Game) []gamelog.Game {
	lines := make([]gamelog.Game, n)
	for i := range lines {
		lines[i] = line
	}
	return buildGames(lines...)
}

func TestBuildSeries_ShootingPctFromCumulativeRatio(t *testing.T) {
	t.Parallel()

	def := metric.MustLookup(metric.ModeProjection, metric.ShootingPct)
	def.Mode = metric.ModeCumulative

	games := buildGames(
		gamelog.Game{Goals: 1, Shots: 3},
		gamelog.Game{Goals: 0, Shots: 2},
	)

	series := BuildSeries(games, def)
	require.Len(t, series, 2)
	assert.InDelta(t, 33.33, series[0].Value, 0.01)
	assert.InDelta(t, 20.0, series[1].Value, 1e-9)
	assert.Nil(t, series[0].Rolling)
	assert.Nil(t, series[1].Rolling)
}

func TestBuildSeries_ShootingPctZeroShots(t *testing.T) {
	t.Parallel()

	def := metric.MustLookup(metric.ModeProjection, metric.ShootingPct)
	series := BuildSeries(buildGames(gamelog.Game{}, gamelog.Game{Goals: 1, Shots: 4}), def)

	require.Len(t, series, 2)
	assert.Zero(t, series[0].Value)
	assert.InDelta(t, 25.0, series[1].Value, 1e-9)
}

func TestBuildSeries_ProjectionPaceWithRollingWindow(t *testing.T) {
	t.Parallel()

	def := metric.MustLookup(metric.ModeProjection, metric.Points)
	series := BuildSeries(repeatGame(11, gamelog.Game{Points: 1}), def)

	require.Len(t, series, 11)
	assert.Equal(t, 82.0, series[0].Value)
	assert.Equal(t, 82.0, series[10].Value)
	for g := 0; g < 9; g++ {
		assert.Nil(t, series[g].Rolling, "game %d should have no rolling value", g+1)
	}
	require.NotNil(t, series[9].Rolling)
	assert.Equal(t, 82.0, *series[9].Rolling)
	require.NotNil(t, series[10].Rolling)
	assert.Equal(t, 82.0, *series[10].Rolling)
}

func TestBuildSeries_PaceMatchesFormula(t *testing.T) {
	t.Parallel()

	perGame := []int{2, 0, 1, 3, 0, 0, 1, 2, 0, 1, 4, 0, 1}
	lines := make([]gamelog.Game, len(perGame))
	for i, v := range perGame {
		lines[i] = gamelog.Game{Goals: v}
	}
	games := buildGames(lines...)

	series := BuildSeries(games, metric.MustLookup(metric.ModeProjection, metric.Goals))
	require.Len(t, series, len(perGame))

	cum := 0.0
	for g := range perGame {
		cum += float64(perGame[g])
		assert.Equal(t, (cum/float64(g+1))*82, series[g].Value)

		if g+1 < RollingWindow {
			assert.Nil(t, series[g].Rolling)
			continue
		}
		window := 0.0
		for j := g + 1 - RollingWindow; j <= g; j++ {
			window += float64(perGame[j])
		}
		require.NotNil(t, series[g].Rolling)
		assert.Equal(t, (window/10)*82, *series[g].Rolling)
	}
}

func TestBuildSeries_CumulativeIsRunningTotal(t *testing.T) {
	t.Parallel()

	games := buildGames(
		gamelog.Game{Shots: 3},
		gamelog.Game{Shots: 0},
		gamelog.Game{Shots: 5},
	)
	series := BuildSeries(games, metric.MustLookup(metric.ModeCumulative, metric.Shots))

	require.Len(t, series, 3)
	assert.Equal(t, []float64{3, 3, 8}, []float64{series[0].Value, series[1].Value, series[2].Value})
	for i := 1; i < len(series); i++ {
		assert.GreaterOrEqual(t, series[i].Value, series[i-1].Value)
		assert.Nil(t, series[i].Rolling)
	}
}

func TestBuildSeries_RatesAreNotPaced(t *testing.T) {
	t.Parallel()

	games := buildGames(
		gamelog.Game{Shots: 4, TOIMinutes: 20, EvenStrengthTOIMinutes: 15},
		gamelog.Game{Shots: 2, TOIMinutes: 18, EvenStrengthTOIMinutes: 14},
	)

	shots := BuildSeries(games, metric.MustLookup(metric.ModeProjection, metric.Shots))
	assert.Equal(t, 3.0, shots[1].Value)

	toi := BuildSeries(games, metric.MustLookup(metric.ModeProjection, metric.TOI))
	assert.Equal(t, 19.0, toi[1].Value)

	esToi := BuildSeries(games, metric.MustLookup(metric.ModeProjection, metric.EvenStrengthTOI))
	assert.Equal(t, 14.5, esToi[1].Value)
}

func TestBuildSeries_EvenStrengthPct(t *testing.T) {
	t.Parallel()

	games := buildGames(
		gamelog.Game{},
		gamelog.Game{Points: 2, PowerPlayPoints: 1},
		gamelog.Game{Points: 2},
	)
	series := BuildSeries(games, metric.MustLookup(metric.ModeProjection, metric.EvenStrengthPct))

	require.Len(t, series, 3)
	assert.Zero(t, series[0].Value)
	assert.InDelta(t, 50.0, series[1].Value, 1e-9)
	assert.InDelta(t, 75.0, series[2].Value, 1e-9)
}

func TestBuildSeries_PlusMinusPaceCanBeNegative(t *testing.T) {
	t.Parallel()

	games := buildGames(gamelog.Game{PlusMinus: -2}, gamelog.Game{PlusMinus: 1})
	series := BuildSeries(games, metric.MustLookup(metric.ModeProjection, metric.PlusMinus))

	assert.Equal(t, -164.0, series[0].Value)
	assert.Equal(t, -41.0, series[1].Value)
}

func TestBuildSeries_Empty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, BuildSeries(nil, metric.MustLookup(metric.ModeCumulative, metric.Points)))
}

func TestBuildSeries_PanicsForDistribution(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for distribution metric")
		}
	}()
	BuildSeries(buildGames(gamelog.Game{}), metric.MustLookup(metric.ModeDistribution, metric.PointsSituation))
}
