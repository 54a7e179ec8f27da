package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/iter"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/analysis"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/gamelog"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/metric"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/player"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/season"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/selection"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/platform/logging"
)

const (
	MissingReasonFetchFailed = "fetch_failed"
	MissingReasonNoGames     = "no_games"

	NoDataMessage = "No game data available for selected parameters."

	defaultAnalysisWorkers = selection.MaxSelections
)

type AnalysisInput struct {
	SessionID string
	Mode      string
	Metric    string
}

// MissingSelection is a selection that contributed nothing to a run.
type MissingSelection struct {
	Index    int
	PlayerID int64
	Name     string
	Season   season.ID
	Reason   string
}

type AnalysisResult struct {
	SessionID     string
	Definition    metric.Definition
	Title         string
	Series        []analysis.PlayerSeries
	Distributions []analysis.DistributionView
	Missing       []MissingSelection
	Message       string
}

// Empty reports whether no selection produced data.
func (r AnalysisResult) Empty() bool {
	return len(r.Series) == 0 && len(r.Distributions) == 0
}

type fetchedLog struct {
	index     int
	selection selection.Selection
	raw       []gamelog.RawGame
	err       error
}

type computedSelection struct {
	fetched      fetchedLog
	games        int
	series       analysis.PlayerSeries
	distribution analysis.DistributionView
}

// AnalysisService fetches every selection's game log and folds it through
// the metric engine.
type AnalysisService struct {
	sessions selection.Repository
	provider player.StatsProvider
	workers  int
	logger   *logging.Logger
}

func NewAnalysisService(sessions selection.Repository, provider player.StatsProvider, workers int, logger *logging.Logger) *AnalysisService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultAnalysisWorkers
	}
	return &AnalysisService{
		sessions: sessions,
		provider: provider,
		workers:  workers,
		logger:   logger,
	}
}

// ResolveMetric validates a mode and metric id pair.
func ResolveMetric(rawMode, rawMetric string) (metric.Definition, error) {
	mode, err := metric.ParseMode(rawMode)
	if err != nil {
		return metric.Definition{}, err
	}
	return metric.Lookup(mode, metric.ID(rawMetric))
}

func (s *AnalysisService) Run(ctx context.Context, input AnalysisInput) (AnalysisResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalysisService.Run",
		attribute.String("session.id", input.SessionID),
		attribute.String("analysis.mode", input.Mode),
		attribute.String("analysis.metric", input.Metric),
	)
	defer span.End()

	def, err := ResolveMetric(input.Mode, input.Metric)
	if err != nil {
		return AnalysisResult{}, err
	}

	if input.SessionID == "" {
		return AnalysisResult{}, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}
	state, exists, err := s.sessions.Get(ctx, input.SessionID)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("get session: %w", err)
	}
	if !exists {
		return AnalysisResult{}, fmt.Errorf("%w: session=%s", ErrNotFound, input.SessionID)
	}

	result := AnalysisResult{
		SessionID:     state.SessionID,
		Definition:    def,
		Title:         def.Title(),
		Series:        []analysis.PlayerSeries{},
		Distributions: []analysis.DistributionView{},
		Missing:       []MissingSelection{},
	}
	if len(state.Selections) == 0 {
		result.Message = NoDataMessage
		return result, nil
	}

	fetched, err := s.fetchGameLogs(ctx, state.Selections)
	if err != nil {
		return AnalysisResult{}, err
	}

	computed := iter.Map(fetched, func(item *fetchedLog) computedSelection {
		return compute(*item, def)
	})

	series := make([]analysis.PlayerSeries, 0, len(computed))
	for _, item := range computed {
		sel := item.fetched.selection
		switch {
		case item.fetched.err != nil:
			s.logger.WarnContext(ctx, "game log fetch failed",
				"session_id", state.SessionID,
				"player_id", sel.PlayerID,
				"season", sel.Season,
				"error", item.fetched.err,
			)
			result.Missing = append(result.Missing, missing(item.fetched, MissingReasonFetchFailed))
		case item.games == 0:
			result.Missing = append(result.Missing, missing(item.fetched, MissingReasonNoGames))
		case def.Mode == metric.ModeDistribution:
			result.Distributions = append(result.Distributions, item.distribution)
		default:
			series = append(series, item.series)
		}
	}
	result.Series = analysis.Combine(series...)

	if result.Empty() {
		result.Message = NoDataMessage
	}

	s.logger.DebugContext(ctx, "analysis run completed",
		"session_id", state.SessionID,
		"mode", def.Mode,
		"metric", def.ID,
		"series", len(result.Series),
		"distributions", len(result.Distributions),
		"missing", len(result.Missing),
	)
	return result, nil
}

func (s *AnalysisService) fetchGameLogs(ctx context.Context, selections []selection.Selection) ([]fetchedLog, error) {
	out := make([]fetchedLog, len(selections))

	pool, err := ants.NewPool(normalizeWorkerCount(s.workers, len(selections)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, item := range selections {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			raw, fetchErr := s.provider.GetGameLog(ctx, item.PlayerID, item.Season)
			out[i] = fetchedLog{index: i, selection: item, raw: raw, err: fetchErr}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit game log fetch to worker pool: %w", err)
		}
	}

	workers.Wait()
	return out, nil
}

func compute(item fetchedLog, def metric.Definition) computedSelection {
	out := computedSelection{fetched: item}
	if item.err != nil {
		return out
	}

	games := gamelog.Normalize(item.raw)
	out.games = len(games)
	if len(games) == 0 {
		return out
	}

	sel := item.selection
	if def.Mode == metric.ModeDistribution {
		summary := analysis.Summarize(games)
		out.distribution = analysis.DistributionView{
			PlayerID: sel.PlayerID,
			Name:     sel.Name,
			Season:   sel.Season,
			Color:    sel.Color(),
			Summary:  summary,
			Slices:   summary.Slices(def.Breakdown),
		}
		return out
	}

	out.series = analysis.PlayerSeries{
		PlayerID: sel.PlayerID,
		Name:     sel.Name,
		Season:   sel.Season,
		Color:    sel.Color(),
		Points:   analysis.BuildSeries(games, def),
	}
	return out
}

func missing(item fetchedLog, reason string) MissingSelection {
	return MissingSelection{
		Index:    item.index,
		PlayerID: item.selection.PlayerID,
		Name:     item.selection.Name,
		Season:   item.selection.Season,
		Reason:   reason,
	}
}

func normalizeWorkerCount(requested, taskCount int) int {
	if requested <= 0 {
		requested = defaultAnalysisWorkers
	}
	if taskCount > 0 && requested > taskCount {
		return taskCount
	}
	return requested
}
