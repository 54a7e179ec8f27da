package player

import (
	"context"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/gamelog"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/season"
)

// StatsProvider is the read side of the public NHL stats API.
type StatsProvider interface {
	SearchPlayers(ctx context.Context, query string) ([]Summary, error)
	GetPlayerDetails(ctx context.Context, playerID int64) (Profile, error)
	GetGameLog(ctx context.Context, playerID int64, seasonID season.ID) ([]gamelog.RawGame, error)
}
