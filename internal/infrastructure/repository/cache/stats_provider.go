package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/gamelog"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/player"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/season"
	basecache "github.com/Xenos72/NHLStatsAnalyzer1/internal/platform/cache"
)

const keyPrefix = "nhl:"

// TTLs sets how long each provider response is kept.
type TTLs struct {
	Search  time.Duration
	Player  time.Duration
	GameLog time.Duration
}

// StatsProvider caches NHL API responses in front of another provider.
type StatsProvider struct {
	next   player.StatsProvider
	loader *basecache.Loader
	ttls   TTLs
}

var _ player.StatsProvider = (*StatsProvider)(nil)

func NewStatsProvider(next player.StatsProvider, loader *basecache.Loader, ttls TTLs) *StatsProvider {
	return &StatsProvider{next: next, loader: loader, ttls: ttls}
}

func (p *StatsProvider) SearchPlayers(ctx context.Context, query string) ([]player.Summary, error) {
	key := keyPrefix + "search:" + strings.ToLower(strings.TrimSpace(query))
	var out []player.Summary
	err := p.through(ctx, key, p.ttls.Search, &out, func(ctx context.Context) (any, error) {
		return p.next.SearchPlayers(ctx, query)
	})
	return out, err
}

func (p *StatsProvider) GetPlayerDetails(ctx context.Context, playerID int64) (player.Profile, error) {
	key := keyPrefix + "player:" + strconv.FormatInt(playerID, 10)
	var out player.Profile
	err := p.through(ctx, key, p.ttls.Player, &out, func(ctx context.Context) (any, error) {
		return p.next.GetPlayerDetails(ctx, playerID)
	})
	return out, err
}

func (p *StatsProvider) GetGameLog(ctx context.Context, playerID int64, seasonID season.ID) ([]gamelog.RawGame, error) {
	key := fmt.Sprintf("%sgamelog:%d:%d", keyPrefix, playerID, int64(seasonID))
	var out []gamelog.RawGame
	err := p.through(ctx, key, p.ttls.GameLog, &out, func(ctx context.Context) (any, error) {
		return p.next.GetGameLog(ctx, playerID, seasonID)
	})
	return out, err
}

func (p *StatsProvider) through(ctx context.Context, key string, ttl time.Duration, target any, load func(context.Context) (any, error)) error {
	raw, err := p.loader.GetOrLoad(ctx, key, ttl, func(ctx context.Context) ([]byte, error) {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return sonic.Marshal(value)
	})
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode cached %s: %w", key, err)
	}
	return nil
}
