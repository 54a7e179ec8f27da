package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/player"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/season"
)

type PlayerService struct {
	provider player.StatsProvider
}

func NewPlayerService(provider player.StatsProvider) *PlayerService {
	return &PlayerService{provider: provider}
}

// Search returns at most player.MaxSearchResults hits. Queries shorter than
// player.MinSearchQueryLength return no hits without calling the provider.
func (s *PlayerService) Search(ctx context.Context, query string) ([]player.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Search")
	defer span.End()

	query, ok := player.NormalizeQuery(query)
	if !ok {
		return []player.Summary{}, nil
	}

	results, err := s.provider.SearchPlayers(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	if len(results) > player.MaxSearchResults {
		results = results[:player.MaxSearchResults]
	}
	return results, nil
}

// Seasons lists the NHL regular seasons a player appeared in, newest first.
func (s *PlayerService) Seasons(ctx context.Context, playerID int64) ([]season.ID, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Seasons", attribute.Int64("player.id", playerID))
	defer span.End()

	if playerID <= 0 {
		return nil, fmt.Errorf("%w: player id must be positive", ErrInvalidInput)
	}

	profile, err := s.provider.GetPlayerDetails(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("get player details: %w", err)
	}
	return profile.Seasons(), nil
}
