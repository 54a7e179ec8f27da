package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/player"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/season"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/selection"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/platform/id"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/platform/logging"
)

type AddSelectionInput struct {
	SessionID  string
	PlayerID   int64
	Name       string
	TeamAbbrev string
}

// SessionService applies selection transitions and persists the result.
type SessionService struct {
	sessions selection.Repository
	provider player.StatsProvider
	ids      id.Generator
	logger   *logging.Logger
	now      func() time.Time
}

func NewSessionService(sessions selection.Repository, provider player.StatsProvider, ids id.Generator, logger *logging.Logger) *SessionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SessionService{
		sessions: sessions,
		provider: provider,
		ids:      ids,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *SessionService) Create(ctx context.Context) (selection.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Create")
	defer span.End()

	sessionID, err := s.ids.NewID()
	if err != nil {
		return selection.State{}, fmt.Errorf("generate session id: %w", err)
	}

	state := selection.New(sessionID, s.now().UTC())
	if err := s.sessions.Save(ctx, state); err != nil {
		return selection.State{}, fmt.Errorf("save session: %w", err)
	}
	return state, nil
}

func (s *SessionService) Get(ctx context.Context, sessionID string) (selection.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Get", attribute.String("session.id", sessionID))
	defer span.End()

	return s.load(ctx, sessionID)
}

func (s *SessionService) Delete(ctx context.Context, sessionID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Delete", attribute.String("session.id", sessionID))
	defer span.End()

	if _, err := s.load(ctx, sessionID); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// AddSelection looks up the player's seasons and appends the most recent one.
func (s *SessionService) AddSelection(ctx context.Context, input AddSelectionInput) (selection.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.AddSelection",
		attribute.String("session.id", input.SessionID),
		attribute.Int64("player.id", input.PlayerID),
	)
	defer span.End()

	if input.PlayerID <= 0 {
		return selection.State{}, fmt.Errorf("%w: player id must be positive", ErrInvalidInput)
	}

	state, err := s.load(ctx, input.SessionID)
	if err != nil {
		return selection.State{}, err
	}
	if len(state.Selections) >= selection.MaxSelections {
		return selection.State{}, fmt.Errorf("%w: max=%d", selection.ErrSelectionLimit, selection.MaxSelections)
	}

	profile, err := s.provider.GetPlayerDetails(ctx, input.PlayerID)
	if err != nil {
		s.logger.WarnContext(ctx, "could not fetch player details", "player_id", input.PlayerID, "error", err)
		return selection.State{}, fmt.Errorf("get player details: %w", err)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = profile.FullName()
	}
	team := strings.TrimSpace(input.TeamAbbrev)
	if team == "" {
		team = profile.TeamAbbrev
	}

	next, err := selection.Add(state, selection.Candidate{
		PlayerID:   input.PlayerID,
		Name:       name,
		TeamAbbrev: team,
	}, profile.Seasons(), s.now().UTC())
	if err != nil {
		return selection.State{}, err
	}

	return s.save(ctx, next)
}

func (s *SessionService) RemoveSelection(ctx context.Context, sessionID string, index int) (selection.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.RemoveSelection", attribute.String("session.id", sessionID))
	defer span.End()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return selection.State{}, err
	}

	next, err := selection.Remove(state, index, s.now().UTC())
	if err != nil {
		return selection.State{}, err
	}
	return s.save(ctx, next)
}

func (s *SessionService) ChangeSeason(ctx context.Context, sessionID string, index int, seasonID season.ID) (selection.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.ChangeSeason",
		attribute.String("session.id", sessionID),
		attribute.Int64("season.id", int64(seasonID)),
	)
	defer span.End()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return selection.State{}, err
	}

	next, err := selection.ChangeSeason(state, index, seasonID, s.now().UTC())
	if err != nil {
		return selection.State{}, err
	}
	return s.save(ctx, next)
}

func (s *SessionService) load(ctx context.Context, sessionID string) (selection.State, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return selection.State{}, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	state, exists, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return selection.State{}, fmt.Errorf("get session: %w", err)
	}
	if !exists {
		return selection.State{}, fmt.Errorf("%w: session=%s", ErrNotFound, sessionID)
	}
	return state, nil
}

func (s *SessionService) save(ctx context.Context, state selection.State) (selection.State, error) {
	if err := s.sessions.Save(ctx, state); err != nil {
		return selection.State{}, fmt.Errorf("save session: %w", err)
	}
	return state, nil
}
