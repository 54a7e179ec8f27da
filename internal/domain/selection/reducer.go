package selection

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/season"
)

var (
	ErrSelectionLimit    = errors.New("selection limit reached")
	ErrSelectionNotFound = errors.New("selection not found")
	ErrSeasonUnavailable = errors.New("season not available for player")
	ErrNoSeasons         = errors.New("player has no seasons")
)

// New returns an empty session.
func New(sessionID string, now time.Time) State {
	return State{
		SessionID:  sessionID,
		Selections: []Selection{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Add appends a selection for candidate, defaulting to the most recent of
// seasons. seasons must already be ordered newest first.
func Add(state State, candidate Candidate, seasons []season.ID, now time.Time) (State, error) {
	if len(state.Selections) >= MaxSelections {
		return state, fmt.Errorf("%w: max=%d", ErrSelectionLimit, MaxSelections)
	}
	if len(seasons) == 0 {
		return state, fmt.Errorf("%w: player=%d", ErrNoSeasons, candidate.PlayerID)
	}

	next := state.Clone()
	next.Selections = append(next.Selections, Selection{
		PlayerID:         candidate.PlayerID,
		Name:             withDefault(candidate.Name, DefaultName),
		TeamAbbrev:       withDefault(candidate.TeamAbbrev, DefaultTeamAbbrev),
		Season:           seasons[0],
		AvailableSeasons: append([]season.ID(nil), seasons...),
		ColorIndex:       len(state.Selections),
		CreatedAt:        now,
	})
	next.UpdatedAt = now
	return next, nil
}

// Remove drops the selection at index and reassigns colors contiguously.
func Remove(state State, index int, now time.Time) (State, error) {
	if index < 0 || index >= len(state.Selections) {
		return state, fmt.Errorf("%w: index=%d", ErrSelectionNotFound, index)
	}

	next := state.Clone()
	next.Selections = append(next.Selections[:index], next.Selections[index+1:]...)
	for i := range next.Selections {
		next.Selections[i].ColorIndex = i
	}
	next.UpdatedAt = now
	return next, nil
}

// ChangeSeason switches the selection at index to another of its seasons.
func ChangeSeason(state State, index int, id season.ID, now time.Time) (State, error) {
	if index < 0 || index >= len(state.Selections) {
		return state, fmt.Errorf("%w: index=%d", ErrSelectionNotFound, index)
	}
	if !season.Contains(state.Selections[index].AvailableSeasons, id) {
		return state, fmt.Errorf("%w: season=%d player=%d", ErrSeasonUnavailable, id, state.Selections[index].PlayerID)
	}

	next := state.Clone()
	next.Selections[index].Season = id
	next.UpdatedAt = now
	return next, nil
}

func withDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
