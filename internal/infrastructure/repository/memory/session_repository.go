package memory

import (
	"context"
	"sync"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/selection"
)

// SessionRepository keeps analysis sessions in process memory.
type SessionRepository struct {
	mu    sync.RWMutex
	items map[string]selection.State
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{items: make(map[string]selection.State)}
}

func (r *SessionRepository) Get(_ context.Context, sessionID string) (selection.State, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.items[sessionID]
	if !ok {
		return selection.State{}, false, nil
	}
	return state.Clone(), true, nil
}

func (r *SessionRepository) Save(_ context.Context, state selection.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[state.SessionID] = state.Clone()
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, sessionID)
	return nil
}
