package selection

import "context"

type Repository interface {
	Get(ctx context.Context, sessionID string) (State, bool, error)
	Save(ctx context.Context, state State) error
	Delete(ctx context.Context, sessionID string) error
}
