package cache

import (
	"context"
	"time"
)

// Backend stores encoded values with a per-entry TTL. A ttl <= 0 never
// expires.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
