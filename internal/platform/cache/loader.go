package cache

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/platform/logging"
)

// Loader reads through a Backend, collapsing concurrent misses for one key
// into a single load. Backend errors are logged and treated as misses.
type Loader struct {
	backend Backend
	logger  *logging.Logger
	flight  singleflight.Group
}

func NewLoader(backend Backend, logger *logging.Logger) *Loader {
	if logger == nil {
		logger = logging.Default()
	}
	return &Loader{backend: backend, logger: logger}
}

func (l *Loader) GetOrLoad(ctx context.Context, key string, ttl time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	if load == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return load(ctx)
	}

	if value, ok := l.get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := l.flight.Do(key, func() (any, error) {
		if cached, ok := l.get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := load(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		if setErr := l.backend.Set(ctx, key, loaded, ttl); setErr != nil {
			l.logger.WarnContext(ctx, "cache write failed", "key", key, "error", setErr)
		}
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value.([]byte), nil
}

func (l *Loader) get(ctx context.Context, key string) ([]byte, bool) {
	value, ok, err := l.backend.Get(ctx, key)
	if err != nil {
		l.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
		return nil, false
	}
	return value, ok
}
