package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"github.com/valyala/fasthttp"

	"github.com/Xenos72/NHLStatsAnalyzer1/external/nhl"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/config"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/player"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/selection"
	cacherepo "github.com/Xenos72/NHLStatsAnalyzer1/internal/infrastructure/repository/cache"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/infrastructure/repository/memory"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/infrastructure/repository/postgres"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/interfaces/httpapi"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/platform/cache"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/platform/id"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/platform/logging"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/platform/resilience"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/usecase"
)

const (
	redisKeyPrefix  = "nhl-stats-analyzer:"
	dependencyProbe = 5 * time.Second
)

// Server bundles the HTTP server with the resources it owns.
type Server struct {
	HTTP    *http.Server
	closers []func() error
}

// Close releases the database pool and cache connections.
func (s *Server) Close() error {
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	srv := &Server{}

	var provider player.StatsProvider = nhl.NewClient(nhl.ClientConfig{
		HTTPClient: &fasthttp.Client{
			Name:                cfg.ServiceName,
			ReadTimeout:         cfg.NHLTimeout,
			WriteTimeout:        cfg.NHLTimeout,
			MaxConnsPerHost:     16,
			MaxIdleConnDuration: 30 * time.Second,
		},
		BaseURL:         cfg.NHLBaseURL,
		SearchURL:       cfg.NHLSearchURL,
		Timeout:         cfg.NHLTimeout,
		RequestInterval: cfg.NHLRequestInterval,
		Logger:          logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.NHLCircuitEnabled,
			FailureThreshold: cfg.NHLCircuitFailureCount,
			OpenTimeout:      cfg.NHLCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.NHLCircuitHalfOpenMaxReq,
		},
	})

	if cfg.CacheEnabled {
		backend, closeBackend, err := newCacheBackend(ctx, cfg, logger)
		if err != nil {
			_ = srv.Close()
			return nil, err
		}
		if closeBackend != nil {
			srv.closers = append(srv.closers, closeBackend)
		}
		provider = cacherepo.NewStatsProvider(provider, cache.NewLoader(backend, logger), cacherepo.TTLs{
			Search:  cfg.CacheSearchTTL,
			Player:  cfg.CachePlayerTTL,
			GameLog: cfg.CacheGameLogTTL,
		})
	}

	sessions, closeStore, err := newSessionRepository(ctx, cfg, logger)
	if err != nil {
		_ = srv.Close()
		return nil, err
	}
	if closeStore != nil {
		srv.closers = append(srv.closers, closeStore)
	}

	handler := httpapi.NewHandler(
		usecase.NewPlayerService(provider),
		usecase.NewSessionService(sessions, provider, id.NewUUIDGenerator(), logger),
		usecase.NewAnalysisService(sessions, provider, cfg.AnalysisWorkers, logger),
		logger,
	)

	srv.HTTP = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	logger.Info("app wired",
		"cache_enabled", cfg.CacheEnabled,
		"cache_backend", cfg.CacheBackend,
		"session_store", cfg.SessionStore,
		"analysis_workers", cfg.AnalysisWorkers,
	)
	return srv, nil
}

func newCacheBackend(ctx context.Context, cfg config.Config, logger *logging.Logger) (cache.Backend, func() error, error) {
	if cfg.CacheBackend != config.CacheBackendRedis {
		return cache.NewMemoryStore(), nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	store := cache.NewRedisStore(client, redisKeyPrefix)

	pingCtx, cancel := context.WithTimeout(ctx, dependencyProbe)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
	}

	logger.Info("redis cache connected", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
	return store, client.Close, nil
}

func newSessionRepository(ctx context.Context, cfg config.Config, logger *logging.Logger) (selection.Repository, func() error, error) {
	if cfg.SessionStore != config.SessionStorePostgres {
		return memory.NewSessionRepository(), nil, nil
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("postgres session store connected", "db_name", dbNameFromURL(cfg.DBURL))
	return postgres.NewSessionRepository(db), db.Close, nil
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres",
		PostgresURL(cfg),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, dependencyProbe)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}
