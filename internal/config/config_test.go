package config

import (
	"testing"
	"time"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.NHLBaseURL != "https://api-web.nhle.com/v1" {
		t.Fatalf("unexpected NHLBaseURL: %q", cfg.NHLBaseURL)
	}
	if cfg.CacheBackend != CacheBackendMemory || cfg.SessionStore != SessionStoreMemory {
		t.Fatalf("unexpected backends: cache=%q session=%q", cfg.CacheBackend, cfg.SessionStore)
	}
	if cfg.CacheSearchTTL != time.Hour || cfg.CachePlayerTTL != time.Hour || cfg.CacheGameLogTTL != 10*time.Minute {
		t.Fatalf("unexpected cache ttls: %s %s %s", cfg.CacheSearchTTL, cfg.CachePlayerTTL, cfg.CacheGameLogTTL)
	}
	if cfg.AnalysisWorkers != 3 {
		t.Fatalf("unexpected AnalysisWorkers: %d", cfg.AnalysisWorkers)
	}
	if !cfg.NHLCircuitEnabled || cfg.NHLCircuitFailureCount != 5 {
		t.Fatalf("unexpected circuit defaults: enabled=%v failures=%d", cfg.NHLCircuitEnabled, cfg.NHLCircuitFailureCount)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_InvalidBackends(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "cache backend", key: "CACHE_BACKEND", val: "memcached"},
		{name: "session store", key: "SESSION_STORE", val: "sqlite"},
		{name: "workers", key: "ANALYSIS_WORKERS", val: "0"},
		{name: "gamelog ttl", key: "CACHE_GAMELOG_TTL", val: "-1m"},
		{name: "circuit failures", key: "NHL_CIRCUIT_FAILURE_COUNT", val: "abc"},
		{name: "log level", key: "APP_LOG_LEVEL", val: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.val)
			}
		})
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" https://a.example.com, ,https://b.example.com ")
	if len(got) != 2 || got[0] != "https://a.example.com" || got[1] != "https://b.example.com" {
		t.Fatalf("unexpected split: %v", got)
	}
}
