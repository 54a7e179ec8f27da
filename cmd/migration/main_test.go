package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/config"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/platform/logging"
)

func TestParseSteps(t *testing.T) {
	tests := []struct {
		args    []string
		want    int
		wantErr bool
	}{
		{args: nil, want: 1},
		{args: []string{"3"}, want: 3},
		{args: []string{"0"}, wantErr: true},
		{args: []string{"x"}, wantErr: true},
	}
	for _, tc := range tests {
		got, err := parseSteps(tc.args)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("parseSteps(%v) expected error", tc.args)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("parseSteps(%v) = %d, %v", tc.args, got, err)
		}
	}
}

func TestResolveMigrationsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.sql")
	if err := os.WriteFile(file, []byte("--"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := resolveMigrationsDir("", filepath.Join(dir, "missing"), file, dir)
	if err != nil {
		t.Fatalf("resolveMigrationsDir: %v", err)
	}
	if got != dir {
		t.Fatalf("resolved %q, want %q", got, dir)
	}

	if _, err := resolveMigrationsDir(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected error when no candidate exists")
	}
}

func TestRunWithoutCommandIsUsage(t *testing.T) {
	err := run(nil, config.Config{}, logging.NewNop())
	if !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}
