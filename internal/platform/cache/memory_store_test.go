package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_ExpiresEntries(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	if err := store.Set(ctx, "gamelog:8478402:20232024", []byte("payload"), 10*time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, ok, err := store.Get(ctx, "gamelog:8478402:20232024")
	if err != nil || !ok || string(got) != "payload" {
		t.Fatalf("expected cached payload, got %q ok=%v err=%v", got, ok, err)
	}

	now = now.Add(11 * time.Minute)
	if _, ok, _ := store.Get(ctx, "gamelog:8478402:20232024"); ok {
		t.Fatalf("expected entry to expire")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired entry to be evicted")
	}
}

func TestMemoryStore_ZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	_ = store.Set(ctx, "k", []byte("v"), 0)
	now = now.Add(24 * 365 * time.Hour)
	if _, ok, _ := store.Get(ctx, "k"); !ok {
		t.Fatalf("expected entry without ttl to persist")
	}
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()
	value := []byte("abc")
	_ = store.Set(ctx, "k", value, time.Minute)
	value[0] = 'x'

	got, _, _ := store.Get(ctx, "k")
	if string(got) != "abc" {
		t.Fatalf("store kept caller's slice: %q", got)
	}
	got[1] = 'y'
	again, _, _ := store.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("store returned shared slice: %q", again)
	}
}

func TestMemoryStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()
	_ = store.Set(ctx, "search:mcd", []byte("1"), time.Minute)
	_ = store.Set(ctx, "search:mat", []byte("2"), time.Minute)
	_ = store.Set(ctx, "player:1", []byte("3"), time.Minute)

	store.DeletePrefix(ctx, "search:")
	if store.Len() != 1 {
		t.Fatalf("expected only player entry to remain, got %d", store.Len())
	}
	_ = store.Delete(ctx, "player:1")
	if store.Len() != 0 {
		t.Fatalf("expected empty store")
	}
}
