package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func setupTestCache(t *testing.T) (*SuggestionCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSuggestionCache(client, time.Minute), mr
}

func TestSuggestionCache_Miss(t *testing.T) {
	cache, _ := setupTestCache(t)

	names, ok, err := cache.Get(context.Background(), "air")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || names != nil {
		t.Fatalf("expected a miss, got %v %v", names, ok)
	}
}

func TestSuggestionCache_SetGet(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "air", []string{"Air Runner", "Airwalk"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	names, ok, err := cache.Get(ctx, "air")
	if err != nil || !ok {
		t.Fatalf("expected a hit, got %v %v", ok, err)
	}
	if len(names) != 2 || names[0] != "Air Runner" {
		t.Fatalf("unexpected names: %v", names)
	}

	if ttl := mr.TTL(suggestionPrefix + "air"); ttl != time.Minute {
		t.Fatalf("expected 1m ttl, got %v", ttl)
	}

	mr.FastForward(2 * time.Minute)
	if _, ok, _ := cache.Get(ctx, "air"); ok {
		t.Fatalf("entry should have expired")
	}
}

func TestSuggestionCache_EmptyListIsAHit(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "zzz", nil); err != nil {
		t.Fatalf("set: %v", err)
	}
	names, ok, err := cache.Get(ctx, "zzz")
	if err != nil || !ok || names == nil || len(names) != 0 {
		t.Fatalf("expected cached empty list, got %v %v %v", names, ok, err)
	}
}

func TestSuggestionCache_Invalidate(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	_ = cache.Set(ctx, "air", []string{"Air Runner"})
	_ = cache.Set(ctx, "lea", []string{"Leather Loafer"})
	if err := mr.Set("unrelated", "keep"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if mr.Exists(suggestionPrefix+"air") || mr.Exists(suggestionPrefix+"lea") {
		t.Fatalf("suggestion keys survived invalidation")
	}
	if !mr.Exists("unrelated") {
		t.Fatalf("invalidation removed an unrelated key")
	}

	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate on empty cache: %v", err)
	}
}

func TestSuggestionCache_ServerDown(t *testing.T) {
	cache, mr := setupTestCache(t)
	mr.Close()

	if _, _, err := cache.Get(context.Background(), "air"); err == nil {
		t.Fatalf("expected an error when redis is unreachable")
	}
}
