// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		client.Del(ctx, activeThemeKey)
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")

	client, err := ConnectValkey(host, port, os.Getenv("VALKEY_PASSWORD"))
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestThemeCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	tc := NewThemeCache(client, time.Minute)
	ctx := context.Background()

	tc.Invalidate(ctx)
	if _, ok := tc.Active(ctx); ok {
		t.Error("expected cache miss")
	}

	tc.SetActive(ctx, "blue")
	got, ok := tc.Active(ctx)
	if !ok || got != "blue" {
		t.Errorf("Active: got %q ok=%v, want blue", got, ok)
	}

	// Last write wins.
	tc.SetActive(ctx, "red")
	tc.SetActive(ctx, "purple")
	if got, _ := tc.Active(ctx); got != "purple" {
		t.Errorf("Active after overwrite: got %q, want purple", got)
	}
}

func TestThemeCacheInvalidate(t *testing.T) {
	client := testValkeyClient(t)
	tc := NewThemeCache(client, time.Minute)
	ctx := context.Background()

	tc.SetActive(ctx, "cyan")
	tc.Invalidate(ctx)

	if _, ok := tc.Active(ctx); ok {
		t.Error("expected cache miss after invalidation")
	}
}

func TestThemeCacheTTL(t *testing.T) {
	client := testValkeyClient(t)

	tc := NewThemeCache(client, 0)
	if tc.ttl != DefaultThemeTTL {
		t.Errorf("expected DefaultThemeTTL (%v), got %v", DefaultThemeTTL, tc.ttl)
	}

	ctx := context.Background()
	tc.SetActive(ctx, "green")
	ttl, err := client.TTL(ctx, activeThemeKey).Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl <= 0 || ttl > DefaultThemeTTL {
		t.Errorf("unexpected TTL %v", ttl)
	}
}

func TestThemeCacheUnreachableIsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	tc := NewThemeCache(client, time.Minute)
	ctx := context.Background()

	// Errors must never surface to the caller.
	tc.SetActive(ctx, "blue")
	if _, ok := tc.Active(ctx); ok {
		t.Error("unreachable cache should report a miss")
	}
	tc.Invalidate(ctx)
}
