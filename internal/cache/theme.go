// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// theme.go keeps the last known active theme id in Valkey so the public
// read path can keep answering while the database is unavailable. Every
// successful database read or write refreshes it.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// activeThemeKey is the Valkey key holding the active theme id.
	activeThemeKey = "theme:active"

	// DefaultThemeTTL bounds how long a database outage can be covered by
	// the last known id.
	DefaultThemeTTL = 10 * time.Minute
)

// ThemeCache caches the active theme id. All errors are logged and
// reported as a miss; the cache is never authoritative.
type ThemeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewThemeCache creates a theme cache backed by the given Valkey client.
func NewThemeCache(client *redis.Client, ttl time.Duration) *ThemeCache {
	if ttl == 0 {
		ttl = DefaultThemeTTL
	}
	return &ThemeCache{client: client, ttl: ttl}
}

// Active returns the cached theme id. The boolean is false on a miss.
func (c *ThemeCache) Active(ctx context.Context) (string, bool) {
	val, err := c.client.Get(ctx, activeThemeKey).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		slog.Warn("theme cache get error", "error", err)
		return "", false
	}
	slog.Debug("theme cache hit", "theme", val)
	return val, true
}

// SetActive stores the active theme id with the configured TTL.
func (c *ThemeCache) SetActive(ctx context.Context, id string) {
	if err := c.client.Set(ctx, activeThemeKey, id, c.ttl).Err(); err != nil {
		slog.Warn("theme cache set error", "theme", id, "error", err)
	}
}

// Invalidate drops the cached id so the next read goes to the database.
func (c *ThemeCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, activeThemeKey).Err(); err != nil {
		slog.Warn("theme cache invalidate error", "error", err)
		return
	}
	slog.Debug("theme cache invalidated")
}
