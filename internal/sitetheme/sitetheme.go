// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sitetheme owns the site-wide active theme: the admin write path
// (validate, persist, audit), the public read path (database, then the
// last known value from the cache, then the default), and the audit statistics shown on the dashboard.
package sitetheme

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"vslsite/internal/models"
	"vslsite/internal/theme"
)

// ErrPersistence is returned when the new theme could not be stored.
var ErrPersistence = errors.New("persistence failure")

// unknownTheme is recorded as the previous theme when it could not be read.
const unknownTheme = "unknown"

var (
	themeChangesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "theme_changes_total",
			Help: "Successful site theme changes, by new theme.",
		},
		[]string{"theme"},
	)
	auditFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_log_failures_total",
			Help: "Audit log appends that failed and were dropped.",
		},
	)
)

func init() {
	prometheus.MustRegister(themeChangesTotal, auditFailuresTotal)
}

// Settings reads and writes site configuration values.
// *store.SiteSettingStore satisfies it.
type Settings interface {
	Lookup(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// AuditLog is the append-only record of theme changes plus the queries
// behind the stats endpoint. *store.AuditLogStore satisfies it.
type AuditLog interface {
	Append(ctx context.Context, e *models.AuditLogEntry) error
	Recent(ctx context.Context, limit int) ([]models.AuditLogEntry, error)
	Summary(ctx context.Context, action string) (models.AuditSummary, error)
	ThemeUsageSince(ctx context.Context, since time.Time) ([]models.ThemeUsage, error)
}

// Cache holds the last active theme id read from or written to the store.
// It is a fallback for store outages, never a source of truth. Implementations
// swallow their own errors; a miss is reported as ok=false.
// *cache.ThemeCache satisfies it.
type Cache interface {
	Active(ctx context.Context) (string, bool)
	SetActive(ctx context.Context, id string)
}

// Actor identifies who is changing the theme and from where.
type Actor struct {
	UserID    string
	IPAddress string
	UserAgent string
}

// Service coordinates the settings store, the audit log, and the cache.
type Service struct {
	settings Settings
	audit    AuditLog
	cache    Cache
	now      func() time.Time
}

// NewService creates a Service. cache may be nil.
func NewService(settings Settings, audit AuditLog, cache Cache) *Service {
	return &Service{
		settings: settings,
		audit:    audit,
		cache:    cache,
		now:      time.Now,
	}
}

// ActiveTheme returns the theme visitors should see: the stored setting,
// or theme.DefaultID when it is absent or not in the catalog. The cache is
// only consulted when the store cannot be read, so a reachable store always
// decides. Each successful read refreshes the cache.
//
// When the store fails and the cache has nothing valid, it returns
// theme.DefaultID together with the error so callers can still render.
func (s *Service) ActiveTheme(ctx context.Context) (string, error) {
	value, ok, err := s.settings.Lookup(ctx, models.SettingActiveTheme)
	if err != nil {
		if s.cache != nil {
			if cached, hit := s.cache.Active(ctx); hit && theme.IsValid(cached) {
				slog.Warn("read active theme failed, serving cached theme", "error", err, "theme", cached)
				return cached, nil
			}
		}
		return theme.DefaultID, fmt.Errorf("read active theme: %w", err)
	}

	id := theme.DefaultID
	if ok {
		id = theme.OrDefault(value)
		if id != value {
			slog.Warn("stored theme is not in the catalog, using default", "stored", value, "default", id)
		}
	}
	if s.cache != nil {
		s.cache.SetActive(ctx, id)
	}
	return id, nil
}

// SetTheme validates id, persists it as the active theme, and records
// one audit entry. Invalid ids return theme.ErrInvalidTheme and change
// nothing. A storage failure returns an error wrapping ErrPersistence and
// writes no audit entry. Audit failures are logged and dropped.
//
// Concurrent calls are last-write-wins; each successful call is audited.
func (s *Service) SetTheme(ctx context.Context, id string, actor Actor) error {
	if err := theme.Validate(id); err != nil {
		return err
	}

	old := s.previousTheme(ctx)

	if err := s.settings.Set(ctx, models.SettingActiveTheme, id); err != nil {
		return fmt.Errorf("%w: save active theme: %w", ErrPersistence, err)
	}

	if s.cache != nil {
		s.cache.SetActive(ctx, id)
	}
	themeChangesTotal.WithLabelValues(id).Inc()

	entry := &models.AuditLogEntry{
		UserID:    actor.UserID,
		Action:    models.AuditActionThemeChanged,
		Details:   models.ThemeChange{OldTheme: old, NewTheme: id},
		IPAddress: actor.IPAddress,
		UserAgent: actor.UserAgent,
		CreatedAt: s.now(),
	}
	if err := s.audit.Append(ctx, entry); err != nil {
		auditFailuresTotal.Inc()
		slog.Warn("audit log append failed", "error", err, "user", actor.UserID, "theme", id)
	}

	slog.Info("site theme changed", "user", actor.UserID, "old", old, "new", id)
	return nil
}

// previousTheme reads the stored theme for the audit record. Absent means
// the default was in effect; a read error yields "unknown".
func (s *Service) previousTheme(ctx context.Context) string {
	value, ok, err := s.settings.Lookup(ctx, models.SettingActiveTheme)
	switch {
	case err != nil:
		slog.Warn("read previous theme failed", "error", err)
		return unknownTheme
	case !ok:
		return theme.DefaultID
	default:
		return value
	}
}
