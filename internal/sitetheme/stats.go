// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sitetheme

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"vslsite/internal/models"
)

const (
	// RecentLimit caps the recent activity list.
	RecentLimit = 10

	// UsageWindow is how far back theme usage is counted.
	UsageWindow = 30 * 24 * time.Hour
)

// Stats is the dashboard view of the audit log.
type Stats struct {
	TotalThemeChanges int                    `json:"totalThemeChanges"`
	UniqueUsers       int                    `json:"uniqueUsers"`
	LastActivity      *time.Time             `json:"lastActivity"`
	RecentLogs        []models.AuditLogEntry `json:"recentLogs"`
	ThemeUsage        []models.ThemeUsage    `json:"themeUsage"`
}

// Stats runs the three audit queries concurrently. Any failure fails the
// whole call. Slices are never nil so they encode as [].
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	var (
		summary models.AuditSummary
		recent  []models.AuditLogEntry
		usage   []models.ThemeUsage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.audit.Summary(gctx, models.AuditActionThemeChanged)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.audit.Recent(gctx, RecentLimit)
		return err
	})
	g.Go(func() error {
		var err error
		usage, err = s.audit.ThemeUsageSince(gctx, s.now().Add(-UsageWindow))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load theme stats: %w", err)
	}

	if recent == nil {
		recent = []models.AuditLogEntry{}
	}
	if usage == nil {
		usage = []models.ThemeUsage{}
	}

	return &Stats{
		TotalThemeChanges: summary.TotalThemeChanges,
		UniqueUsers:       summary.UniqueUsers,
		LastActivity:      summary.LastActivity,
		RecentLogs:        recent,
		ThemeUsage:        usage,
	}, nil
}
