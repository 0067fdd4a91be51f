// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// audit_log.go records administrative actions in an append-only table.
// Entries are never updated or deleted; the store only exposes inserts
// and the read queries behind the admin dashboard.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"vslsite/internal/models"
)

// AuditLogStore handles audit log operations.
type AuditLogStore struct {
	db *sql.DB
}

// NewAuditLogStore creates a new AuditLogStore.
func NewAuditLogStore(db *sql.DB) *AuditLogStore {
	return &AuditLogStore{db: db}
}

// Append inserts one entry. A missing ID or timestamp is filled in and
// written back to e.
func (s *AuditLogStore) Append(ctx context.Context, e *models.AuditLogEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	details, err := json.Marshal(e.Details)
	if err != nil {
		return fmt.Errorf("marshal audit details: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO audit_logs (id, user_id, action, details, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, e.ID, e.UserID, e.Action, details, nullable(e.IPAddress), nullable(e.UserAgent), e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// Recent returns the newest entries first, at most limit of them.
func (s *AuditLogStore) Recent(ctx context.Context, limit int) ([]models.AuditLogEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, action, details, COALESCE(ip_address, ''), COALESCE(user_agent, ''), created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditLogEntry
	for rows.Next() {
		var e models.AuditLogEntry
		var details []byte
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &details, &e.IPAddress, &e.UserAgent, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &e.Details); err != nil {
				return nil, fmt.Errorf("decode audit details %s: %w", e.ID, err)
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Summary counts every entry for action along with its distinct actors
// and the most recent timestamp.
func (s *AuditLogStore) Summary(ctx context.Context, action string) (models.AuditSummary, error) {
	var sum models.AuditSummary
	var last sql.NullTime
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(DISTINCT user_id), MAX(created_at)
		FROM audit_logs
		WHERE action = $1
	`, action).Scan(&sum.TotalThemeChanges, &sum.UniqueUsers, &last)
	if err != nil {
		return sum, fmt.Errorf("summarize audit log: %w", err)
	}
	if last.Valid {
		t := last.Time
		sum.LastActivity = &t
	}
	return sum, nil
}

// ThemeUsageSince groups theme_changed entries created at or after since
// by the new theme, most used first.
func (s *AuditLogStore) ThemeUsageSince(ctx context.Context, since time.Time) ([]models.ThemeUsage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT details->>'newTheme' AS theme, COUNT(*), MAX(created_at)
		FROM audit_logs
		WHERE action = $1 AND created_at >= $2
		GROUP BY theme
		ORDER BY COUNT(*) DESC, theme ASC
	`, models.AuditActionThemeChanged, since)
	if err != nil {
		return nil, fmt.Errorf("query theme usage: %w", err)
	}
	defer rows.Close()

	var usage []models.ThemeUsage
	for rows.Next() {
		var u models.ThemeUsage
		var name sql.NullString
		if err := rows.Scan(&name, &u.Count, &u.LastUsed); err != nil {
			return nil, fmt.Errorf("scan theme usage: %w", err)
		}
		u.Theme = name.String
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
