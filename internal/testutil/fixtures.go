// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package testutil provides fixtures and in-memory fakes shared by tests.
package testutil

import (
	"time"

	"github.com/google/uuid"

	"vslsite/internal/models"
	"vslsite/internal/session"
)

// NewAuditEntry returns a theme_changed entry with sensible defaults.
// Override individual fields with options.
func NewAuditEntry(opts ...func(*models.AuditLogEntry)) models.AuditLogEntry {
	e := models.AuditLogEntry{
		ID:        uuid.New(),
		UserID:    "user-1",
		Action:    models.AuditActionThemeChanged,
		Details:   models.ThemeChange{OldTheme: "green", NewTheme: "blue"},
		IPAddress: "192.0.2.10",
		UserAgent: "test-agent",
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// WithUser sets the acting user.
func WithUser(id string) func(*models.AuditLogEntry) {
	return func(e *models.AuditLogEntry) { e.UserID = id }
}

// WithChange sets the old and new theme.
func WithChange(oldTheme, newTheme string) func(*models.AuditLogEntry) {
	return func(e *models.AuditLogEntry) {
		e.Details = models.ThemeChange{OldTheme: oldTheme, NewTheme: newTheme}
	}
}

// WithCreatedAt sets the entry timestamp.
func WithCreatedAt(t time.Time) func(*models.AuditLogEntry) {
	return func(e *models.AuditLogEntry) { e.CreatedAt = t }
}

// NewSession returns session data for a signed-in operator.
func NewSession(role models.Role, twoFADone bool) *session.Data {
	return &session.Data{
		UserID:      uuid.New(),
		Email:       "operator@vslsite.local",
		DisplayName: "Operator",
		Role:        string(role),
		TwoFADone:   twoFADone,
		CreatedAt:   time.Now(),
	}
}
