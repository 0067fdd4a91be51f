// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditActionThemeChanged is recorded every time an operator switches the
// site theme.
const AuditActionThemeChanged = "theme_changed"

// ThemeChange is the details payload of a theme_changed audit entry.
// OldTheme is "unknown" when the previous value could not be read.
type ThemeChange struct {
	OldTheme string `json:"oldTheme"`
	NewTheme string `json:"newTheme"`
}

// AuditLogEntry is one append-only record of an administrative action.
type AuditLogEntry struct {
	ID        uuid.UUID   `json:"id"`
	UserID    string      `json:"userId"`
	Action    string      `json:"action"`
	Details   ThemeChange `json:"details"`
	IPAddress string      `json:"ipAddress,omitempty"`
	UserAgent string      `json:"userAgent,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ThemeUsage is the number of times a theme was selected in a window.
type ThemeUsage struct {
	Theme    string    `json:"theme"`
	Count    int       `json:"count"`
	LastUsed time.Time `json:"lastUsed"`
}

// AuditSummary aggregates theme_changed entries across the whole log.
// LastActivity is nil when nothing has been recorded yet.
type AuditSummary struct {
	TotalThemeChanges int        `json:"totalThemeChanges"`
	UniqueUsers       int        `json:"uniqueUsers"`
	LastActivity      *time.Time `json:"lastActivity"`
}
