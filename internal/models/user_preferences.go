// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// UserPreferences holds per-operator dashboard preferences.
// PreferredTheme is empty when the operator never picked one.
type UserPreferences struct {
	UserID             uuid.UUID  `json:"userId"`
	PreferredTheme     string     `json:"preferredTheme"`
	EmailNotifications bool       `json:"emailNotifications"`
	LastLoginAt        *time.Time `json:"lastLoginAt,omitempty"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}
