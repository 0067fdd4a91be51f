// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"vslsite/internal/models"
)

// PreferencesStore persists per-operator dashboard preferences.
type PreferencesStore struct {
	db *sql.DB
}

// NewPreferencesStore creates a new PreferencesStore.
func NewPreferencesStore(db *sql.DB) *PreferencesStore {
	return &PreferencesStore{db: db}
}

// Get returns the preferences for a user, or nil if none were saved.
func (s *PreferencesStore) Get(ctx context.Context, userID uuid.UUID) (*models.UserPreferences, error) {
	p := &models.UserPreferences{UserID: userID}
	var theme sql.NullString
	var lastLogin sql.NullTime
	err := s.db.QueryRowContext(ctx, `
		SELECT preferred_theme, email_notifications, last_login_at, updated_at
		FROM user_preferences WHERE user_id = $1
	`, userID).Scan(&theme, &p.EmailNotifications, &lastLogin, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user preferences: %w", err)
	}
	p.PreferredTheme = theme.String
	if lastLogin.Valid {
		t := lastLogin.Time
		p.LastLoginAt = &t
	}
	return p, nil
}

// Save upserts the preferences for p.UserID and returns the stored row.
func (s *PreferencesStore) Save(ctx context.Context, p *models.UserPreferences) (*models.UserPreferences, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_preferences (user_id, preferred_theme, email_notifications, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET preferred_theme = EXCLUDED.preferred_theme,
		              email_notifications = EXCLUDED.email_notifications,
		              updated_at = EXCLUDED.updated_at
	`, p.UserID, nullable(p.PreferredTheme), p.EmailNotifications)
	if err != nil {
		return nil, fmt.Errorf("save user preferences: %w", err)
	}
	return s.Get(ctx, p.UserID)
}

// TouchLogin records a successful sign-in, creating the row if needed.
func (s *PreferencesStore) TouchLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_preferences (user_id, last_login_at, updated_at)
		VALUES ($1, NOW(), NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET last_login_at = EXCLUDED.last_login_at
	`, userID)
	if err != nil {
		return fmt.Errorf("touch login: %w", err)
	}
	return nil
}
