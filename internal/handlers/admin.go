// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"vslsite/internal/middleware"
	"vslsite/internal/models"
	"vslsite/internal/session"
	"vslsite/internal/sitetheme"
	"vslsite/internal/theme"
)

// ThemeAdmin changes the site theme and reports on past changes.
// *sitetheme.Service satisfies it.
type ThemeAdmin interface {
	SetTheme(ctx context.Context, id string, actor sitetheme.Actor) error
	Stats(ctx context.Context) (*sitetheme.Stats, error)
}

// SettingsStore reads and bulk-writes site settings.
// *store.SiteSettingStore satisfies it.
type SettingsStore interface {
	All(ctx context.Context) (models.SiteSettings, error)
	SetMany(ctx context.Context, settings map[string]string) error
}

// PreferencesStore loads and saves per-operator preferences.
// *store.PreferencesStore satisfies it.
type PreferencesStore interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserPreferences, error)
	Save(ctx context.Context, p *models.UserPreferences) (*models.UserPreferences, error)
}

// Admin groups the authenticated admin API handlers.
type Admin struct {
	themes   ThemeAdmin
	settings SettingsStore
	prefs    PreferencesStore
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(themes ThemeAdmin, settings SettingsStore, prefs PreferencesStore) *Admin {
	return &Admin{themes: themes, settings: settings, prefs: prefs}
}

// SetTheme answers POST /api/admin/themes with body {"theme": "<id>"}.
func (a *Admin) SetTheme(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Theme string `json:"theme"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Theme == "" {
		writeError(w, http.StatusBadRequest, "Theme is required")
		return
	}

	actor := sitetheme.Actor{
		UserID:    sess.UserID.String(),
		IPAddress: middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
	}
	err := a.themes.SetTheme(r.Context(), req.Theme, actor)
	switch {
	case errors.Is(err, theme.ErrInvalidTheme):
		writeError(w, http.StatusBadRequest, "Invalid theme")
		return
	case err != nil:
		slog.Error("set theme failed", "error", err, "theme", req.Theme, "user", actor.UserID)
		writeError(w, http.StatusInternalServerError, "Failed to save theme")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Theme updated successfully",
		"theme":   req.Theme,
	})
}

// Stats answers GET /api/admin/stats.
func (a *Admin) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.themes.Stats(r.Context())
	if err != nil {
		slog.Error("load stats failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load stats")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "stats": stats})
}

// Settings answers GET /api/admin/settings.
func (a *Admin) Settings(w http.ResponseWriter, r *http.Request) {
	settings, err := a.settings.All(r.Context())
	if err != nil {
		slog.Error("load settings failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "settings": settings})
}

// UpdateSettings answers PUT /api/admin/settings with a partial map of
// landing page settings. The active theme is not editable here.
func (a *Admin) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateSettings(req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.settings.SetMany(r.Context(), req); err != nil {
		slog.Error("save settings failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		slog.Info("site settings updated", "keys", len(req), "user", sess.Email)
	}
	a.Settings(w, r)
}

// Preferences answers GET /api/admin/preferences. Operators who never
// saved anything get the defaults.
func (a *Admin) Preferences(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	prefs, err := a.prefs.Get(r.Context(), sess.UserID)
	if err != nil {
		slog.Error("load preferences failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load preferences")
		return
	}
	if prefs == nil {
		prefs = defaultPreferences(sess.UserID)
	}
	if prefs.PreferredTheme == "" {
		prefs.PreferredTheme = theme.DefaultID
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "preferences": prefs})
}

// UpdatePreferences answers PUT /api/admin/preferences. Omitted fields
// keep their current value.
func (a *Admin) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req struct {
		PreferredTheme     *string `json:"preferredTheme"`
		EmailNotifications *bool   `json:"emailNotifications"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.PreferredTheme != nil && !theme.IsValid(*req.PreferredTheme) {
		writeError(w, http.StatusBadRequest, "Invalid theme")
		return
	}

	current, err := a.prefs.Get(r.Context(), sess.UserID)
	if err != nil {
		slog.Error("load preferences failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load preferences")
		return
	}
	if current == nil {
		current = defaultPreferences(sess.UserID)
	}
	if req.PreferredTheme != nil {
		current.PreferredTheme = *req.PreferredTheme
	}
	if req.EmailNotifications != nil {
		current.EmailNotifications = *req.EmailNotifications
	}

	saved, err := a.prefs.Save(r.Context(), current)
	if err != nil {
		slog.Error("save preferences failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save preferences")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "preferences": saved})
}

// requireSession returns the fully authenticated session or answers 401.
// The router already guards these routes; this keeps handlers safe when
// mounted elsewhere.
func requireSession(w http.ResponseWriter, r *http.Request) (*session.Data, bool) {
	sess := middleware.SessionFromCtx(r.Context())
	if !sess.Authenticated() {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return sess, true
}

func defaultPreferences(userID uuid.UUID) *models.UserPreferences {
	return &models.UserPreferences{
		UserID:             userID,
		PreferredTheme:     theme.DefaultID,
		EmailNotifications: true,
	}
}
