// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vslsite/internal/landing"
	"vslsite/internal/theme"
)

// ThemeReader resolves the active site theme. On failure it still returns
// a usable id along with the error. *sitetheme.Service satisfies it.
type ThemeReader interface {
	ActiveTheme(ctx context.Context) (string, error)
}

// PageBuilder assembles the landing page payload. *landing.Builder
// satisfies it.
type PageBuilder interface {
	Build(ctx context.Context) (*landing.Page, error)
}

// Public groups the anonymous endpoints the landing page calls.
type Public struct {
	themes ThemeReader
	pages  PageBuilder
}

// NewPublic creates a new Public handler group.
func NewPublic(themes ThemeReader, pages PageBuilder) *Public {
	return &Public{themes: themes, pages: pages}
}

// CurrentTheme answers GET /api/themes/current. On a read failure it still
// names the default theme so the page can render.
func (p *Public) CurrentTheme(w http.ResponseWriter, r *http.Request) {
	id, err := p.themes.ActiveTheme(r.Context())
	if err != nil {
		slog.Error("fetch active theme failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Failed to fetch theme",
			"theme":   theme.DefaultID,
		})
		return
	}

	w.Header().Set("Cache-Control", "no-cache")
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "theme": id})
}

// ListThemes answers GET /api/themes with the full catalog.
func (p *Public) ListThemes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"defaultTheme": theme.DefaultID,
		"themes":       theme.List(),
	})
}

// ThemeCSS answers GET /themes/{id}.css with the theme's custom properties.
func (p *Public) ThemeCSS(w http.ResponseWriter, r *http.Request) {
	t, found := theme.ByID(chi.URLParam(r, "id"))
	if !found {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write([]byte(t.CSS()))
}

// Landing answers GET /api/landing.
func (p *Public) Landing(w http.ResponseWriter, r *http.Request) {
	page, err := p.pages.Build(r.Context())
	if err != nil {
		slog.Error("build landing page failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load page")
		return
	}
	w.Header().Set("Cache-Control", "no-cache")
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "page": page})
}
