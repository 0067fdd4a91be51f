// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"vslsite/internal/models"
)

func TestCurrentTheme(t *testing.T) {
	env := newThemeEnv(t, map[string]string{models.SettingActiveTheme: "blue"})

	rec := httptest.NewRecorder()
	env.Public.CurrentTheme(rec, httptest.NewRequest(http.MethodGet, "/api/themes/current", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != true || body["theme"] != "blue" {
		t.Errorf("body: got %v", body)
	}
}

func TestCurrentThemeDefaults(t *testing.T) {
	for name, initial := range map[string]map[string]string{
		"absent":  nil,
		"invalid": {models.SettingActiveTheme: "magenta"},
	} {
		t.Run(name, func(t *testing.T) {
			env := newThemeEnv(t, initial)
			rec := httptest.NewRecorder()
			env.Public.CurrentTheme(rec, httptest.NewRequest(http.MethodGet, "/api/themes/current", nil))

			body := decodeBody(t, rec)
			if rec.Code != http.StatusOK || body["theme"] != "green" {
				t.Errorf("got %d %v, want 200 green", rec.Code, body)
			}
		})
	}
}

func TestCurrentThemeReadFailure(t *testing.T) {
	env := newThemeEnv(t, map[string]string{models.SettingActiveTheme: "blue"})
	env.Settings.FailRead = true

	rec := httptest.NewRecorder()
	env.Public.CurrentTheme(rec, httptest.NewRequest(http.MethodGet, "/api/themes/current", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != false || body["theme"] != "green" || body["error"] == "" {
		t.Errorf("body: got %v", body)
	}
}

func TestCurrentThemeServedFromCacheWhenStoreFails(t *testing.T) {
	env := newThemeEnv(t, map[string]string{models.SettingActiveTheme: "red"})

	// Warm the cache, then break the store.
	rec := httptest.NewRecorder()
	env.Public.CurrentTheme(rec, httptest.NewRequest(http.MethodGet, "/api/themes/current", nil))
	env.Settings.FailRead = true

	rec = httptest.NewRecorder()
	env.Public.CurrentTheme(rec, httptest.NewRequest(http.MethodGet, "/api/themes/current", nil))
	body := decodeBody(t, rec)
	if rec.Code != http.StatusOK || body["theme"] != "red" {
		t.Errorf("got %d %v, want 200 red", rec.Code, body)
	}
}

func TestListThemes(t *testing.T) {
	env := newThemeEnv(t, nil)
	rec := httptest.NewRecorder()
	env.Public.ListThemes(rec, httptest.NewRequest(http.MethodGet, "/api/themes", nil))

	body := decodeBody(t, rec)
	themes, ok := body["themes"].([]any)
	if !ok || len(themes) != 7 {
		t.Fatalf("themes: got %v", body["themes"])
	}
	first := themes[0].(map[string]any)
	if first["id"] != "green" || first["label"] != "Verde" {
		t.Errorf("first theme: got %v", first)
	}
	colors := first["colors"].(map[string]any)
	if colors["primary"] != "34 197 94" {
		t.Errorf("green primary: got %v", colors["primary"])
	}
	if body["defaultTheme"] != "green" {
		t.Errorf("defaultTheme: got %v", body["defaultTheme"])
	}
}

func TestThemeCSS(t *testing.T) {
	env := newThemeEnv(t, nil)
	r := chi.NewRouter()
	r.Get("/themes/{id}.css", env.Public.ThemeCSS)

	t.Run("known theme", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/themes/cyan.css", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
			t.Errorf("Content-Type: got %q", ct)
		}
		if !strings.Contains(rec.Body.String(), "--color-primary: 6 182 212;") {
			t.Errorf("body: %s", rec.Body.String())
		}
	})

	t.Run("unknown theme", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/themes/magenta.css", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("status: got %d, want 404", rec.Code)
		}
	})
}

func TestLanding(t *testing.T) {
	env := newThemeEnv(t, map[string]string{
		models.SettingActiveTheme: "pink",
		models.SettingSiteTitle:   "1K POR DIA",
	})

	rec := httptest.NewRecorder()
	env.Public.Landing(rec, httptest.NewRequest(http.MethodGet, "/api/landing", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	page := decodeBody(t, rec)["page"].(map[string]any)
	if page["title"] != "1K POR DIA" || page["theme"] != "pink" {
		t.Errorf("page: got %v", page)
	}
	if _, ok := page["countdown"].(map[string]any); !ok {
		t.Error("countdown missing")
	}
	if faqs, ok := page["faqs"].([]any); !ok || len(faqs) == 0 {
		t.Error("faqs missing")
	}
}

func TestLandingFailure(t *testing.T) {
	env := newThemeEnv(t, nil)
	env.Settings.FailRead = true

	rec := httptest.NewRecorder()
	env.Public.Landing(rec, httptest.NewRequest(http.MethodGet, "/api/landing", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
}
