// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure. Theme and admin
// handlers run against in-memory fakes; auth tests need PostgreSQL and
// Valkey and are skipped when those are unavailable.
package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"vslsite/internal/database"
	"vslsite/internal/landing"
	"vslsite/internal/middleware"
	"vslsite/internal/models"
	"vslsite/internal/session"
	"vslsite/internal/sitetheme"
	"vslsite/internal/testutil"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "vslsite")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "vslsite")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "session:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

// themeEnv wires the theme handlers to in-memory stores.
type themeEnv struct {
	Settings *testutil.Settings
	Audit    *testutil.AuditLog
	Cache    *testutil.ThemeCache
	Prefs    *testutil.Preferences
	Service  *sitetheme.Service
	Public   *Public
	Admin    *Admin
}

func newThemeEnv(t *testing.T, initial map[string]string) *themeEnv {
	t.Helper()

	settings := testutil.NewSettings(initial)
	audit := &testutil.AuditLog{}
	cache := &testutil.ThemeCache{}
	prefs := &testutil.Preferences{}
	svc := sitetheme.NewService(settings, audit, cache)

	return &themeEnv{
		Settings: settings,
		Audit:    audit,
		Cache:    cache,
		Prefs:    prefs,
		Service:  svc,
		Public:   NewPublic(svc, landing.NewBuilder(settings, svc, time.UTC)),
		Admin:    NewAdmin(svc, settings, prefs),
	}
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// adminSession is a fully signed-in admin.
func adminSession() *session.Data {
	return testutil.NewSession(models.RoleAdmin, true)
}

// jsonRequest builds a request with a JSON body and optional session.
func jsonRequest(method, target, body string, sess *session.Data) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sess != nil {
		req = req.WithContext(ctxWithSession(req.Context(), sess))
	}
	return req
}

// decodeBody unmarshals a JSON response body.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return body
}
