package database

import (
	"context"
	"testing"
)

func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Other test packages may share the database, so nothing is cleared
	// first; Seed only fills in what is missing.
	ctx := context.Background()
	opts := SeedOptions{AdminEmail: "admin@vslsite.local", AdminPassword: "admin"}
	if err := Seed(ctx, db, opts); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(ctx, db, opts); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var userCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&userCount); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if userCount < 1 {
		t.Errorf("expected at least 1 user, got %d", userCount)
	}

	for key := range DefaultSettings {
		var n int
		if err := db.QueryRow("SELECT COUNT(*) FROM site_settings WHERE key = $1", key).Scan(&n); err != nil {
			t.Fatalf("count setting %s: %v", key, err)
		}
		if n != 1 {
			t.Errorf("setting %s: got %d rows, want 1", key, n)
		}
	}
}

func TestDefaultSettingsActiveTheme(t *testing.T) {
	if DefaultSettings["active_theme"] != "green" {
		t.Errorf("default active_theme: got %q, want green", DefaultSettings["active_theme"])
	}
}
