package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"vslsite/internal/models"
	"vslsite/internal/theme"
)

// SeedOptions controls the development admin account.
type SeedOptions struct {
	AdminEmail    string
	AdminPassword string
}

// DefaultSettings are written on first start when the keys are missing.
var DefaultSettings = map[string]string{
	models.SettingActiveTheme:     theme.DefaultID,
	models.SettingSiteTitle:       "Marketing Mastery - 1K por dia",
	models.SettingSiteDescription: "Aprenda a criar e vender produtos digitais low ticket",
	models.SettingVSLURL:          "https://vimeo.com/1078670896/0dc58ff6ce",
	models.SettingVSLPlatform:     "vimeo",
	models.SettingVSLAspectRatio:  "16:9",
}

// Seed populates the database with initial data. Missing site settings are
// filled in from DefaultSettings, and a default admin user is created if no
// users exist. The admin must set up 2FA on first login.
func Seed(ctx context.Context, db *sql.DB, opts SeedOptions) error {
	for key, value := range DefaultSettings {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO site_settings (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO NOTHING`, key, value); err != nil {
			return fmt.Errorf("seed setting %s: %w", key, err)
		}
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping admin user")
		return nil
	}

	if opts.AdminEmail == "" || opts.AdminPassword == "" {
		return fmt.Errorf("seed: admin email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO users (email, password_hash, display_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
	`, opts.AdminEmail, string(hash), "Admin", models.RoleAdmin, false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with default admin user", "email", opts.AdminEmail)
	return nil
}
