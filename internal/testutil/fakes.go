// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"vslsite/internal/models"
)

// ErrInjected is the failure returned by fakes configured to fail.
var ErrInjected = errors.New("injected failure")

// Settings is an in-memory site settings store.
type Settings struct {
	mu       sync.Mutex
	values   map[string]string
	FailRead bool
	FailSave bool
	Writes   int
}

// NewSettings returns a Settings seeded with the given values.
func NewSettings(initial map[string]string) *Settings {
	s := &Settings{values: make(map[string]string)}
	for k, v := range initial {
		s.values[k] = v
	}
	return s
}

func (s *Settings) Lookup(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailRead {
		return "", false, ErrInjected
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *Settings) Get(ctx context.Context, key, fallback string) (string, error) {
	v, ok, err := s.Lookup(ctx, key)
	if err != nil || !ok {
		return fallback, err
	}
	return v, nil
}

func (s *Settings) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSave {
		return ErrInjected
	}
	s.values[key] = value
	s.Writes++
	return nil
}

func (s *Settings) SetMany(ctx context.Context, values map[string]string) error {
	s.mu.Lock()
	fail := s.FailSave
	s.mu.Unlock()
	if fail {
		return ErrInjected
	}
	for k, v := range values {
		if err := s.Set(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *Settings) All(_ context.Context) (models.SiteSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailRead {
		return nil, ErrInjected
	}
	out := make(models.SiteSettings, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out, nil
}

// Value returns the stored value for key, bypassing failure flags.
func (s *Settings) Value(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// AuditLog is an in-memory append-only audit log.
type AuditLog struct {
	mu          sync.Mutex
	entries     []models.AuditLogEntry
	FailAppend  bool
	FailQueries bool
}

func (a *AuditLog) Append(_ context.Context, e *models.AuditLogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.FailAppend {
		return ErrInjected
	}
	a.entries = append(a.entries, *e)
	return nil
}

func (a *AuditLog) Recent(_ context.Context, limit int) ([]models.AuditLogEntry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.FailQueries {
		return nil, ErrInjected
	}
	sorted := make([]models.AuditLogEntry, len(a.entries))
	copy(sorted, a.entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (a *AuditLog) Summary(_ context.Context, action string) (models.AuditSummary, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	var sum models.AuditSummary
	if a.FailQueries {
		return sum, ErrInjected
	}
	users := make(map[string]struct{})
	for _, e := range a.entries {
		if e.Action != action {
			continue
		}
		sum.TotalThemeChanges++
		users[e.UserID] = struct{}{}
		if sum.LastActivity == nil || e.CreatedAt.After(*sum.LastActivity) {
			t := e.CreatedAt
			sum.LastActivity = &t
		}
	}
	sum.UniqueUsers = len(users)
	return sum, nil
}

func (a *AuditLog) ThemeUsageSince(_ context.Context, since time.Time) ([]models.ThemeUsage, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.FailQueries {
		return nil, ErrInjected
	}
	byTheme := make(map[string]*models.ThemeUsage)
	for _, e := range a.entries {
		if e.Action != models.AuditActionThemeChanged || e.CreatedAt.Before(since) {
			continue
		}
		u, ok := byTheme[e.Details.NewTheme]
		if !ok {
			u = &models.ThemeUsage{Theme: e.Details.NewTheme}
			byTheme[e.Details.NewTheme] = u
		}
		u.Count++
		if e.CreatedAt.After(u.LastUsed) {
			u.LastUsed = e.CreatedAt
		}
	}
	out := make([]models.ThemeUsage, 0, len(byTheme))
	for _, u := range byTheme {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Theme < out[j].Theme
	})
	return out, nil
}

// Entries returns a copy of everything appended so far, oldest first.
func (a *AuditLog) Entries() []models.AuditLogEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.AuditLogEntry, len(a.entries))
	copy(out, a.entries)
	return out
}

// ThemeCache is an in-memory active-theme cache.
type ThemeCache struct {
	mu sync.Mutex
	id string
}

func (c *ThemeCache) Active(context.Context) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id, c.id != ""
}

func (c *ThemeCache) SetActive(_ context.Context, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.id = id
}

func (c *ThemeCache) Invalidate(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.id = ""
}

// Preferences is an in-memory per-user preferences store.
type Preferences struct {
	mu       sync.Mutex
	byUser   map[uuid.UUID]models.UserPreferences
	FailRead bool
	FailSave bool
}

func (p *Preferences) Get(_ context.Context, userID uuid.UUID) (*models.UserPreferences, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.FailRead {
		return nil, ErrInjected
	}
	prefs, ok := p.byUser[userID]
	if !ok {
		return nil, nil
	}
	return &prefs, nil
}

func (p *Preferences) Save(_ context.Context, prefs *models.UserPreferences) (*models.UserPreferences, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.FailSave {
		return nil, ErrInjected
	}
	if p.byUser == nil {
		p.byUser = make(map[uuid.UUID]models.UserPreferences)
	}
	saved := *prefs
	saved.UpdatedAt = time.Now()
	p.byUser[prefs.UserID] = saved
	return &saved, nil
}

func (p *Preferences) TouchLogin(_ context.Context, userID uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.byUser == nil {
		p.byUser = make(map[uuid.UUID]models.UserPreferences)
	}
	prefs := p.byUser[userID]
	prefs.UserID = userID
	now := time.Now()
	prefs.LastLoginAt = &now
	p.byUser[userID] = prefs
	return nil
}
