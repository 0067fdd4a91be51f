// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package themesync

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// MemoryPreferences keeps the preference in process memory.
type MemoryPreferences struct {
	mu sync.Mutex
	id string
}

func (m *MemoryPreferences) PreferredTheme() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id, m.id != ""
}

func (m *MemoryPreferences) SetPreferredTheme(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.id = id
	return nil
}

// prefsFile is the on-disk layout of FilePreferences.
type prefsFile struct {
	Theme     string    `yaml:"theme"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// FilePreferences stores the preference in a small YAML file so it
// survives restarts.
type FilePreferences struct {
	path string
	mu   sync.Mutex
}

// NewFilePreferences returns preferences backed by path. The file is
// created on first write.
func NewFilePreferences(path string) *FilePreferences {
	return &FilePreferences{path: path}
}

// DefaultPreferencesPath is the per-user cache location.
func DefaultPreferencesPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "vslsite", "theme.yaml")
}

// PreferredTheme returns the stored theme. A missing or unreadable file
// counts as no preference.
func (f *FilePreferences) PreferredTheme() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", false
	}
	var p prefsFile
	if err := yaml.Unmarshal(data, &p); err != nil || p.Theme == "" {
		return "", false
	}
	return p.Theme, true
}

// SetPreferredTheme writes the file atomically.
func (f *FilePreferences) SetPreferredTheme(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := yaml.Marshal(prefsFile{Theme: id, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace preferences: %w", err)
	}
	return nil
}

// Clear removes the stored preference.
func (f *FilePreferences) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove preferences: %w", err)
	}
	return nil
}
