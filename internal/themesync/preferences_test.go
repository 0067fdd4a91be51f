// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package themesync

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMemoryPreferences(t *testing.T) {
	var m MemoryPreferences
	if _, ok := m.PreferredTheme(); ok {
		t.Error("empty preferences should report no theme")
	}
	m.SetPreferredTheme("blue")
	if id, ok := m.PreferredTheme(); !ok || id != "blue" {
		t.Errorf("got %q, %v", id, ok)
	}
}

func TestFilePreferencesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "theme.yaml")
	p := NewFilePreferences(path)

	if _, ok := p.PreferredTheme(); ok {
		t.Error("missing file should report no theme")
	}

	if err := p.SetPreferredTheme("purple"); err != nil {
		t.Fatalf("SetPreferredTheme: %v", err)
	}

	// A fresh instance sees the value, as after a restart.
	if id, ok := NewFilePreferences(path).PreferredTheme(); !ok || id != "purple" {
		t.Errorf("after reopen: got %q, %v", id, ok)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "theme: purple") {
		t.Errorf("unexpected file contents:\n%s", data)
	}

	if err := p.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := p.PreferredTheme(); ok {
		t.Error("cleared preferences should report no theme")
	}
	if err := p.Clear(); err != nil {
		t.Errorf("Clear on missing file: %v", err)
	}
}

func TestFilePreferencesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("theme: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := NewFilePreferences(path).PreferredTheme(); ok {
		t.Error("corrupt file should report no theme")
	}
}
