// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"errors"
	"strings"
	"testing"
)

func TestListOrder(t *testing.T) {
	want := []string{"green", "blue", "purple", "red", "pink", "orange", "cyan"}
	got := IDs()
	if len(got) != len(want) {
		t.Fatalf("IDs: got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IDs[%d]: got %q, want %q", i, got[i], want[i])
		}
	}

	themes := List()
	for i, th := range themes {
		if th.ID != want[i] {
			t.Errorf("List[%d]: got %q, want %q", i, th.ID, want[i])
		}
		if th.Label == "" || th.Description == "" {
			t.Errorf("theme %q is missing display metadata", th.ID)
		}
	}
}

func TestListReturnsCopy(t *testing.T) {
	themes := List()
	themes[0].ID = "mutated"
	themes[0].Colors.Primary = "1 2 3"

	if List()[0].ID != "green" {
		t.Error("mutating List() result changed the catalog")
	}
	if th, _ := ByID("green"); th.Colors.Primary != "34 197 94" {
		t.Errorf("green primary: got %q", th.Colors.Primary)
	}
}

func TestByID(t *testing.T) {
	th, ok := ByID("purple")
	if !ok {
		t.Fatal("expected purple to exist")
	}
	if th.Label != "Roxo" {
		t.Errorf("Label: got %q, want %q", th.Label, "Roxo")
	}
	if th.Colors.PrimaryLight != "168 85 247" || th.Colors.GradientTo != "109 40 217" {
		t.Errorf("unexpected purple colors: %+v", th.Colors)
	}

	missing, ok := ByID("not-a-real-theme")
	if ok {
		t.Error("expected unknown id to be reported missing")
	}
	if missing != (Theme{}) {
		t.Errorf("expected zero Theme, got %+v", missing)
	}
}

func TestValidate(t *testing.T) {
	for _, id := range IDs() {
		if err := Validate(id); err != nil {
			t.Errorf("Validate(%q): unexpected error %v", id, err)
		}
	}

	for _, id := range []string{"", "Green", "not-a-real-theme", " blue"} {
		err := Validate(id)
		if !errors.Is(err, ErrInvalidTheme) {
			t.Errorf("Validate(%q): got %v, want ErrInvalidTheme", id, err)
		}
	}
}

func TestDefault(t *testing.T) {
	if Default().ID != "green" {
		t.Errorf("Default: got %q, want green", Default().ID)
	}
	if OrDefault("cyan") != "cyan" {
		t.Error("OrDefault should keep valid ids")
	}
	if OrDefault("magenta") != DefaultID {
		t.Error("OrDefault should fall back for unknown ids")
	}
}

func TestCSS(t *testing.T) {
	th, _ := ByID("red")
	css := th.CSS()

	for _, want := range []string{
		":root {",
		"--color-primary: 239 68 68;",
		"--color-primary-dark: 185 28 28;",
		"--color-bg-primary: 0 0 0;",
		"--color-gradient-from: 248 113 113;",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("CSS missing %q:\n%s", want, css)
		}
	}
	if n := strings.Count(css, "--color-"); n != 18 {
		t.Errorf("expected 18 custom properties, got %d", n)
	}
}
