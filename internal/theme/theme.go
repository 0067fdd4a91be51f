// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package theme holds the fixed catalog of color themes available to the
// public landing page. The catalog is built at program start and never
// changes; lookups are pure and never fail beyond "not found".
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultID is the theme applied when nothing valid has been chosen.
const DefaultID = "green"

// ErrInvalidTheme is returned when a theme id is not part of the catalog.
var ErrInvalidTheme = errors.New("invalid theme")

// Colors holds the RGB triplets ("r g b") used to render a theme. The
// triplet form lets stylesheets compose colors with an alpha channel.
type Colors struct {
	Primary         string `json:"primary"`
	PrimaryDark     string `json:"primaryDark"`
	PrimaryLight    string `json:"primaryLight"`
	Secondary       string `json:"secondary"`
	SecondaryDark   string `json:"secondaryDark"`
	BgPrimary       string `json:"bgPrimary"`
	BgSecondary     string `json:"bgSecondary"`
	BgTertiary      string `json:"bgTertiary"`
	BgAccent        string `json:"bgAccent"`
	TextPrimary     string `json:"textPrimary"`
	TextSecondary   string `json:"textSecondary"`
	TextMuted       string `json:"textMuted"`
	TextAccent      string `json:"textAccent"`
	BorderPrimary   string `json:"borderPrimary"`
	BorderSecondary string `json:"borderSecondary"`
	ShadowPrimary   string `json:"shadowPrimary"`
	GradientFrom    string `json:"gradientFrom"`
	GradientTo      string `json:"gradientTo"`
}

// Theme is an immutable catalog entry.
type Theme struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Colors      Colors `json:"colors"`
}

// Shared neutrals used by every theme.
const (
	gray300 = "209 213 219"
	gray400 = "156 163 175"
	gray500 = "107 114 128"
	gray600 = "75 85 99"
	gray800 = "31 41 55"
	gray900 = "17 24 39"
	black   = "0 0 0"
	white   = "255 255 255"
)

// palette builds the full color set from the three accent shades
// (400, 500 and 700) of a theme.
func palette(light, base, dark string) Colors {
	return Colors{
		Primary:         base,
		PrimaryDark:     dark,
		PrimaryLight:    light,
		Secondary:       gray400,
		SecondaryDark:   gray500,
		BgPrimary:       black,
		BgSecondary:     gray900,
		BgTertiary:      gray800,
		BgAccent:        base,
		TextPrimary:     white,
		TextSecondary:   gray300,
		TextMuted:       gray400,
		TextAccent:      base,
		BorderPrimary:   base,
		BorderSecondary: gray600,
		ShadowPrimary:   base,
		GradientFrom:    light,
		GradientTo:      dark,
	}
}

var catalog = []Theme{
	{ID: "green", Label: "Verde", Description: "Tema padrão com cores verdes vibrantes",
		Colors: palette("74 222 128", "34 197 94", "21 128 61")},
	{ID: "blue", Label: "Azul", Description: "Tema profissional com tons de azul",
		Colors: palette("96 165 250", "59 130 246", "29 78 216")},
	{ID: "purple", Label: "Roxo", Description: "Tema criativo com cores roxas",
		Colors: palette("168 85 247", "147 51 234", "109 40 217")},
	{ID: "red", Label: "Vermelho", Description: "Tema energético com tons vermelhos",
		Colors: palette("248 113 113", "239 68 68", "185 28 28")},
	{ID: "pink", Label: "Rosa", Description: "Tema moderno com cores rosas",
		Colors: palette("244 114 182", "236 72 153", "190 24 93")},
	{ID: "orange", Label: "Laranja", Description: "Tema caloroso com tons laranja",
		Colors: palette("251 146 60", "249 115 22", "194 65 12")},
	{ID: "cyan", Label: "Ciano", Description: "Tema fresco com cores ciano",
		Colors: palette("34 211 238", "6 182 212", "14 116 144")},
}

var byID = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, t := range catalog {
		m[t.ID] = i
	}
	return m
}()

// List returns every theme in catalog order. The returned slice is a copy.
func List() []Theme {
	out := make([]Theme, len(catalog))
	copy(out, catalog)
	return out
}

// IDs returns the theme ids in catalog order.
func IDs() []string {
	ids := make([]string, len(catalog))
	for i, t := range catalog {
		ids[i] = t.ID
	}
	return ids
}

// ByID looks up a theme. The boolean is false for unknown ids.
func ByID(id string) (Theme, bool) {
	i, ok := byID[id]
	if !ok {
		return Theme{}, false
	}
	return catalog[i], true
}

// IsValid reports whether id names a catalog theme.
func IsValid(id string) bool {
	_, ok := byID[id]
	return ok
}

// Validate returns an error wrapping ErrInvalidTheme for unknown ids.
func Validate(id string) error {
	if !IsValid(id) {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, id)
	}
	return nil
}

// Default returns the fallback theme.
func Default() Theme {
	t, _ := ByID(DefaultID)
	return t
}

// OrDefault returns id when it is valid and DefaultID otherwise.
func OrDefault(id string) string {
	if IsValid(id) {
		return id
	}
	return DefaultID
}

// CSS renders the theme as a :root block of custom properties, one per
// color slot, e.g. "--color-primary: 34 197 94;".
func (t Theme) CSS() string {
	c := t.Colors
	vars := []struct{ name, value string }{
		{"primary", c.Primary},
		{"primary-dark", c.PrimaryDark},
		{"primary-light", c.PrimaryLight},
		{"secondary", c.Secondary},
		{"secondary-dark", c.SecondaryDark},
		{"bg-primary", c.BgPrimary},
		{"bg-secondary", c.BgSecondary},
		{"bg-tertiary", c.BgTertiary},
		{"bg-accent", c.BgAccent},
		{"text-primary", c.TextPrimary},
		{"text-secondary", c.TextSecondary},
		{"text-muted", c.TextMuted},
		{"text-accent", c.TextAccent},
		{"border-primary", c.BorderPrimary},
		{"border-secondary", c.BorderSecondary},
		{"shadow-primary", c.ShadowPrimary},
		{"gradient-from", c.GradientFrom},
		{"gradient-to", c.GradientTo},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "/* theme: %s */\n:root {\n", t.ID)
	for _, v := range vars {
		fmt.Fprintf(&b, "  --color-%s: %s;\n", v.name, v.value)
	}
	b.WriteString("}\n")
	return b.String()
}
