// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"testing"
)

func TestValidateSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]string
		wantErr  string
	}{
		{"valid update", map[string]string{
			"site_title":       "1K POR DIA",
			"vsl_url":          "https://player.vimeo.com/video/1",
			"vsl_thumbnail":    "/img/thumb.jpg",
			"vsl_platform":     "vturb",
			"vsl_aspect_ratio": "4:3",
		}, ""},
		{"empty update", map[string]string{}, "No settings"},
		{"active theme", map[string]string{"active_theme": "blue"}, "/api/admin/themes"},
		{"unknown key", map[string]string{"favicon": "x"}, "Unknown setting"},
		{"blank title", map[string]string{"site_title": "   "}, "title is required"},
		{"title too long", map[string]string{"site_title": strings.Repeat("a", maxTitleLen+1)}, "too long"},
		{"bad url scheme", map[string]string{"vsl_url": "javascript:alert(1)"}, "http(s) URL"},
		{"empty url allowed", map[string]string{"vsl_url": ""}, ""},
		{"bad platform", map[string]string{"vsl_platform": "tiktok"}, "platform"},
		{"bad aspect ratio", map[string]string{"vsl_aspect_ratio": "wide"}, "Aspect ratio"},
		{"default aspect ratio", map[string]string{"vsl_aspect_ratio": "16:9"}, ""},
		{"faqs not json", map[string]string{"faqs": "nope"}, "JSON array"},
		{"faq missing answer", map[string]string{"faqs": `[{"question":"Q?","answer":""}]`}, "FAQ 1"},
		{"valid faqs", map[string]string{"faqs": `[{"question":"Q?","answer":"**A**"}]`}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validateSettings(tt.settings)
			if tt.wantErr == "" {
				if got != "" {
					t.Errorf("unexpected error %q", got)
				}
				return
			}
			if !strings.Contains(got, tt.wantErr) {
				t.Errorf("got %q, want it to contain %q", got, tt.wantErr)
			}
		})
	}
}

func TestValidateFAQsLimit(t *testing.T) {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i <= maxFAQs; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"question":"Q","answer":"A"}`)
	}
	b.WriteString("]")

	if msg := validateFAQs(b.String()); !strings.Contains(msg, "Too many") {
		t.Errorf("got %q, want too many FAQs", msg)
	}
}
