// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"unicode/utf8"

	"vslsite/internal/landing"
	"vslsite/internal/models"
)

// Validation limits for editable site settings.
const (
	maxTitleLen       = 200
	maxDescriptionLen = 1_000
	maxURLLen         = 2_000
	maxFAQsLen        = 50_000
	maxFAQs           = 30
)

// editableSettings maps each key operators may change to its length cap.
var editableSettings = map[string]int{
	models.SettingSiteTitle:       maxTitleLen,
	models.SettingSiteDescription: maxDescriptionLen,
	models.SettingVSLURL:          maxURLLen,
	models.SettingVSLPlatform:     32,
	models.SettingVSLThumbnail:    maxURLLen,
	models.SettingVSLAspectRatio:  16,
	models.SettingFAQs:            maxFAQsLen,
}

var validPlatforms = map[string]bool{
	landing.PlatformVimeo:   true,
	landing.PlatformYouTube: true,
	landing.PlatformWistia:  true,
	landing.PlatformVturb:   true,
	landing.PlatformOther:   true,
}

// validateSettings checks a settings update and returns the first error
// found, or "" when the update is acceptable. Keys are checked in sorted
// order so the message is stable.
func validateSettings(settings map[string]string) string {
	if len(settings) == 0 {
		return "No settings to update."
	}

	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := settings[key]
		if key == models.SettingActiveTheme {
			return "Use /api/admin/themes to change the theme."
		}
		limit, ok := editableSettings[key]
		if !ok {
			return fmt.Sprintf("Unknown setting %q.", key)
		}
		if utf8.RuneCountInString(value) > limit {
			return fmt.Sprintf("Setting %q is too long (max %d characters).", key, limit)
		}

		switch key {
		case models.SettingSiteTitle:
			if strings.TrimSpace(value) == "" {
				return "Site title is required."
			}
		case models.SettingVSLURL, models.SettingVSLThumbnail:
			if value != "" && !isHTTPURL(value) && !strings.HasPrefix(value, "/") {
				return fmt.Sprintf("Setting %q must be an http(s) URL or a site path.", key)
			}
		case models.SettingVSLPlatform:
			if value != "" && !validPlatforms[value] {
				return "Unknown video platform."
			}
		case models.SettingVSLAspectRatio:
			if landing.AspectClass(value) == "aspect-video" && value != "16:9" {
				return "Aspect ratio must look like 16:9."
			}
		case models.SettingFAQs:
			if msg := validateFAQs(value); msg != "" {
				return msg
			}
		}
	}
	return ""
}

func validateFAQs(raw string) string {
	var faqs []landing.FAQ
	if err := json.Unmarshal([]byte(raw), &faqs); err != nil {
		return "FAQs must be a JSON array of {question, answer}."
	}
	if len(faqs) > maxFAQs {
		return fmt.Sprintf("Too many FAQs (max %d).", maxFAQs)
	}
	for i, f := range faqs {
		if strings.TrimSpace(f.Question) == "" || strings.TrimSpace(f.Answer) == "" {
			return fmt.Sprintf("FAQ %d needs both a question and an answer.", i+1)
		}
	}
	return ""
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
