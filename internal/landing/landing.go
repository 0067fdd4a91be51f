// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package landing assembles the data behind the public sales page: copy
// from site settings, the active theme, the offer countdown, the video
// player config, and the FAQ list.
package landing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"vslsite/internal/markdown"
	"vslsite/internal/models"
)

// FAQ is one question with its answer. Answer is Markdown; AnswerHTML is
// filled in when the page is built.
type FAQ struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	AnswerHTML string `json:"answerHtml,omitempty"`
}

// DefaultFAQs are shown until an operator stores their own list.
var DefaultFAQs = []FAQ{
	{Question: "Por quanto tempo vou ter acesso?",
		Answer: "Você terá acesso **vitalício** ao produto e todas as atualizações futuras sem custos adicionais."},
	{Question: "É possível conseguir resultados em quanto tempo?",
		Answer: "A maioria dos alunos começa a ver resultados nas primeiras 2 semanas aplicando as estratégias ensinadas."},
	{Question: "Tem garantia?",
		Answer: "Oferecemos garantia incondicional de **7 dias**. Se você não ficar satisfeito, devolvemos 100% do seu dinheiro."},
	{Question: "Funciona mesmo para quem não tem experiência?",
		Answer: "Sim! O método foi desenvolvido para funcionar independentemente da sua experiência prévia."},
}

// Page is the payload of the landing endpoint.
type Page struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Theme       string    `json:"theme"`
	Countdown   Countdown `json:"countdown"`
	Video       Video     `json:"video"`
	FAQs        []FAQ     `json:"faqs"`
}

// SettingsReader loads every site setting at once.
type SettingsReader interface {
	All(ctx context.Context) (models.SiteSettings, error)
}

// ThemeReader resolves the active theme. It returns a usable id even
// alongside an error.
type ThemeReader interface {
	ActiveTheme(ctx context.Context) (string, error)
}

// Builder assembles Pages.
type Builder struct {
	settings SettingsReader
	themes   ThemeReader
	loc      *time.Location
	now      func() time.Time
}

// NewBuilder creates a Builder whose countdown ends at midnight in loc.
func NewBuilder(settings SettingsReader, themes ThemeReader, loc *time.Location) *Builder {
	if loc == nil {
		loc = time.UTC
	}
	return &Builder{settings: settings, themes: themes, loc: loc, now: time.Now}
}

// Build returns the page. Settings are required; a theme lookup failure
// only degrades to the default theme.
func (b *Builder) Build(ctx context.Context) (*Page, error) {
	settings, err := b.settings.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load landing settings: %w", err)
	}

	themeID, err := b.themes.ActiveTheme(ctx)
	if err != nil {
		slog.Warn("landing theme lookup failed, using default", "error", err, "theme", themeID)
	}

	faqs, err := renderFAQs(loadFAQs(settings))
	if err != nil {
		return nil, err
	}

	return &Page{
		Title:       settings.Get(models.SettingSiteTitle, "VSL Landing Page"),
		Description: settings.Get(models.SettingSiteDescription, ""),
		Theme:       themeID,
		Countdown:   UntilMidnight(b.now(), b.loc),
		Video: NewVideo(
			settings.Get(models.SettingVSLURL, ""),
			settings.Get(models.SettingVSLPlatform, ""),
			settings.Get(models.SettingVSLThumbnail, ""),
			settings.Get(models.SettingVSLAspectRatio, DefaultAspectRatio),
		),
		FAQs: faqs,
	}, nil
}

// loadFAQs reads the stored list, falling back to DefaultFAQs when it is
// absent or malformed.
func loadFAQs(settings models.SiteSettings) []FAQ {
	raw := settings.Get(models.SettingFAQs, "")
	if raw == "" {
		return DefaultFAQs
	}
	var faqs []FAQ
	if err := json.Unmarshal([]byte(raw), &faqs); err != nil || len(faqs) == 0 {
		slog.Warn("stored faqs are invalid, using defaults", "error", err)
		return DefaultFAQs
	}
	return faqs
}

func renderFAQs(in []FAQ) ([]FAQ, error) {
	out := make([]FAQ, len(in))
	for i, f := range in {
		html, err := markdown.Inline(f.Answer)
		if err != nil {
			return nil, fmt.Errorf("render faq %d: %w", i, err)
		}
		out[i] = FAQ{Question: f.Question, Answer: f.Answer, AnswerHTML: html}
	}
	return out, nil
}
