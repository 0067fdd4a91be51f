// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"emphasis", "Garantia de **7 dias**.", "<strong>7 dias</strong>"},
		{"link", "[suporte](https://example.com)", `<a href="https://example.com">suporte</a>`},
		{"strikethrough", "~~R$997~~", "<del>R$997</del>"},
		{"heading id", "## Acesso", `<h2 id="acesso">Acesso</h2>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.in)
			if err != nil {
				t.Fatalf("ToHTML: %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("got %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestToHTMLEscapesRawHTML(t *testing.T) {
	got, err := ToHTML(`<script>alert(1)</script>`)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML must not pass through: %q", got)
	}
}

func TestInline(t *testing.T) {
	got, err := Inline("Acesso *vitalício*.")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Acesso <em>vitalício</em>." {
		t.Errorf("got %q", got)
	}

	multi, err := Inline("um\n\ndois")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(multi, "<p>") != 2 {
		t.Errorf("multi-paragraph input should keep its paragraphs: %q", multi)
	}
}
