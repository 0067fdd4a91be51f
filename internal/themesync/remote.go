// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package themesync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"vslsite/internal/session"
)

// HTTPRemote talks to the site's theme API. Session is the value of the
// admin session cookie; it is only needed for SaveTheme.
type HTTPRemote struct {
	baseURL string
	session string
	client  *http.Client
}

// NewHTTPRemote creates a remote for the server at baseURL.
func NewHTTPRemote(baseURL, sessionID string) *HTTPRemote {
	return &HTTPRemote{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: sessionID,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// apiResponse covers the fields shared by the theme endpoints.
type apiResponse struct {
	Success bool   `json:"success"`
	Theme   string `json:"theme"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// CurrentTheme returns the site's active theme.
func (r *HTTPRemote) CurrentTheme(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/api/themes/current", nil)
	if err != nil {
		return "", fmt.Errorf("theme request: %w", err)
	}

	out, err := r.do(req)
	if err != nil {
		return "", err
	}
	return out.Theme, nil
}

// SaveTheme sets the site's active theme. Requires an admin session.
func (r *HTTPRemote) SaveTheme(ctx context.Context, id string) error {
	payload, err := json.Marshal(map[string]string{"theme": id})
	if err != nil {
		return fmt.Errorf("theme marshal: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/admin/themes", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("theme request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = r.do(req)
	return err
}

func (r *HTTPRemote) do(req *http.Request) (*apiResponse, error) {
	req.Header.Set("Accept", "application/json")
	if r.session != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: r.session})
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("theme http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("theme read body: %w", err)
	}

	var out apiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("theme API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if resp.StatusCode != http.StatusOK || !out.Success {
		msg := out.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("theme API error (status %d): %s", resp.StatusCode, msg)
	}
	return &out, nil
}
