// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"strings"
)

// apiCSP forbids every fetch and framing. Responses are JSON, CSS or
// plain text and never render as documents.
const apiCSP = "default-src 'none'; frame-ancestors 'none'"

// privatePrefixes carry session-bound responses that must not be stored
// by browsers or proxies, nor read by other origins.
var privatePrefixes = []string{"/api/admin/", "/api/auth/"}

// SecureHeaders adds security headers suited to an API that serves JSON
// and theme stylesheets. Session-bound routes additionally get no-store
// and a same-origin resource policy; public theme data may be embedded
// by the landing page from another origin.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Content-Security-Policy", apiCSP)
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

		if isPrivatePath(r.URL.Path) {
			h.Set("Cache-Control", "no-store")
			h.Set("Cross-Origin-Resource-Policy", "same-origin")
		} else {
			h.Set("Cross-Origin-Resource-Policy", "cross-origin")
		}

		next.ServeHTTP(w, r)
	})
}

func isPrivatePath(path string) bool {
	for _, p := range privatePrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
