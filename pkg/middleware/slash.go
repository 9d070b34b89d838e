// Package middleware provides composable HTTP middleware for the API module.
package middleware

import (
	"net/http"
	"net/url"
	"strings"
)

// TrimSlash returns middleware that redirects requests with trailing slashes
// to their canonical form without the slash. The root path "/" is preserved.
// Non-GET requests are rewritten in place instead of redirected so clients
// do not lose the request body on a 301. Redirects are built from the
// request URI so a mount prefix stripped upstream is kept in the Location.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) <= 1 || !strings.HasSuffix(r.URL.Path, "/") {
				next.ServeHTTP(w, r)
				return
			}

			trimmed := strings.TrimRight(r.URL.Path, "/")
			if trimmed == "" {
				trimmed = "/"
			}

			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				r.URL.Path = trimmed
				r.URL.RawPath = ""
				next.ServeHTTP(w, r)
				return
			}

			target := trimmed
			if u, err := url.ParseRequestURI(r.RequestURI); err == nil && strings.HasSuffix(u.Path, "/") {
				target = strings.TrimRight(u.Path, "/")
			}
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusMovedPermanently)
		})
	}
}
