package middleware

import (
	"net/http"
	"strings"
)

// CacheControl keeps intermediaries from caching API responses. Everything
// this server returns is per-user JSON, so the policy is uniformly no-store;
// health probes get a plain no-cache so load balancers always revalidate.
type CacheControl struct{}

func NewCacheControl() *CacheControl {
	return &CacheControl{}
}

func (c *CacheControl) Apply(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/"):
			w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
			w.Header().Set("Pragma", "no-cache")

		case r.URL.Path == "/health" || r.URL.Path == "/ready" || r.URL.Path == "/live":
			w.Header().Set("Cache-Control", "no-cache, must-revalidate")

		default:
			w.Header().Set("Cache-Control", "no-store")
		}

		next.ServeHTTP(w, r)
	})
}
