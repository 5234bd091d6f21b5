package ratelimit

import (
	"net/http"
	"strings"
)

// UnknownClientKey buckets every request that carries no client address
// headers. All such clients share one quota.
const UnknownClientKey = "unknown"

// ClientKey derives the rate limit key from the proxy headers: the first
// X-Forwarded-For entry, then X-Real-IP, then UnknownClientKey.
// RemoteAddr is deliberately ignored.
func ClientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	return UnknownClientKey
}
