package appMiddleware

import (
	"context"
	"net/http"

	"github.com/FACorreiaa/go-japanwise-itinerary/internal/api/ratelimit"
)

type contextKey string

const ClientKeyKey contextKey = "clientKey"

// ClientIdentity resolves the rate limit key from the proxy headers and adds it
// to the request context. It never rejects a request.
func ClientIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ClientKeyKey, ratelimit.ClientKey(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClientKeyFromContext returns the key stored by ClientIdentity.
func GetClientKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(ClientKeyKey).(string)
	return key, ok && key != ""
}

// ClientKeyFromRequest prefers the key resolved by ClientIdentity and derives
// it from the headers when the middleware did not run.
func ClientKeyFromRequest(r *http.Request) string {
	if key, ok := GetClientKeyFromContext(r.Context()); ok {
		return key
	}
	return ratelimit.ClientKey(r)
}
