package api

// ErrorBody is the JSON body of every 5xx response.
type ErrorBody struct {
	Error     string `json:"error" example:"Failed to generate itinerary"`
	RequestID string `json:"request_id,omitempty" example:"host/abc123-000001"`
}

// RateLimitedBody is returned with 429 Too Many Requests.
type RateLimitedBody struct {
	Error      string `json:"error" example:"Daily limit reached (5 itineraries/day). Please try again tomorrow."`
	RetryAfter string `json:"retryAfter" example:"24 hours"`
}

// Response headers set by the itinerary endpoint.
const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRetryAfter         = "Retry-After"
	HeaderItineraryID        = "X-Itinerary-ID"
)
