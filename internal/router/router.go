package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	appMiddleware "github.com/FACorreiaa/go-japanwise-itinerary/app/middleware"
	"github.com/FACorreiaa/go-japanwise-itinerary/internal/api"
	_ "github.com/FACorreiaa/go-japanwise-itinerary/docs" // swagger spec
)

// Config contains dependencies needed for the router setup
type Config struct {
	ItineraryHandler http.HandlerFunc
	AllowedOrigins   []string
}

var defaultAllowedOrigins = []string{"http://localhost:3000"}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (like logger, requestID, recoverer) are expected
// to be applied *before* mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = defaultAllowedOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{
			api.HeaderRateLimitLimit,
			api.HeaderRateLimitRemaining,
			api.HeaderRetryAfter,
			api.HeaderItineraryID,
		},
		MaxAge: 300, // Maximum value not ignored by any major browsers
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		r.Use(appMiddleware.ClientIdentity)
		r.Post("/generate", cfg.ItineraryHandler)
	})

	return r
}
