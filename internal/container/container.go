package container

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/FACorreiaa/go-japanwise-itinerary/config"
	generativeAI "github.com/FACorreiaa/go-japanwise-itinerary/internal/api/generative_ai"
	"github.com/FACorreiaa/go-japanwise-itinerary/internal/api/itinerary"
	"github.com/FACorreiaa/go-japanwise-itinerary/internal/api/ratelimit"
)

// Container holds all application dependencies
type Container struct {
	Config           *config.Config
	Logger           *slog.Logger
	Limiter          ratelimit.Limiter
	ItineraryService itinerary.Service
	ItineraryHandler *itinerary.HandlerImpl
}

// NewContainer initializes and returns a new dependency container backed by
// the Gemini client.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	aiClient, err := generativeAI.NewAIClient(ctx, generativeAI.ClientConfig{
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)
	if err != nil {
		logger.Error("Failed to initialize AI client", slog.Any("error", err))
		return nil, err
	}
	return NewContainerWithClient(cfg, logger, aiClient)
}

// NewContainerWithClient wires the container around an existing completion
// client.
func NewContainerWithClient(cfg *config.Config, logger *slog.Logger, aiClient itinerary.CompletionClient) (*Container, error) {
	rl := cfg.RateLimit
	store, err := ratelimit.NewStore(rl.Store, rl.Window, rl.CleanupInterval)
	if err != nil {
		logger.Error("Failed to initialize rate limit store", slog.Any("error", err))
		return nil, fmt.Errorf("rate limit store: %w", err)
	}
	limiter := ratelimit.NewFixedWindowLimiter(rl.Limit, rl.Window,
		ratelimit.WithStore(store),
		ratelimit.WithHighWaterMark(rl.HighWaterMark))

	itineraryService := itinerary.NewServiceImpl(aiClient, itinerary.ServiceConfig{
		GenerateTemperature: cfg.LLM.GenerateTemperature,
		AdjustTemperature:   cfg.LLM.AdjustTemperature,
		MaxOutputTokens:     cfg.LLM.MaxOutputTokens,
	}, logger)
	itineraryHandler := itinerary.NewHandlerImpl(itineraryService, limiter, logger)

	logger.Info("Container initialized",
		slog.String("model", aiClient.Model()),
		slog.String("rate_limit_store", rl.Store),
		slog.Int("rate_limit", limiter.Limit()),
		slog.Duration("rate_limit_window", limiter.Window()))

	return &Container{
		Config:           cfg,
		Logger:           logger,
		Limiter:          limiter,
		ItineraryService: itineraryService,
		ItineraryHandler: itineraryHandler,
	}, nil
}
