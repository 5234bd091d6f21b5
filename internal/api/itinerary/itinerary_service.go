package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-japanwise-itinerary/app/observability/metrics"
	generativeAI "github.com/FACorreiaa/go-japanwise-itinerary/internal/api/generative_ai"
	"github.com/FACorreiaa/go-japanwise-itinerary/internal/types"
)

// ErrInvalidTrip covers requests that cannot be turned into a prompt: bad or
// missing dates, an end date before the start, or failed field validation.
var ErrInvalidTrip = errors.New("invalid trip request")

// CompletionClient is the LLM backend used by the service.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, s generativeAI.Sampling) (string, error)
	Model() string
}

var _ CompletionClient = (*generativeAI.AIClient)(nil)

type ServiceConfig struct {
	GenerateTemperature float32
	AdjustTemperature   float32
	MaxOutputTokens     int32
}

func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		GenerateTemperature: 0.85,
		AdjustTemperature:   0.7,
		MaxOutputTokens:     generativeAI.DefaultMaxOutputTokens,
	}
}

var _ Service = (*ServiceImpl)(nil)

// Service generates or adjusts a trip itinerary with one completion call.
type Service interface {
	GenerateItinerary(ctx context.Context, trip *types.TripRequest) (*types.GenerationResult, error)
}

type ServiceImpl struct {
	logger   *slog.Logger
	aiClient CompletionClient
	validate *validator.Validate
	cfg      ServiceConfig
}

func NewServiceImpl(aiClient CompletionClient, cfg ServiceConfig, logger *slog.Logger) *ServiceImpl {
	defaults := DefaultServiceConfig()
	if cfg.GenerateTemperature <= 0 {
		cfg.GenerateTemperature = defaults.GenerateTemperature
	}
	if cfg.AdjustTemperature <= 0 {
		cfg.AdjustTemperature = defaults.AdjustTemperature
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = defaults.MaxOutputTokens
	}
	return &ServiceImpl{
		logger:   logger,
		aiClient: aiClient,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		cfg:      cfg,
	}
}

func (s *ServiceImpl) GenerateItinerary(ctx context.Context, trip *types.TripRequest) (*types.GenerationResult, error) {
	mode := types.ModeGenerate
	if trip.IsAdjustment() {
		mode = types.ModeAdjust
	}

	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GenerateItinerary", trace.WithAttributes(
		attribute.String("mode", string(mode)),
		attribute.Int("cities.count", len(trip.Cities)),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "GenerateItinerary"), slog.String("mode", string(mode)))

	if err := s.validate.StructCtx(ctx, trip); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidTrip, err)
		l.WarnContext(ctx, "Trip request failed validation", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Validation failed")
		return nil, err
	}

	prompt, sampling, err := s.buildPrompt(ctx, trip, mode)
	if err != nil {
		l.WarnContext(ctx, "Failed to build prompt", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Prompt build failed")
		return nil, err
	}

	start := time.Now()
	raw, err := s.aiClient.Complete(ctx, prompt.System, prompt.User, sampling)
	latency := time.Since(start)
	if err != nil {
		l.ErrorContext(ctx, "Completion failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Completion failed")
		return nil, fmt.Errorf("failed to generate itinerary: %w", err)
	}

	itinerary, err := ParseItinerary(raw)
	if err != nil {
		var malformed *MalformedResponseError
		if errors.As(err, &malformed) {
			l.ErrorContext(ctx, "Failed to parse model reply",
				slog.Any("error", err),
				slog.String("raw", malformed.Raw))
		}
		metrics.Get().ItineraryParseErrorsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("mode", string(mode))))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Parse failed")
		return nil, err
	}

	interaction := types.LlmInteraction{
		ID:             uuid.New(),
		Mode:           mode,
		ModelUsed:      s.aiClient.Model(),
		Temperature:    sampling.Temperature,
		PromptLength:   prompt.Len(),
		ResponseLength: len(raw),
		LatencyMs:      int(latency.Milliseconds()),
	}
	l.InfoContext(ctx, "Itinerary generated",
		slog.String("interaction_id", interaction.ID.String()),
		slog.String("model", interaction.ModelUsed),
		slog.Int("prompt_length", interaction.PromptLength),
		slog.Int("response_length", interaction.ResponseLength),
		slog.Int("latency_ms", interaction.LatencyMs),
		slog.Int("days", countDays(itinerary)))

	span.SetAttributes(attribute.String("interaction.id", interaction.ID.String()))
	span.SetStatus(codes.Ok, "Itinerary generated")
	return &types.GenerationResult{Itinerary: itinerary, Interaction: interaction}, nil
}

func (s *ServiceImpl) buildPrompt(ctx context.Context, trip *types.TripRequest, mode types.GenerationMode) (Prompt, generativeAI.Sampling, error) {
	if mode == types.ModeAdjust {
		prompt, err := BuildAdjustmentPrompt(trip.ExistingItinerary, trip.AdjustmentRequest)
		if err != nil {
			return Prompt{}, generativeAI.Sampling{}, err
		}
		return prompt, generativeAI.Sampling{Temperature: s.cfg.AdjustTemperature, MaxOutputTokens: s.cfg.MaxOutputTokens}, nil
	}

	plan, err := NewTripPlan(trip)
	if err != nil {
		return Prompt{}, generativeAI.Sampling{}, err
	}
	s.logger.DebugContext(ctx, "Trip planned",
		slog.Int("total_days", plan.TotalDays),
		slog.String("start_city", plan.StartCity),
		slog.String("end_city", plan.EndCity),
		slog.String("allocation", describeAllocations(plan.Allocations)))

	return BuildGenerationPrompt(trip, plan), generativeAI.Sampling{Temperature: s.cfg.GenerateTemperature, MaxOutputTokens: s.cfg.MaxOutputTokens}, nil
}
