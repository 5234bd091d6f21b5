package generativeAI

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-japanwise-itinerary/app/observability/metrics"
)

const (
	DefaultModel           = "gemini-2.0-flash"
	DefaultMaxOutputTokens = 8000
)

var (
	ErrUpstream      = errors.New("completion upstream failed")
	ErrMissingAPIKey = errors.New("GOOGLE_GEMINI_API_KEY is not set")
)

// UpstreamError wraps a failed or empty completion.
type UpstreamError struct {
	Model string
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s (model %s): %v", ErrUpstream, e.Model, e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	return []error{ErrUpstream, e.Err}
}

// Sampling controls a single completion.
type Sampling struct {
	Temperature     float32
	MaxOutputTokens int32
}

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type ClientConfig struct {
	APIKey string
	Model  string
	// Timeout bounds each completion on top of the caller's context. Zero
	// leaves only the caller's deadline.
	Timeout time.Duration
}

type AIClient struct {
	models  contentGenerator
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

func NewAIClient(ctx context.Context, cfg ClientConfig, logger *slog.Logger) (*AIClient, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "NewAIClient")
	defer span.End()

	if cfg.APIKey == "" {
		span.RecordError(ErrMissingAPIKey)
		span.SetStatus(codes.Error, "API key not set")
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	span.SetStatus(codes.Ok, "AI client created successfully")
	return newAIClient(client.Models, cfg, logger), nil
}

func newAIClient(models contentGenerator, cfg ClientConfig, logger *slog.Logger) *AIClient {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AIClient{
		models:  models,
		model:   model,
		timeout: cfg.Timeout,
		logger:  logger.With(slog.String("component", "ai_client"), slog.String("model", model)),
	}
}

func (ai *AIClient) Model() string {
	return ai.model
}

// Complete sends one system message and one user message and returns the
// reply text. There are no retries.
func (ai *AIClient) Complete(ctx context.Context, systemPrompt, userPrompt string, s Sampling) (string, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "Complete", trace.WithAttributes(
		attribute.String("model", ai.model),
		attribute.Int("prompt.length", len(systemPrompt)+len(userPrompt)),
		attribute.Float64("temperature", float64(s.Temperature)),
	))
	defer span.End()

	if ai.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ai.timeout)
		defer cancel()
	}

	maxTokens := s.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxOutputTokens
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](s.Temperature),
		MaxOutputTokens:   maxTokens,
	}

	m := metrics.Get()
	start := time.Now()
	result, err := ai.models.GenerateContent(ctx, ai.model, genai.Text(userPrompt), config)
	m.LlmCompletionDurationSeconds.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("model", ai.model)))

	if err != nil {
		return "", ai.fail(ctx, span, m, "Failed to generate content", err)
	}

	text := ""
	if result != nil {
		text = result.Text()
	}
	if strings.TrimSpace(text) == "" {
		return "", ai.fail(ctx, span, m, "Empty completion", errors.New("no response from model"))
	}

	span.SetAttributes(attribute.Int("response.length", len(text)))
	span.SetStatus(codes.Ok, "Content generated successfully")
	return text, nil
}

func (ai *AIClient) fail(ctx context.Context, span trace.Span, m *metrics.AppMetrics, msg string, err error) error {
	upstreamErr := &UpstreamError{Model: ai.model, Err: err}
	span.RecordError(upstreamErr)
	span.SetStatus(codes.Error, msg)
	m.LlmCompletionErrorsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("model", ai.model)))
	ai.logger.ErrorContext(ctx, msg, slog.Any("error", err))
	return upstreamErr
}
