package itinerary

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	appMiddleware "github.com/FACorreiaa/go-japanwise-itinerary/app/middleware"
	"github.com/FACorreiaa/go-japanwise-itinerary/app/observability/metrics"
	"github.com/FACorreiaa/go-japanwise-itinerary/internal/api"
	"github.com/FACorreiaa/go-japanwise-itinerary/internal/api/ratelimit"
	"github.com/FACorreiaa/go-japanwise-itinerary/internal/types"
)

// GenericFailureMessage is the only error text a failed generation exposes.
const GenericFailureMessage = "Failed to generate itinerary"

const (
	outcomeOK          = "ok"
	outcomeError       = "error"
	outcomeRateLimited = "rate_limited"
)

type HandlerImpl struct {
	logger  *slog.Logger
	service Service
	limiter ratelimit.Limiter
	now     func() time.Time
}

func NewHandlerImpl(service Service, limiter ratelimit.Limiter, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		logger:  logger,
		service: service,
		limiter: limiter,
		now:     time.Now,
	}
}

// Generate godoc
// @Summary      Generate Japan itinerary
// @Description  Builds a day-by-day itinerary from the trip details, or revises an existing one when existingItinerary and adjustmentRequest are both sent. Limited per client per day.
// @Tags         Itinerary
// @Accept       json
// @Produce      json
// @Param        trip body types.TripRequest true "Trip details"
// @Success      200 {object} types.Itinerary "Generated itinerary, passed through as the model returned it"
// @Header       200 {integer} X-RateLimit-Limit "Requests allowed per window"
// @Header       200 {integer} X-RateLimit-Remaining "Requests left in the window"
// @Header       200 {string} X-Itinerary-ID "Interaction identifier"
// @Failure      429 {object} api.RateLimitedBody "Daily limit reached"
// @Failure      500 {object} api.ErrorBody "Generation failed"
// @Router       /api/generate [post]
func (h *HandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Generate")
	defer span.End()

	clientKey := appMiddleware.ClientKeyFromRequest(r)
	l := h.logger.With(slog.String("HandlerImpl", "Generate"), slog.String("client_key", clientKey))
	m := metrics.Get()

	now := h.now()
	decision := h.limiter.CheckAt(clientKey, now)
	w.Header().Set(api.HeaderRateLimitLimit, strconv.Itoa(decision.Limit))

	if !decision.Allowed {
		retryAfter := decision.RetryAfter(now)
		l.WarnContext(ctx, "Rate limit exceeded", slog.Time("reset_at", decision.ResetAt))
		span.SetStatus(codes.Error, ratelimit.ErrLimitExceeded.Error())
		m.RateLimitedTotal.Add(ctx, 1)
		m.ItineraryRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcomeRateLimited)))

		w.Header().Set(api.HeaderRateLimitRemaining, "0")
		w.Header().Set(api.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
		api.WriteJSONResponse(w, r, http.StatusTooManyRequests, api.RateLimitedBody{
			Error:      fmt.Sprintf("Daily limit reached (%d itineraries/day). Please try again tomorrow.", decision.Limit),
			RetryAfter: describeWindow(h.limiter.Window()),
		})
		return
	}

	var trip types.TripRequest
	if err := api.DecodeJSONBody(w, r, &trip); err != nil {
		l.WarnContext(ctx, "Failed to decode trip request", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid request body")
		h.fail(w, r, m, "")
		return
	}

	mode := types.ModeGenerate
	if trip.IsAdjustment() {
		mode = types.ModeAdjust
	}
	span.SetAttributes(attribute.String("mode", string(mode)))

	result, err := h.service.GenerateItinerary(ctx, &trip)
	if err != nil {
		l.ErrorContext(ctx, "Itinerary generation failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		h.fail(w, r, m, mode)
		return
	}

	m.ItineraryRequestsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mode", string(mode)),
		attribute.String("outcome", outcomeOK)))

	w.Header().Set(api.HeaderRateLimitRemaining, strconv.Itoa(decision.Remaining))
	w.Header().Set(api.HeaderItineraryID, result.Interaction.ID.String())
	span.SetStatus(codes.Ok, "Itinerary generated")
	api.WriteJSONResponse(w, r, http.StatusOK, result.Itinerary)
}

func (h *HandlerImpl) fail(w http.ResponseWriter, r *http.Request, m *metrics.AppMetrics, mode types.GenerationMode) {
	attrs := []attribute.KeyValue{attribute.String("outcome", outcomeError)}
	if mode != "" {
		attrs = append(attrs, attribute.String("mode", string(mode)))
	}
	m.ItineraryRequestsTotal.Add(r.Context(), 1, metric.WithAttributes(attrs...))
	api.ErrorResponse(w, r, http.StatusInternalServerError, GenericFailureMessage)
}

// describeWindow renders the limiter window for the 429 body, e.g. "24 hours".
func describeWindow(d time.Duration) string {
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		if d == time.Hour {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", d/time.Hour)
	case d >= time.Minute && d%time.Minute == 0:
		if d == time.Minute {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", d/time.Minute)
	default:
		return d.String()
	}
}
