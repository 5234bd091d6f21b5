package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	ItineraryRequestsTotal       metric.Int64Counter
	RateLimitedTotal             metric.Int64Counter
	LlmCompletionDurationSeconds metric.Float64Histogram
	LlmCompletionErrorsTotal     metric.Int64Counter
	ItineraryParseErrorsTotal    metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics creates the instruments once, from the global MeterProvider.
// Call it after the provider is installed or the instruments stay no-ops.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("JapanWise")
		var err error
		m := &AppMetrics{}

		m.ItineraryRequestsTotal, err = meter.Int64Counter(
			"itinerary_requests_total",
			metric.WithDescription("Itinerary requests by mode and outcome"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_requests_total: %v", err)
		}

		m.RateLimitedTotal, err = meter.Int64Counter(
			"rate_limited_total",
			metric.WithDescription("Requests rejected by the per-client daily limit"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create rate_limited_total: %v", err)
		}

		m.LlmCompletionDurationSeconds, err = meter.Float64Histogram(
			"llm_completion_duration_seconds",
			metric.WithDescription("Duration of LLM completion calls in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create llm_completion_duration_seconds: %v", err)
		}

		m.LlmCompletionErrorsTotal, err = meter.Int64Counter(
			"llm_completion_errors_total",
			metric.WithDescription("Total number of failed LLM completion calls"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create llm_completion_errors_total: %v", err)
		}

		m.ItineraryParseErrorsTotal, err = meter.Int64Counter(
			"itinerary_parse_errors_total",
			metric.WithDescription("Model replies that held no parseable itinerary"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_parse_errors_total: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the global AppMetrics, initialising the instruments on first
// use.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
