package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all application metrics
type Metrics struct {
	RequestCounter  metric.Int64Counter
	RequestDuration metric.Float64Histogram
	AICalls         metric.Int64Counter
	AITokensUsed    metric.Int64Counter
	JobsScraped     metric.Int64Counter
}

// InitMetrics initializes all application metrics
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter("nextstep-career-api")

	requestCounter, err := meter.Int64Counter(
		"http.requests.total",
		metric.WithDescription("Total HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	aiCalls, err := meter.Int64Counter(
		"ai.requests.total",
		metric.WithDescription("Total model completion requests"),
	)
	if err != nil {
		return nil, err
	}

	aiTokensUsed, err := meter.Int64Counter(
		"ai.tokens.used",
		metric.WithDescription("Total model tokens used"),
	)
	if err != nil {
		return nil, err
	}

	jobsScraped, err := meter.Int64Counter(
		"jobs.scraped.total",
		metric.WithDescription("Total job postings scraped"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		RequestCounter:  requestCounter,
		RequestDuration: requestDuration,
		AICalls:         aiCalls,
		AITokensUsed:    aiTokensUsed,
		JobsScraped:     jobsScraped,
	}, nil
}

// RecordRequest records one served HTTP request. Nil receiver is a no-op so
// callers never need to guard.
func (m *Metrics) RecordRequest(ctx context.Context, route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("route", route),
		attribute.String("method", method),
		attribute.Int("status", status),
	)
	m.RequestCounter.Add(ctx, 1, attrs)
	m.RequestDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordAICall records one model completion attempt and its token usage.
func (m *Metrics) RecordAICall(ctx context.Context, model string, tokens int64, failed bool) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("model", model),
		attribute.Bool("failed", failed),
	)
	m.AICalls.Add(ctx, 1, attrs)
	if tokens > 0 {
		m.AITokensUsed.Add(ctx, tokens, metric.WithAttributes(attribute.String("model", model)))
	}
}

// RecordJobsScraped records listings persisted from one scrape run.
func (m *Metrics) RecordJobsScraped(ctx context.Context, source string, count int64) {
	if m == nil {
		return
	}
	m.JobsScraped.Add(ctx, count, metric.WithAttributes(attribute.String("source", source)))
}
