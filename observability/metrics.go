package observability

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName names the tracer and meter of the API client.
const InstrumentationName = "github.com/kbukum/picacg"

// Metric names.
const (
	MetricRequests        = "picacg.requests"
	MetricRequestDuration = "picacg.request.duration"
	MetricRequestsActive  = "picacg.requests.active"
	MetricErrors          = "picacg.errors"
)

// Metrics holds the instruments of the API client.
type Metrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
	active   metric.Int64UpDownCounter
	errors   metric.Int64Counter
}

// NewMetrics creates the client instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	requests, err := meter.Int64Counter(MetricRequests,
		metric.WithDescription("API requests that got a response"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricRequests, err)
	}
	duration, err := meter.Float64Histogram(MetricRequestDuration,
		metric.WithDescription("Duration of API requests including retries"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricRequestDuration, err)
	}
	active, err := meter.Int64UpDownCounter(MetricRequestsActive,
		metric.WithDescription("API requests in flight"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s gauge: %w", MetricRequestsActive, err)
	}
	errs, err := meter.Int64Counter(MetricErrors,
		metric.WithDescription("Failed API calls by error kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricErrors, err)
	}
	return &Metrics{requests: requests, duration: duration, active: active, errors: errs}, nil
}

// DefaultMetrics creates the instruments on the global meter provider.
func DefaultMetrics() (*Metrics, error) {
	return NewMetrics(otel.Meter(InstrumentationName))
}

// RecordStart marks a request in flight.
func (m *Metrics) RecordStart(ctx context.Context) {
	if m == nil {
		return
	}
	m.active.Add(ctx, 1)
}

// RecordEnd records a request that got a response with the given status.
func (m *Metrics) RecordEnd(ctx context.Context, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.active.Add(ctx, -1)
	m.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("status", strconv.Itoa(status)),
	))
	m.duration.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("method", method)))
}

// RecordFailure records a request that never got a response.
func (m *Metrics) RecordFailure(ctx context.Context, method, kind string, d time.Duration) {
	if m == nil {
		return
	}
	m.active.Add(ctx, -1)
	m.duration.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("method", method)))
	m.RecordError(ctx, kind)
}

// RecordError counts a failed call by error kind.
func (m *Metrics) RecordError(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.errors.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// StartSpan starts a client span on the global tracer provider.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(InstrumentationName).Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

// EndSpan records err on span, if any, and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
