package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// LookupMetrics records single-constant reads as OpenTelemetry instruments,
// alongside the server spans.
type LookupMetrics struct {
	lookups metric.Int64Counter
}

// NewLookupMetrics creates the instruments on the global meter provider
func NewLookupMetrics() (*LookupMetrics, error) {
	meter := otel.Meter("constants-api")

	lookups, err := meter.Int64Counter(
		"constant.lookups",
		metric.WithDescription("Total number of single-constant lookups"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookups counter: %w", err)
	}

	return &LookupMetrics{lookups: lookups}, nil
}

// Record counts one lookup of key with result "found" or "not_found".
// A nil receiver records nothing.
func (m *LookupMetrics) Record(ctx context.Context, key, result string) {
	if m == nil {
		return
	}
	m.lookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("key", key),
		attribute.String("result", result),
	))
}
