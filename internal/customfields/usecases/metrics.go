package usecases

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	_metricKeyValuesMigrated        = "values.migrated"
	_metricKeyValuesDeduplicated    = "values.deduplicated"
	_metricKeyColumnCleanupFailures = "column_config.cleanup_failures"
	_meterName                      = "customfields_server"
	_metricPrefix                   = "customfields"
)

type counters map[string]metric.Int64Counter

func newCounters(keys ...string) counters {
	meter := otel.Meter(_meterName)
	result := make(counters, len(keys))
	for _, key := range keys {
		counter, err := meter.Int64Counter(
			fmt.Sprintf("%s.%s", _metricPrefix, key),
			metric.WithDescription(fmt.Sprintf("customfields %s counter", key)),
		)
		if err != nil {
			continue
		}
		result[key] = counter
	}
	return result
}

func (c counters) add(ctx context.Context, key string, value int64, attrs ...attribute.KeyValue) {
	counter, ok := c[key]
	if !ok || value == 0 {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}
