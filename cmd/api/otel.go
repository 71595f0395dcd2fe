package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"customfields-server/internal/infra/node"

	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

type ShutdownFunc func() error

const (
	_serviceName     = "customfields-server"
	_endpointEnvVar  = "CUSTOMFIELDS_SERVER_OTELCOL_ENDPOINT"
	_defaultEndpoint = "localhost:4317"
	_collectPeriod   = 30 * time.Second
	_collectTimeout  = 35 * time.Second
	_minimumInterval = time.Minute
)

// Milliseconds. Partitioning scans over large models land in the upper buckets.
var _histogramBuckets = []float64{5, 10, 25, 50, 75, 100, 250, 500, 750, 1000, 2500, 5000, 7500, 10000, 25000, 50000, 100000}

func startOTel(info node.Info) ShutdownFunc {
	slog.Info("starting OTel providers", slog.String("endpoint", collectorEndpoint()))
	shutdown, err := otelStart(context.Background(), serviceResource(info))
	if err != nil {
		panic(err)
	}

	return shutdown
}

func collectorEndpoint() string {
	if value, ok := os.LookupEnv(_endpointEnvVar); ok {
		return value
	}
	return _defaultEndpoint
}

func serviceResource(info node.Info) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(_serviceName),
		semconv.ServiceVersionKey.String(info.Version),
		semconv.ServiceInstanceIDKey.String(info.ID),
		semconv.HostNameKey.String(info.Hostname),
	)
}

func otelStart(ctx context.Context, res *resource.Resource) (ShutdownFunc, error) {
	meterProvider, err := startMetricsProvider(ctx, res)
	if err != nil {
		return nil, err
	}

	tracerProvider, err := startTraceProvider(ctx, res)
	if err != nil {
		return nil, errors.Join(err, meterProvider.Shutdown(ctx))
	}

	return func() error {
		return errors.Join(
			meterProvider.Shutdown(ctx),
			tracerProvider.Shutdown(ctx),
		)
	}, nil
}

func startTraceProvider(ctx context.Context, res *resource.Resource) (*trace.TracerProvider, error) {
	exp, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(collectorEndpoint()),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	return tp, nil
}

func startMetricsProvider(ctx context.Context, res *resource.Resource) (*metric.MeterProvider, error) {
	exp, err := otlpmetricgrpc.New(
		ctx,
		otlpmetricgrpc.WithEndpoint(collectorEndpoint()),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	mp := metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(
			metric.NewPeriodicReader(
				exp,
				metric.WithTimeout(_collectTimeout),
				metric.WithInterval(_collectPeriod))),
		metric.WithView(metric.NewView(
			metric.Instrument{
				Name: "*",
				Kind: metric.InstrumentKindHistogram,
			},
			metric.Stream{
				Aggregation: metric.AggregationExplicitBucketHistogram{
					Boundaries: _histogramBuckets,
				},
			},
		)),
	)
	otel.SetMeterProvider(mp)

	if err := runtime.Start(runtime.WithMinimumReadMemStatsInterval(_minimumInterval)); err != nil {
		return nil, errors.Join(err, mp.Shutdown(ctx))
	}
	return mp, nil
}
