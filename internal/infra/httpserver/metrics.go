package httpserver

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	_instrumentationName = "customfields-server"
	_metricPrefix        = "customfields_server"
)

// Path segments that are followed by a caller chosen identifier.
var _routeParameters = map[string]string{
	"models":  "{model}",
	"records": "{record}",
	"pages":   "{page}",
	"fields":  "{id}",
}

type requestMetrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	active   metric.Int64UpDownCounter
}

func newRequestMetrics(meter metric.Meter) (*requestMetrics, error) {
	duration, err := meter.Float64Histogram(
		metricName("http.request.duration.seconds"),
		metric.WithDescription("Duration of HTTP requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		return nil, err
	}

	total, err := meter.Int64Counter(
		metricName("http.requests.total"),
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	active, err := meter.Int64UpDownCounter(
		metricName("http.requests.active"),
		metric.WithDescription("Number of HTTP requests currently being processed"),
	)
	if err != nil {
		return nil, err
	}

	return &requestMetrics{duration: duration, total: total, active: active}, nil
}

func metricName(name string) string {
	return fmt.Sprintf("%s.%s", _metricPrefix, name)
}

// MetricsMiddleware records request count, latency and in-flight requests
// per method and route template.
func MetricsMiddleware() func(http.Handler) http.Handler {
	metrics, err := newRequestMetrics(otel.GetMeterProvider().Meter(_instrumentationName))
	if err != nil {
		panic(err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			inFlight := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.route", normalizeEndpoint(r.URL.Path)),
			)

			metrics.active.Add(r.Context(), 1, inFlight)
			defer metrics.active.Add(r.Context(), -1, inFlight)

			wrappedWriter := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrappedWriter, r)

			completed := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.route", normalizeEndpoint(r.URL.Path)),
				attribute.Int("http.status_code", wrappedWriter.statusCode),
			)
			metrics.duration.Record(r.Context(), time.Since(start).Seconds(), completed)
			metrics.total.Add(r.Context(), 1, completed)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// normalizeEndpoint turns a request path into its route template, e.g.
// /v1/models/customer/fields becomes /v1/models/{model}/fields.
func normalizeEndpoint(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "root"
	}

	segments := strings.Split(trimmed, "/")
	for i := 1; i < len(segments); i++ {
		if placeholder, ok := _routeParameters[segments[i-1]]; ok {
			segments[i] = placeholder
		}
	}
	return "/" + strings.Join(segments, "/")
}
