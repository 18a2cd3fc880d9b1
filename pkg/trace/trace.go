// Package trace sets up OpenTelemetry tracing for scenario runs.
package trace

import (
	"context"
	"os"
	"time"

	"github.com/yomorun/lambda-stream/core/ylog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name of every span this module creates.
const TracerName = "github.com/yomorun/lambda-stream"

// EndpointEnv enables tracing when set.
const EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"

// SetTracerProvider registers the global tracer provider for service.
// Spans are exported through OTLP/HTTP only if OTEL_EXPORTER_OTLP_ENDPOINT is set,
// otherwise the global no-op provider is left in place.
// The returned func flushes and stops the exporter.
func SetTracerProvider(ctx context.Context, service string) (func(context.Context), error) {
	if os.Getenv(EndpointEnv) == "" {
		ylog.Debug("tracing disabled", "env", EndpointEnv)
		return func(context.Context) {}, nil
	}

	exp, err := otlptracehttp.New(ctx, otlptracehttp.WithRetry(otlptracehttp.RetryConfig{Enabled: false}))
	if err != nil {
		return func(context.Context) {}, err
	}

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exp),
		tracesdk.WithSampler(tracesdk.AlwaysSample()),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	shutdown := func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			ylog.Warn("tracer provider shutdown", "err", err)
		}
	}

	return shutdown, nil
}

// Tracer returns the tracer of the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}
