// Package tracing configures OpenTelemetry trace export and HTTP instrumentation.
package tracing

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/JaimeStill/codynn/pkg/lifecycle"
)

const shutdownTimeout = 5 * time.Second

// Start installs a global tracer provider exporting to cfg.Endpoint and
// flushes it when the lifecycle shuts down. It is a no-op when tracing is disabled.
func Start(cfg *Config, version string, lc *lifecycle.Coordinator, logger *slog.Logger) error {
	if !cfg.Enabled {
		logger.Info("tracing disabled")
		return nil
	}

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	exporter, err := otlptracegrpc.New(lc.Context(), opts...)
	if err != nil {
		return fmt.Errorf("create trace exporter: %w", err)
	}

	tp := NewProvider(cfg, version, sdktrace.WithBatcher(exporter))

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("tracing enabled", "endpoint", cfg.Endpoint, "sample_ratio", cfg.SampleRatio)

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error("tracer provider shutdown failed", "error", err)
		}
	})

	return nil
}

// NewProvider builds a tracer provider carrying the service resource and a
// parent-based ratio sampler. Span processors are supplied by the caller.
func NewProvider(cfg *Config, version string, opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	res := resource.NewSchemaless(
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", version),
	)

	opts = append([]sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	}, opts...)

	return sdktrace.NewTracerProvider(opts...)
}

// Middleware wraps handlers in an otelhttp server span named "<operation> <METHOD>".
// Spans use the global tracer provider, which is a no-op until Start installs one.
func Middleware(operation string) func(http.Handler) http.Handler {
	return otelhttp.NewMiddleware(operation,
		otelhttp.WithSpanNameFormatter(func(op string, r *http.Request) string {
			return op + " " + r.Method
		}),
	)
}
