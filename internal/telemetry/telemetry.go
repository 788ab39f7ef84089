// Package telemetry configures OpenTelemetry tracing for the hello server.
//
// Tracing is opt-in: when OTEL_EXPORTER_OTLP_ENDPOINT is unset the global
// no-op provider stays installed and Handler only adds the wrapping cost of
// otelhttp. When it is set, spans are batched to that endpoint over OTLP/gRPC.
// The exporter reads the remaining OTEL_EXPORTER_OTLP_* variables itself.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/Tyrowin/hello-server/internal/server"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	// ServiceName is reported when OTEL_SERVICE_NAME is not set.
	ServiceName = "hello-server"

	// EndpointEnvVar enables trace export when non-empty.
	EndpointEnvVar = "OTEL_EXPORTER_OTLP_ENDPOINT"

	notFoundSpanName = "catch-all"
)

// ShutdownFunc flushes and stops whatever Setup installed.
type ShutdownFunc func(context.Context) error

// RouteMatcher resolves a request to a named route.
type RouteMatcher interface {
	Match(method, path string) (server.Route, bool)
}

// Enabled reports whether an OTLP endpoint is configured in the environment.
func Enabled() bool {
	return os.Getenv(EndpointEnvVar) != ""
}

// Setup installs the W3C propagators and, when Enabled, an SDK tracer
// provider exporting over OTLP/gRPC. The returned ShutdownFunc is never nil.
func Setup(ctx context.Context) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !Enabled() {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create otlp trace exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(attribute.String("service.name", ServiceName)),
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
	)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("build trace resource: %w", err), exporter.Shutdown(ctx))
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	log.Printf("Exporting traces to %s", os.Getenv(EndpointEnvVar))

	return provider.Shutdown, nil
}

// Handler wraps next with otelhttp. Spans are named after the matched route,
// or "catch-all" for requests that fall through to the 404 handler.
func Handler(next http.Handler, routes RouteMatcher) http.Handler {
	return otelhttp.NewHandler(next, ServiceName,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return SpanName(routes, r)
		}),
	)
}

// SpanName returns the span name Handler uses for r.
func SpanName(routes RouteMatcher, r *http.Request) string {
	if route, ok := routes.Match(r.Method, r.URL.EscapedPath()); ok {
		return route.Method + " " + route.Path
	}
	return notFoundSpanName
}
