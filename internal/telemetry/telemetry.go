// Package telemetry configures OpenTelemetry tracing for the hopweight CLI.
package telemetry

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// ServiceName is reported as service.name on every exported span.
const ServiceName = "hopweight"

// Config selects the span exporter.
//
//   - Endpoint set: OTLP over HTTP to Endpoint.
//   - Stdout set: pretty-printed JSON spans written to Stdout.
//   - Neither: a no-op provider; spans are never recorded.
type Config struct {
	Endpoint string
	Stdout   io.Writer
}

// Provider bundles a tracer with the function that flushes and stops it.
type Provider struct {
	Tracer   trace.Tracer
	Shutdown func(context.Context) error
}

// Init builds a tracer provider for cfg. It does not register a global
// provider, so several command trees can coexist in one process.
func Init(ctx context.Context, cfg Config) (*Provider, error) {
	if cfg.Endpoint == "" && cfg.Stdout == nil {
		return &Provider{
			Tracer:   noop.NewTracerProvider().Tracer(ServiceName),
			Shutdown: func(context.Context) error { return nil },
		}, nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(semconv.ServiceName(ServiceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	var opt sdktrace.TracerProviderOption
	if cfg.Endpoint != "" {
		exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.Endpoint))
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		opt = sdktrace.WithBatcher(exporter)
	} else {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(cfg.Stdout), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout exporter: %w", err)
		}
		opt = sdktrace.WithSyncer(exporter)
	}

	tp := sdktrace.NewTracerProvider(opt, sdktrace.WithResource(res))

	return &Provider{Tracer: tp.Tracer(ServiceName), Shutdown: tp.Shutdown}, nil
}
