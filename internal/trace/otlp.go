// Package trace records a presentation session as OpenTelemetry spans:
// one session span, with a child span for each slide while it is on screen.
package trace

import (
	"context"
	"net/url"

	"deckview/internal/config"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewProvider creates a tracer provider exporting to cfg.Endpoint over OTLP/HTTP.
// Returns nil if no endpoint is configured (disabled).
func NewProvider(ctx context.Context, cfg config.TracingConfig) (*sdktrace.TracerProvider, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx, endpointOptions(cfg)...)
	if err != nil {
		return nil, err
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "deckview"
	}
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	), nil
}

// endpointOptions accepts either a full URL, as OTEL_EXPORTER_OTLP_ENDPOINT
// carries, or a bare host:port. A URL's scheme decides TLS and its path, if
// any, replaces /v1/traces; Insecure only applies to host:port.
func endpointOptions(cfg config.TracingConfig) []otlptracehttp.Option {
	if u, err := url.Parse(cfg.Endpoint); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(cfg.Endpoint)}
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return opts
}
