// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package telemetry wires the OpenTelemetry trace pipeline.
//
// HTTP spans come from otelchi in the router and query spans from otelpgx in
// the pool. Both use the global provider installed by [Setup].
package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const shutdownTimeout = 5 * time.Second

// Settings describes the service identity and collector endpoint.
type Settings struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	CollectorURL   string
}

// ShutdownFunc flushes and stops the installed providers.
type ShutdownFunc func(ctx context.Context)

/*
Setup installs a global tracer provider exporting over OTLP gRPC.

When CollectorURL is empty nothing is installed, the global no-op provider
stays in place and the returned shutdown is a no-op.
*/
func Setup(ctx context.Context, settings Settings, logger *slog.Logger) (ShutdownFunc, error) {
	if settings.CollectorURL == "" {
		logger.Info("telemetry_disabled", slog.String("reason", "no collector url"))
		return func(context.Context) {}, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(settings.ServiceName),
			semconv.ServiceVersion(settings.ServiceVersion),
			semconv.DeploymentEnvironment(settings.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: resource: %w", err)
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(settings.CollectorURL),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	logger.Info("telemetry_enabled", slog.String("collector", settings.CollectorURL))

	return func(ctx context.Context) {
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry_shutdown_failed", slog.Any("error", err))
		}
	}, nil
}
