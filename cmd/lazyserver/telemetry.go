// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package main

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/lazyseq/lazy/internal/obslog"
)

const tracerName = "github.com/lazyseq/lazy/cmd/lazyserver"

// telemetry bundles the tracer/meter lazyserver hands to its handlers, and
// the providers that must be shut down on exit. Grounded on
// kbukum-gokit's observability package (tracer.go/meter.go), scaled to one
// OTLP-HTTP exporter per signal instead of a pluggable set.
type telemetry struct {
	tracer     trace.Tracer
	meter      metric.Meter
	stageCount metric.Int64Counter
	traceProv  *sdktrace.TracerProvider
	metricProv *sdkmetric.MeterProvider
}

func setupTelemetry(ctx context.Context, cfg Config) (*telemetry, error) {
	traceOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.OTelEndpoint)}
	metricOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cfg.OTelEndpoint)}
	if cfg.OTelInsecure {
		traceOpts = append(traceOpts, otlptracehttp.WithInsecure())
		metricOpts = append(metricOpts, otlpmetrichttp.WithInsecure())
	}

	traceExp, err := otlptracehttp.New(ctx, traceOpts...)
	if err != nil {
		return nil, fmt.Errorf("lazyserver: creating trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(traceExp))
	otel.SetTracerProvider(tp)

	metricExp, err := otlpmetrichttp.New(ctx, metricOpts...)
	if err != nil {
		return nil, fmt.Errorf("lazyserver: creating metric exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)))
	otel.SetMeterProvider(mp)

	meter := mp.Meter(tracerName)
	stageCount, err := meter.Int64Counter(
		"lazyserver.pipeline.stages",
		metric.WithDescription("number of pipeline stages executed"),
	)
	if err != nil {
		return nil, fmt.Errorf("lazyserver: creating stage counter: %w", err)
	}

	obslog.Logger().Info().Str("endpoint", cfg.OTelEndpoint).Msg("telemetry initialized")

	return &telemetry{
		tracer:     otel.Tracer(tracerName),
		meter:      meter,
		stageCount: stageCount,
		traceProv:  tp,
		metricProv: mp,
	}, nil
}

func (t *telemetry) shutdown(ctx context.Context) {
	if t.traceProv != nil {
		_ = t.traceProv.Shutdown(ctx)
	}
	if t.metricProv != nil {
		_ = t.metricProv.Shutdown(ctx)
	}
}
