// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
)

func testTelemetry(t *testing.T) *telemetry {
	t.Helper()
	meter := noop.NewMeterProvider().Meter("test")
	counter, err := meter.Int64Counter("test.stages")
	require.NoError(t, err)
	return &telemetry{
		tracer:     otel.Tracer("test"),
		meter:      meter,
		stageCount: counter,
	}
}

func TestRunPipelineMapFilterSort(t *testing.T) {
	req := pipelineRequest{
		Input: []float64{3, 1, 2, 4},
		Stages: []stage{
			{Op: "map", Factor: 2, Add: 0},
			{Op: "filter", Cmp: "gt", Value: 3},
			{Op: "sort", Order: "asc"},
		},
	}

	got := runPipeline(context.Background(), req, testTelemetry(t))
	require.Equal(t, []float64{4, 6, 8}, got)
}

func TestRunPipelineUniq(t *testing.T) {
	req := pipelineRequest{
		Input:  []float64{1, 1, 2, 2, 3},
		Stages: []stage{{Op: "uniq"}},
	}

	got := runPipeline(context.Background(), req, testTelemetry(t))
	require.Equal(t, []float64{1, 2, 3}, got)
}

func TestRunPipelineTakeDrop(t *testing.T) {
	req := pipelineRequest{
		Input: []float64{1, 2, 3, 4, 5},
		Stages: []stage{
			{Op: "drop", N: 1},
			{Op: "take", N: 2},
		},
	}

	got := runPipeline(context.Background(), req, testTelemetry(t))
	require.Equal(t, []float64{2, 3}, got)
}
