// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package main

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/lazyseq/lazy"
	"github.com/lazyseq/lazy/internal/scheduler"
)

var (
	validatorOnce sync.Once
	structValid   *validator.Validate
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		structValid = validator.New(validator.WithRequiredStructEnabled())
	})
	return structValid
}

// stage is one entry of the pipeline request DSL: a map of op name to the
// arguments it needs. Only the fields relevant to Op are read.
type stage struct {
	Op     string  `json:"op" validate:"required,oneof=map filter take drop sort reverse uniq"`
	Factor float64 `json:"factor"`
	Add    float64 `json:"add"`
	Value  float64 `json:"value"`
	Cmp    string  `json:"cmp" validate:"omitempty,oneof=gt gte lt lte eq"`
	N      int     `json:"n"`
	Order  string  `json:"order" validate:"omitempty,oneof=asc desc"`
}

type pipelineRequest struct {
	Input  []float64 `json:"input" validate:"required"`
	Stages []stage   `json:"stages" validate:"dive"`
}

type pipelineResponse struct {
	Result []float64 `json:"result"`
}

// runPipeline folds the request's input slice through each stage of the
// DSL in order, the core engine doing all the actual work — handlers.go
// only translates JSON into lazy calls and back.
func runPipeline(ctx context.Context, req pipelineRequest, t *telemetry) []float64 {
	seq := lazy.Sequence[float64](lazy.FromSlice(req.Input))

	for _, st := range req.Stages {
		t.stageCount.Add(ctx, 1)
		switch st.Op {
		case "map":
			seq = lazy.Map[float64, float64](seq, func(v float64, _ int) float64 {
				return v*st.Factor + st.Add
			})
		case "filter":
			seq = seq.Filter(func(v float64) bool { return compare(v, st.Cmp, st.Value) })
		case "take":
			seq = seq.Take(st.N)
		case "drop":
			seq = seq.Drop(st.N)
		case "sort":
			cacheMaterializations.Inc()
			seq = seq.SortBy(func(a, b float64) int {
				if st.Order == "desc" {
					a, b = b, a
				}
				return lazy.DefaultCompare(a, b)
			})
		case "reverse":
			seq = seq.Reverse()
		case "uniq":
			if idx, ok := seq.(lazy.Indexable[float64]); ok {
				uniqStrategySelected.WithLabelValues(uniqStrategyForLength(idx.Len())).Inc()
			}
			seq = lazy.Uniq[float64](seq)
		}
	}

	return lazy.ToArray[float64](seq)
}

func compare(v float64, cmp string, target float64) bool {
	switch cmp {
	case "gt":
		return v > target
	case "gte":
		return v >= target
	case "lt":
		return v < target
	case "lte":
		return v <= target
	case "eq":
		return v == target
	default:
		return true
	}
}

func handlePipeline(t *telemetry) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := t.tracer.Start(c.Request.Context(), "pipeline.run")
		defer span.End()

		var req pipelineRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			pipelineRequests.WithLabelValues("bad_request").Inc()
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := getValidator().Struct(req); err != nil {
			pipelineRequests.WithLabelValues("invalid").Inc()
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		result := runPipeline(ctx, req, t)
		pipelineRequests.WithLabelValues("ok").Inc()
		c.JSON(http.StatusOK, pipelineResponse{Result: result})
	}
}

// handlePipelineStream drives the same pipeline result through the async
// driver and emits one Server-Sent-Event per element, the way httpfeed
// turns an HTTP body into a lazy.StreamSequence in reverse.
func handlePipelineStream(t *telemetry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req pipelineRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := runPipeline(c.Request.Context(), req, t)
		source := lazy.Sequence[float64](lazy.FromSlice(result))
		asyncSeq, err := lazy.Async[float64](source, scheduler.Immediate{})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")

		asyncSeq.Each(func(v float64, i int) bool {
			asyncStepsScheduled.Inc()
			c.SSEvent("value", v)
			c.Writer.Flush()
			return true
		})
	}
}

func handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "lazyserver",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
