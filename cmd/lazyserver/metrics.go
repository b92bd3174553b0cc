// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// prometheus counters make the "adaptive strategies" of the core engine's
// indexable specialization observable from outside the process: which
// uniq strategy got chosen by input size, how often caches materialize,
// and how many async steps get scheduled.
var (
	cacheMaterializations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lazyserver_cache_materializations_total",
		Help: "Number of cache-based operator nodes materialized by pipeline requests.",
	})

	uniqStrategySelected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lazyserver_uniq_strategy_selected_total",
		Help: "Number of times each uniq() strategy was selected, by strategy name.",
	}, []string{"strategy"})

	asyncStepsScheduled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lazyserver_async_steps_scheduled_total",
		Help: "Number of async driver steps scheduled.",
	})

	pipelineRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lazyserver_pipeline_requests_total",
		Help: "Number of pipeline requests, by outcome.",
	}, []string{"outcome"})
)

func uniqStrategyForLength(n int) string {
	switch {
	case n < 40:
		return "rescan"
	case n < 800:
		return "array_cache"
	default:
		return "set_cache"
	}
}
