// Package metrics exposes the Prometheus instruments the scene and
// server layers record into. Collectors are registered on the default
// registry and served by the facade's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "algoview_graph_mutations_total",
		Help: "Graph mutation attempts, labelled by operation and outcome.",
	}, []string{"op", "outcome"})

	AlgorithmRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "algoview_algorithm_runs_total",
		Help: "Algorithm runs started, labelled by algorithm kind.",
	}, []string{"algorithm"})

	TraceEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "algoview_trace_events_total",
		Help: "Trace events produced by algorithm runs, labelled by kind.",
	}, []string{"algorithm"})

	UndoTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "algoview_history_undo_total",
		Help: "Undo operations that applied.",
	})

	RedoTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "algoview_history_redo_total",
		Help: "Redo operations that applied.",
	})

	HistoryDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "algoview_history_depth",
		Help: "Current size of the undo stack.",
	})

	PlaybackStepsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "algoview_playback_manual_steps_total",
		Help: "Manual playback cursor movements (steps and jumps).",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "algoview_http_request_duration_ms",
		Help:    "HTTP request latency in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
	}, []string{"route"})
)

// MutationOutcome converts a mutator's applied flag to the metric
// label value.
func MutationOutcome(applied bool) string {
	if applied {
		return "applied"
	}

	return "skipped"
}
