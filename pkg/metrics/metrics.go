package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ayumi_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// DashboardLookups counts dashboard reads by source (cache|fallback|error).
	DashboardLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ayumi_dashboard_lookups_total",
			Help: "Total number of daily dashboard lookups",
		},
		[]string{"source"},
	)

	// GenerationResults counts generation attempts by kind and result (success|failure|malformed).
	GenerationResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ayumi_generation_results_total",
			Help: "Total number of content generation attempts",
		},
		[]string{"kind", "provider", "result"},
	)

	// GenerationDuration measures how long generator calls take.
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ayumi_generation_duration_seconds",
			Help:    "Content generation latency",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
		},
		[]string{"kind", "provider"},
	)

	// DispatcherJobs counts background jobs by outcome (queued|duplicate|dropped|done|failed).
	DispatcherJobs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ayumi_dispatcher_jobs_total",
			Help: "Total number of background generation jobs",
		},
		[]string{"outcome"},
	)

	// DispatcherQueueDepth tracks jobs waiting for a worker.
	DispatcherQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ayumi_dispatcher_queue_depth",
			Help: "Number of generation jobs waiting in the queue",
		},
	)

	// MaintenanceRuns counts scheduled job executions by job and result.
	MaintenanceRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ayumi_maintenance_runs_total",
			Help: "Total number of scheduled maintenance runs",
		},
		[]string{"job", "result"},
	)
)
