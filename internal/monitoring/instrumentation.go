package monitoring

import (
	"strings"
	"time"

	"github.com/charlesng35/ayumi/pkg/metrics"
)

// Dashboard generation outcomes.
const (
	GenerationStored    = "success"
	GenerationMalformed = "malformed"
	GenerationDisabled  = "disabled"
	GenerationFailed    = "failure"
)

// RecordDashboardLookup counts a dashboard read by the source that served it.
func RecordDashboardLookup(source string) {
	source = normalizeLabel(source)
	metrics.DashboardLookups.WithLabelValues(source).Inc()

	module := CurrentModule()
	if module == nil {
		return
	}
	switch source {
	case "cache":
		module.stats.dashboard.hits.Add(1)
	case "fallback":
		module.stats.dashboard.fallbacks.Add(1)
	}
}

// RecordDashboardGeneration records one background generation attempt.
func RecordDashboardGeneration(dayKey, provider, result, message string) {
	result = normalizeLabel(result)
	metrics.GenerationResults.WithLabelValues("dashboard_store", normalizeLabel(provider), result).Inc()

	module := CurrentModule()
	if module == nil {
		return
	}
	now := time.Now()
	stats := &module.stats.dashboard
	switch result {
	case GenerationStored:
		stats.recordStored(dayKey, now)
		module.metrics.dashboardLastStored.Set(float64(now.Unix()))
	case GenerationMalformed:
		stats.recordFailure(&stats.malformed, dayKey, message, now)
	case GenerationDisabled:
		stats.disabled.Add(1)
	default:
		stats.recordFailure(&stats.failed, dayKey, message, now)
	}
}

// RecordMaintenanceRun records the completion of a maintenance job.
func RecordMaintenanceRun(job, result, message string, duration time.Duration) {
	job = normalizeLabel(job)
	result = normalizeLabel(result)
	metrics.MaintenanceRuns.WithLabelValues(job, result).Inc()

	module := CurrentModule()
	if module == nil {
		return
	}
	now := time.Now()
	module.metrics.maintenanceDuration.WithLabelValues(job).Observe(duration.Seconds())
	if result == "success" {
		module.metrics.maintenanceLastSuccess.WithLabelValues(job).Set(float64(now.Unix()))
	}
	module.stats.maintenanceEntry(job).record(result, strings.TrimSpace(message), duration, now)
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "unknown"
	}
	return value
}
