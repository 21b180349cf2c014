package monitoring

import "time"

// Summary surfaces aggregated runtime state for operators.
type Summary struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Dashboard   DashboardSummary   `json:"dashboard"`
	Maintenance MaintenanceSummary `json:"maintenance"`
}

// DashboardSummary counts background generation outcomes since start.
type DashboardSummary struct {
	Stored          uint64    `json:"stored"`
	Malformed       uint64    `json:"malformed"`
	Failed          uint64    `json:"failed"`
	Disabled        uint64    `json:"disabled"`
	LastStoredDay   string    `json:"last_stored_day,omitempty"`
	LastStoredAt    time.Time `json:"last_stored_at,omitempty"`
	LastFailure     string    `json:"last_failure,omitempty"`
	LastFailureAt   time.Time `json:"last_failure_at,omitempty"`
	LastFailedDay   string    `json:"last_failed_day,omitempty"`
	CacheHits       uint64    `json:"cache_hits"`
	FallbacksServed uint64    `json:"fallbacks_served"`
}

type MaintenanceSummary struct {
	Jobs []MaintenanceJobSummary `json:"jobs"`
}

type MaintenanceJobSummary struct {
	Job                 string        `json:"job"`
	LastStatus          string        `json:"last_status"`
	LastRunAt           time.Time     `json:"last_run_at"`
	LastDuration        time.Duration `json:"last_duration"`
	LastError           string        `json:"last_error,omitempty"`
	ConsecutiveFailures uint64        `json:"consecutive_failures"`
	LastSuccessAt       time.Time     `json:"last_success_at"`
	TotalRuns           uint64        `json:"total_runs"`
}

// Snapshot returns a point-in-time summary from the process-wide module.
func Snapshot() Summary {
	return CurrentModule().Snapshot()
}

func emptySummary() Summary {
	return Summary{
		GeneratedAt: time.Now(),
		Maintenance: MaintenanceSummary{Jobs: []MaintenanceJobSummary{}},
	}
}
