package monitoring

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

type statStore struct {
	dashboard   dashboardStats
	maintenance sync.Map // string -> *maintenanceStats
}

func newStatStore() *statStore {
	return &statStore{}
}

func (s *statStore) summary() Summary {
	summary := emptySummary()
	summary.Dashboard = s.dashboard.snapshot()
	s.maintenance.Range(func(key, value any) bool {
		summary.Maintenance.Jobs = append(summary.Maintenance.Jobs, value.(*maintenanceStats).snapshot(key.(string)))
		return true
	})
	sort.Slice(summary.Maintenance.Jobs, func(i, j int) bool {
		return summary.Maintenance.Jobs[i].Job < summary.Maintenance.Jobs[j].Job
	})
	return summary
}

func (s *statStore) maintenanceEntry(job string) *maintenanceStats {
	if existing, ok := s.maintenance.Load(job); ok {
		return existing.(*maintenanceStats)
	}
	entry, _ := s.maintenance.LoadOrStore(job, &maintenanceStats{})
	return entry.(*maintenanceStats)
}

type dashboardStats struct {
	stored    atomic.Uint64
	malformed atomic.Uint64
	failed    atomic.Uint64
	disabled  atomic.Uint64
	hits      atomic.Uint64
	fallbacks atomic.Uint64

	mu            sync.Mutex
	lastStoredDay string
	lastStoredAt  time.Time
	lastFailure   string
	lastFailureAt time.Time
	lastFailedDay string
}

func (d *dashboardStats) recordStored(dayKey string, at time.Time) {
	d.stored.Add(1)
	d.mu.Lock()
	d.lastStoredDay = dayKey
	d.lastStoredAt = at
	d.mu.Unlock()
}

func (d *dashboardStats) recordFailure(counter *atomic.Uint64, dayKey, message string, at time.Time) {
	counter.Add(1)
	d.mu.Lock()
	d.lastFailedDay = dayKey
	d.lastFailure = message
	d.lastFailureAt = at
	d.mu.Unlock()
}

func (d *dashboardStats) snapshot() DashboardSummary {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DashboardSummary{
		Stored:          d.stored.Load(),
		Malformed:       d.malformed.Load(),
		Failed:          d.failed.Load(),
		Disabled:        d.disabled.Load(),
		LastStoredDay:   d.lastStoredDay,
		LastStoredAt:    d.lastStoredAt,
		LastFailure:     d.lastFailure,
		LastFailureAt:   d.lastFailureAt,
		LastFailedDay:   d.lastFailedDay,
		CacheHits:       d.hits.Load(),
		FallbacksServed: d.fallbacks.Load(),
	}
}

type maintenanceStats struct {
	mu                  sync.Mutex
	lastStatus          string
	lastError           string
	lastRun             time.Time
	lastDuration        time.Duration
	lastSuccess         time.Time
	consecutiveFailures uint64
	totalRuns           uint64
}

func (m *maintenanceStats) snapshot(job string) MaintenanceJobSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return MaintenanceJobSummary{
		Job:                 job,
		LastStatus:          m.lastStatus,
		LastRunAt:           m.lastRun,
		LastDuration:        m.lastDuration,
		LastError:           m.lastError,
		ConsecutiveFailures: m.consecutiveFailures,
		LastSuccessAt:       m.lastSuccess,
		TotalRuns:           m.totalRuns,
	}
}

func (m *maintenanceStats) record(result, message string, duration time.Duration, now time.Time) {
	if duration < 0 {
		duration = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastStatus = result
	m.lastError = message
	m.lastRun = now
	m.lastDuration = duration
	m.totalRuns++

	if result == "success" {
		m.consecutiveFailures = 0
		m.lastSuccess = now
	} else {
		m.consecutiveFailures++
	}
}
