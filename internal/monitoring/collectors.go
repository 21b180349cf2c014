package monitoring

import "github.com/prometheus/client_golang/prometheus"

type collectors struct {
	maintenanceDuration    *prometheus.HistogramVec
	maintenanceLastSuccess *prometheus.GaugeVec
	dashboardLastStored    prometheus.Gauge
	probeStatus            *prometheus.GaugeVec
}

func newCollectors(namespace string) *collectors {
	return &collectors{
		maintenanceDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "maintenance",
			Name:      "duration_seconds",
			Help:      "Duration of maintenance jobs.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
		}, []string{"job"}),
		maintenanceLastSuccess: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "maintenance",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful maintenance run.",
		}, []string{"job"}),
		dashboardLastStored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dashboard",
			Name:      "last_stored_timestamp_seconds",
			Help:      "Unix time daily content was last stored.",
		}),
		probeStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "probe_status",
			Help:      "Last probe outcome per component: 1 up, 0.5 degraded, 0 down.",
		}, []string{"component"}),
	}
}

func (c *collectors) all() []prometheus.Collector {
	return []prometheus.Collector{
		c.maintenanceDuration,
		c.maintenanceLastSuccess,
		c.dashboardLastStored,
		c.probeStatus,
	}
}

func (c *collectors) observeProbe(result ProbeResult) {
	value := 0.0
	switch result.Status {
	case StatusUp:
		value = 1
	case StatusDegraded:
		value = 0.5
	}
	c.probeStatus.WithLabelValues(result.Component).Set(value)
}
