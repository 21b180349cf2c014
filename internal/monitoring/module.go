package monitoring

import (
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options control monitoring module configuration.
type Options struct {
	// Namespace configures the Prometheus namespace. Defaults to "ayumi".
	Namespace string
	// ExcludeDefaultGatherer serves only the module registry when true. The
	// default gatherer holds the request and generation metrics from pkg/metrics
	// plus the Go and process collectors.
	ExcludeDefaultGatherer bool
}

// Module coordinates Prometheus collectors, health probes, and summary state.
type Module struct {
	registry  *prometheus.Registry
	gatherers prometheus.Gatherers
	metrics   *collectors
	stats     *statStore
	health    *HealthManager
}

// NewModule constructs a monitoring module with its own Prometheus registry.
func NewModule(opts Options) (*Module, error) {
	namespace := opts.Namespace
	if namespace == "" {
		namespace = "ayumi"
	}

	registry := prometheus.NewRegistry()
	metrics := newCollectors(namespace)
	for _, collector := range metrics.all() {
		if err := registry.Register(collector); err != nil {
			return nil, err
		}
	}

	gatherers := prometheus.Gatherers{registry}
	if !opts.ExcludeDefaultGatherer {
		gatherers = append(gatherers, prometheus.DefaultGatherer)
	}

	module := &Module{
		registry:  registry,
		gatherers: gatherers,
		metrics:   metrics,
		stats:     newStatStore(),
		health:    NewHealthManager(),
	}
	module.health.observe = metrics.observeProbe
	return module, nil
}

// Registry exposes the module's Prometheus registry.
func (m *Module) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the module registry merged with the default gatherer.
func (m *Module) Handler() http.Handler {
	if m == nil || m.registry == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return promhttp.HandlerFor(m.gatherers, promhttp.HandlerOpts{})
}

// Health exposes the health manager responsible for liveness and readiness probes.
func (m *Module) Health() *HealthManager {
	if m == nil {
		return nil
	}
	return m.health
}

// Snapshot returns the module's current summary.
func (m *Module) Snapshot() Summary {
	if m == nil || m.stats == nil {
		return emptySummary()
	}
	return m.stats.summary()
}

var globalModule atomic.Pointer[Module]

// SetModule configures the process-wide module used by the Record helpers.
func SetModule(module *Module) {
	if module == nil {
		return
	}
	globalModule.Store(module)
}

// CurrentModule returns the process-wide monitoring module, or nil when unset.
func CurrentModule() *Module {
	return globalModule.Load()
}
