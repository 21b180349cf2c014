package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/ayumi/internal/app"
	"github.com/charlesng35/ayumi/internal/handlers/testutil"
)

func TestMonitoringSummary(t *testing.T) {
	env := testutil.NewEnv(t)

	w := env.Request(http.MethodGet, "/api/monitoring/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Summary    map[string]any `json:"summary"`
		Prometheus struct {
			Enabled  bool   `json:"enabled"`
			Endpoint string `json:"endpoint"`
		} `json:"prometheus"`
	}
	testutil.DecodeInto(t, testutil.DecodeResponse(t, w).Data, &data)
	require.NotNil(t, data.Summary)
	require.True(t, data.Prometheus.Enabled)
	require.Equal(t, "/metrics", data.Prometheus.Endpoint)
}

func TestMonitoringSummary_DisabledWhenMonitoringOff(t *testing.T) {
	env := testutil.NewEnv(t, testutil.WithConfig(func(cfg *app.Config) {
		cfg.Monitoring.Health.Enabled = false
		cfg.Monitoring.Prometheus.Enabled = false
	}))

	w := env.Request(http.MethodGet, "/api/monitoring/summary", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
