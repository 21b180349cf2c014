package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/ayumi/internal/app"
	"github.com/charlesng35/ayumi/internal/handlers/testutil"
	"github.com/charlesng35/ayumi/internal/monitoring"
)

type healthBody struct {
	Success bool            `json:"success"`
	Status  string          `json:"status"`
	Checks  json.RawMessage `json:"checks"`
}

func TestHealth_Endpoints(t *testing.T) {
	env := testutil.NewEnv(t)

	for _, path := range []string{"/health", "/health/live", "/health/ready", "/api/health/ready"} {
		w := env.Request(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)

		var body healthBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.True(t, body.Success, path)
	}
}

func TestHealth_ReadyFailsWhenCheckDown(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Module.Health().RegisterReadiness(monitoring.NewCheck("broken", func(context.Context) monitoring.ProbeResult {
		return monitoring.ProbeResult{Status: monitoring.StatusDown, Details: "unreachable"}
	}))

	w := env.Request(http.MethodGet, "/health/ready", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = env.Request(http.MethodGet, "/health/live", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHealth_Disabled(t *testing.T) {
	env := testutil.NewEnv(t, testutil.WithConfig(func(cfg *app.Config) {
		cfg.Monitoring.Health.Enabled = false
	}))

	w := env.Request(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	var body healthBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "disabled", body.Status)
}
