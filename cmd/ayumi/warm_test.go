package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/ayumi/internal/dashboard"
	"github.com/charlesng35/ayumi/internal/database"
	"github.com/charlesng35/ayumi/internal/generation"
	"github.com/charlesng35/ayumi/internal/models"
)

func gatewayServer(t *testing.T, handler http.HandlerFunc) (url string, dbPath string, calls *atomic.Int32) {
	t.Helper()
	calls = &atomic.Int32{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server.URL, filepath.Join(t.TempDir(), "ayumi.sqlite"), calls
}

func storedDays(t *testing.T, dbPath string) []models.DailyContent {
	t.Helper()
	db, err := database.Open(database.Config{Driver: "sqlite", Path: dbPath})
	require.NoError(t, err)
	defer func() { require.NoError(t, database.Close(db)) }()

	var rows []models.DailyContent
	require.NoError(t, db.Find(&rows).Error)
	return rows
}

func TestWarm_StoresGeneratedDashboard(t *testing.T) {
	restoreMonitoring(t)
	url, dbPath, calls := gatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		text, _ := json.Marshal(dashboard.Fallback(time.Now()))
		_ = json.NewEncoder(w).Encode(map[string]string{"text": string(text)})
	})

	cfg := testConfig(t)
	cfg.Database.DSN = ""
	cfg.Database.Path = dbPath
	cfg.Generation.Provider = generation.ProviderGateway
	cfg.Generation.Gateway.URL = url

	require.NoError(t, warm(context.Background(), cfg, 10*time.Second))
	require.Equal(t, int32(1), calls.Load())
	require.Len(t, storedDays(t, dbPath), 1)

	// a stored day is not generated again
	restoreMonitoring(t)
	require.NoError(t, warm(context.Background(), cfg, 10*time.Second))
	require.Equal(t, int32(1), calls.Load())
}

func TestWarm_ReturnsGenerationFailure(t *testing.T) {
	restoreMonitoring(t)
	url, dbPath, calls := gatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"upstream unavailable"}`))
	})

	cfg := testConfig(t)
	cfg.Database.DSN = ""
	cfg.Database.Path = dbPath
	cfg.Generation.Provider = generation.ProviderGateway
	cfg.Generation.Gateway.URL = url

	err := warm(context.Background(), cfg, 10*time.Second)
	require.Error(t, err)
	require.ErrorIs(t, err, dashboard.ErrGenerationFailed)
	require.Contains(t, err.Error(), "upstream unavailable")
	require.Equal(t, int32(1), calls.Load())
	require.Empty(t, storedDays(t, dbPath))
}

func TestWarm_StaticProviderFails(t *testing.T) {
	restoreMonitoring(t)
	cfg := testConfig(t)

	err := warm(context.Background(), cfg, 5*time.Second)
	require.ErrorIs(t, err, generation.ErrGenerationDisabled)
}
