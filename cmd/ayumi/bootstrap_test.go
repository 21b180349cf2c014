package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/charlesng35/ayumi/internal/app"
	"github.com/charlesng35/ayumi/internal/database"
	"github.com/charlesng35/ayumi/internal/generation"
	"github.com/charlesng35/ayumi/internal/handlers"
	"github.com/charlesng35/ayumi/internal/models"
	"github.com/charlesng35/ayumi/internal/monitoring"
)

func testConfig(t *testing.T) *app.Config {
	t.Helper()
	t.Setenv("ANTHROPIC_API_KEY", "")

	cfg, err := app.LoadConfig(t.TempDir())
	require.NoError(t, err)
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = database.MemoryDSN(strings.ReplaceAll(uuid.NewString(), "-", ""))
	cfg.Generation.Provider = generation.ProviderStatic
	_, err = app.ApplyRuntimeDefaults(cfg)
	require.NoError(t, err)
	return cfg
}

func restoreMonitoring(t *testing.T) {
	t.Helper()
	previous := monitoring.CurrentModule()
	t.Cleanup(func() { monitoring.SetModule(previous) })
}

func TestBootstrapRuntime_ServesFallbackDashboard(t *testing.T) {
	restoreMonitoring(t)
	cfg := testConfig(t)

	stack, err := bootstrapRuntime(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, stack.Shutdown(ctx, zap.NewNop()))
	})

	require.Equal(t, generation.ProviderStatic, stack.Generator.Name())
	require.Nil(t, stack.Redis)
	require.True(t, stack.Scheduler.Enabled())

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	w := httptest.NewRecorder()
	stack.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "fallback", w.Header().Get(handlers.HeaderContentSource))
	require.NotEmpty(t, w.Header().Get(handlers.HeaderDayKey))

	req = httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	w = httptest.NewRecorder()
	stack.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Contains(t, w.Body.String(), "generation disabled")

	req = httptest.NewRequest(http.MethodGet, "/health/live", nil)
	w = httptest.NewRecorder()
	stack.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestBootstrapRuntime_RedisUnavailableFallsBack(t *testing.T) {
	restoreMonitoring(t)
	cfg := testConfig(t)
	cfg.Cache.Redis.Enabled = true
	cfg.Cache.Redis.Address = "127.0.0.1:1"
	cfg.Cache.Redis.Timeout = 200 * time.Millisecond

	stack, err := bootstrapRuntime(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = stack.Shutdown(context.Background(), zap.NewNop()) })

	require.Nil(t, stack.Redis)
}

func TestBootstrapRuntime_InvalidDatabase(t *testing.T) {
	restoreMonitoring(t)
	cfg := testConfig(t)
	cfg.Database.Driver = "oracle"

	_, err := bootstrapRuntime(context.Background(), cfg, zap.NewNop())
	require.Error(t, err)
}

func TestRuntimeStack_ShutdownNil(t *testing.T) {
	var stack *runtimeStack
	require.NoError(t, stack.Shutdown(context.Background(), zap.NewNop()))
}

func TestLoadApplicationConfig(t *testing.T) {
	_, err := loadApplicationConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "does not exist")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9191\n"), 0o600))

	cfg, err := loadApplicationConfig(path)
	require.NoError(t, err)
	require.Equal(t, 9191, cfg.Server.Port)

	cfg, err = loadApplicationConfig(dir)
	require.NoError(t, err)
	require.Equal(t, 9191, cfg.Server.Port)
}

func TestLoadEnvFile(t *testing.T) {
	require.NoError(t, loadEnvFile(""))
	require.NoError(t, loadEnvFile(filepath.Join(t.TempDir(), ".env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("AYUMI_TEST_ENV_FILE=loaded\n"), 0o600))
	t.Setenv("AYUMI_TEST_ENV_FILE", "")
	require.NoError(t, os.Unsetenv("AYUMI_TEST_ENV_FILE"))

	require.NoError(t, loadEnvFile(path))
	require.Equal(t, "loaded", os.Getenv("AYUMI_TEST_ENV_FILE"))
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()

	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	require.Subset(t, names, []string{"serve", "warm", "migrate"})
	require.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestMigrateCommand(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "data", "ayumi.sqlite")
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("database:\n  driver: sqlite\n  path: "+filepath.ToSlash(dbPath)+"\n"), 0o600))

	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config", configPath, "--env-file", "", "migrate"})
	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "migrations applied")

	db, err := database.Open(database.Config{Driver: "sqlite", Path: dbPath})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.True(t, db.Migrator().HasTable(&models.DailyContent{}))
}
