package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/ayumi/internal/generation"
)

func TestLoadConfigFromFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata"))
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "debug", cfg.Server.LogLevel)
	require.Equal(t, 45*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)

	require.Equal(t, "postgres", cfg.Database.Driver)
	require.Equal(t, "db.example.com", cfg.Database.Postgres.Host)
	require.Equal(t, "require", cfg.Database.Postgres.Options["sslmode"])

	require.True(t, cfg.Cache.Redis.Enabled)
	require.Equal(t, "redis.example.com:6380", cfg.Cache.Redis.Address)
	require.Equal(t, 5*time.Second, cfg.Cache.Redis.Timeout)

	require.Equal(t, "gateway", cfg.Generation.Provider)
	require.Equal(t, 45*time.Second, cfg.Generation.Timeout)
	require.Equal(t, 4096, cfg.Generation.MaxTokens)

	require.Equal(t, "America/New_York", cfg.Dashboard.Timezone)
	require.Equal(t, 4, cfg.Dashboard.Workers)
	require.Equal(t, 32, cfg.Dashboard.QueueSize)
	require.Equal(t, "10 0 * * *", cfg.Dashboard.WarmSchedule)
	require.Equal(t, 2*time.Second, cfg.Dashboard.LookupTimeout)
	require.Equal(t, 5*time.Minute, cfg.Dashboard.CacheTTL)

	require.True(t, cfg.Maintenance.Enabled)
	require.Equal(t, "@every 30m", cfg.Maintenance.PurgeSchedule)

	require.Equal(t, 250, cfg.RateLimit.Requests)
	require.Equal(t, 2*time.Minute, cfg.RateLimit.Window)
	require.Equal(t, 6, cfg.RateLimit.GenerationPerMinute)
	require.Equal(t, 3, cfg.RateLimit.GenerationBurst)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, 8001, cfg.Server.Port)
	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.Equal(t, "auto", cfg.Generation.Provider)
	require.Equal(t, "UTC", cfg.Dashboard.Timezone)
	require.Equal(t, "5 0 * * *", cfg.Dashboard.WarmSchedule)
	require.Equal(t, "@hourly", cfg.Maintenance.PurgeSchedule)
	require.Equal(t, 256, cfg.Scripture.ChapterCacheSize)
	require.True(t, cfg.Monitoring.Prometheus.Enabled)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("AYUMI_SERVER_PORT", "7000")
	t.Setenv("AYUMI_DASHBOARD_TIMEZONE", "Asia/Tokyo")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, 7000, cfg.Server.Port)
	require.Equal(t, "Asia/Tokyo", cfg.Dashboard.Timezone)
}

func TestLoadConfigExplicitFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
}

func TestDatabaseConnectionConfig(t *testing.T) {
	cfg := DatabaseConfig{
		Driver: "Postgres",
		Postgres: DBAuthConfig{
			Host:     "db",
			Port:     5432,
			Database: "ayumi",
			Username: "u",
			Password: "p",
		},
		MySQL: DBAuthConfig{Host: "ignored"},
	}

	conn := cfg.ConnectionConfig()
	require.Equal(t, "postgres", conn.Driver)
	require.Equal(t, "db", conn.Host)
	require.Equal(t, "ayumi", conn.Name)
	require.Equal(t, "u", conn.User)

	sqlite := DatabaseConfig{Driver: "sqlite", Path: "./data/x.sqlite", Postgres: DBAuthConfig{Host: "db"}}.ConnectionConfig()
	require.Empty(t, sqlite.Host)
	require.Equal(t, "./data/x.sqlite", sqlite.Path)
}

func TestGeneratorConfigAdapter(t *testing.T) {
	cfg := GenerationConfig{
		Provider:  " anthropic ",
		MaxTokens: 1024,
		Anthropic: AnthropicConfig{APIKey: " key ", Model: "m"},
	}

	out := cfg.GeneratorConfig()
	require.Equal(t, "anthropic", out.Provider)
	require.Equal(t, defaultGenerationTimeout, out.Timeout)
	require.Equal(t, "key", out.Anthropic.APIKey)
	require.Equal(t, 1024, out.MaxTokens)

	gen, err := generation.New(GenerationConfig{Provider: "static"}.GeneratorConfig())
	require.NoError(t, err)
	require.Equal(t, generation.ProviderStatic, gen.Name())
}

func TestDashboardAdapters(t *testing.T) {
	loc, err := DashboardConfig{}.Location()
	require.NoError(t, err)
	require.Equal(t, "UTC", loc.String())

	dispatcher := DashboardConfig{Workers: -1}.DispatcherConfig()
	require.Equal(t, defaultWorkers, dispatcher.Workers)
	require.Equal(t, defaultQueueSize, dispatcher.QueueSize)
}

func TestCacheConfigAdapter(t *testing.T) {
	cfg := CacheConfig{Redis: RedisCacheConfig{Address: " localhost:6379 ", KeyPrefix: " x: "}}
	out := cfg.RedisClientConfig()
	require.Equal(t, "localhost:6379", out.Address)
	require.Equal(t, "x:", out.KeyPrefix)
}
