package app

import (
	"strings"
	"time"

	"github.com/charlesng35/ayumi/internal/dashboard"
	"github.com/charlesng35/ayumi/internal/database"
	"github.com/charlesng35/ayumi/internal/generation"
)

const (
	defaultGenerationTimeout = 60 * time.Second
	defaultWorkers           = 2
	defaultQueueSize         = 16
)

// ConnectionConfig maps the configured driver section onto database.Config.
func (c DatabaseConfig) ConnectionConfig() database.Config {
	cfg := database.Config{
		Driver:          strings.ToLower(strings.TrimSpace(c.Driver)),
		Path:            c.Path,
		DSN:             strings.TrimSpace(c.DSN),
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
		LogQueries:      c.LogQueries,
	}

	var auth DBAuthConfig
	switch cfg.Driver {
	case "postgres", "postgresql":
		auth = c.Postgres
	case "mysql", "mariadb":
		auth = c.MySQL
	default:
		return cfg
	}
	cfg.Host = auth.Host
	cfg.Port = auth.Port
	cfg.Name = auth.Database
	cfg.User = auth.Username
	cfg.Password = auth.Password
	cfg.Options = auth.Options
	return cfg
}

// GeneratorConfig converts the generation section into the generation package representation.
func (c GenerationConfig) GeneratorConfig() generation.Config {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultGenerationTimeout
	}
	return generation.Config{
		Provider:  strings.TrimSpace(c.Provider),
		Timeout:   timeout,
		MaxTokens: c.MaxTokens,
		Anthropic: generation.AnthropicConfig{
			APIKey:  strings.TrimSpace(c.Anthropic.APIKey),
			Model:   strings.TrimSpace(c.Anthropic.Model),
			BaseURL: strings.TrimSpace(c.Anthropic.BaseURL),
			Version: strings.TrimSpace(c.Anthropic.Version),
		},
		Gateway: generation.GatewayConfig{
			URL:   strings.TrimSpace(c.Gateway.URL),
			Token: c.Gateway.Token,
		},
	}
}

// EffectiveTimeout returns the per-call generation timeout.
func (c GenerationConfig) EffectiveTimeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultGenerationTimeout
	}
	return c.Timeout
}

// Location resolves the content timezone. An empty name means UTC.
func (c DashboardConfig) Location() (*time.Location, error) {
	return dashboard.LoadLocation(c.Timezone)
}

// DispatcherConfig sizes the background generation pool.
func (c DashboardConfig) DispatcherConfig() dashboard.DispatcherConfig {
	cfg := dashboard.DispatcherConfig{Workers: c.Workers, QueueSize: c.QueueSize}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	return cfg
}
