package app

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	anthropicKeyEnv      = "ANTHROPIC_API_KEY"
	defaultWarmSchedule  = "5 0 * * *"
	defaultPurgeSchedule = "@hourly"
)

// ApplyRuntimeDefaults fills settings that may come from the wider environment
// and repairs values that would otherwise leave the service unusable. It
// returns the keys it changed so callers can log them without exposing values.
func ApplyRuntimeDefaults(cfg *Config) (map[string]bool, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	applied := make(map[string]bool)

	if strings.TrimSpace(cfg.Generation.Anthropic.APIKey) == "" {
		if key := strings.TrimSpace(os.Getenv(anthropicKeyEnv)); key != "" {
			cfg.Generation.Anthropic.APIKey = key
			applied["generation.anthropic.api_key"] = true
		}
	}

	if strings.TrimSpace(cfg.Dashboard.Timezone) == "" {
		cfg.Dashboard.Timezone = "UTC"
		applied["dashboard.timezone"] = true
	}
	if _, err := cfg.Dashboard.Location(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Dashboard.WarmSchedule) == "" {
		cfg.Dashboard.WarmSchedule = defaultWarmSchedule
		applied["dashboard.warm_schedule"] = true
	}
	if strings.TrimSpace(cfg.Maintenance.PurgeSchedule) == "" {
		cfg.Maintenance.PurgeSchedule = defaultPurgeSchedule
		applied["maintenance.purge_schedule"] = true
	}

	if cfg.RateLimit.Requests > 0 && cfg.RateLimit.Window <= 0 {
		cfg.RateLimit.Window = time.Minute
		applied["rate_limit.window"] = true
	}

	return applied, nil
}
