package checks

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/charlesng35/ayumi/internal/database"
	"github.com/charlesng35/ayumi/internal/models"
	"github.com/charlesng35/ayumi/internal/monitoring"
)

const defaultDatabaseTimeout = 2 * time.Second

// Database pings db and verifies the daily content table exists. A reachable
// database without the schema degrades the probe: every dashboard read then
// serves fallback content.
func Database(db *gorm.DB, timeout time.Duration) monitoring.Check {
	return monitoring.NewCheck("database", func(ctx context.Context) monitoring.ProbeResult {
		start := time.Now()
		if db == nil {
			return monitoring.ProbeResult{Status: monitoring.StatusDown, Details: "database not configured"}
		}

		probeCtx, cancel := context.WithTimeout(ctx, chooseTimeout(timeout, defaultDatabaseTimeout))
		defer cancel()

		if err := database.Ping(probeCtx, db); err != nil {
			return monitoring.ResultFromError("database", err, time.Since(start))
		}
		if !db.WithContext(probeCtx).Migrator().HasTable(&models.DailyContent{}) {
			return monitoring.ProbeResult{
				Status:   monitoring.StatusDegraded,
				Details:  "schema not migrated",
				Duration: time.Since(start),
			}
		}
		return monitoring.ProbeResult{Status: monitoring.StatusUp, Duration: time.Since(start)}
	})
}

func chooseTimeout(provided, fallback time.Duration) time.Duration {
	if provided <= 0 {
		return fallback
	}
	return provided
}
