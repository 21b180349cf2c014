package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/charlesng35/ayumi/internal/models"
)

// Models lists every persistent type, in migration order.
func Models() []interface{} {
	return []interface{}{
		&models.CacheEntry{},
		&models.DailyContent{},
		&models.Highlight{},
		&models.JournalEntry{},
		&models.UserSettings{},
		&models.StatusCheck{},
	}
}

// AutoMigrate creates or updates the schema for all models.
func AutoMigrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("nil database handle")
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
