package models

import (
	"time"

	"gorm.io/datatypes"
)

// DailyContent stores the generated dashboard document for one calendar day.
// Rows are written by upsert on DayKey, so a day holds at most one document.
type DailyContent struct {
	BaseModel

	DayKey      string         `gorm:"size:10;not null;uniqueIndex" json:"day_key"`
	Payload     datatypes.JSON `gorm:"not null" json:"payload"`
	Provider    string         `gorm:"size:64" json:"provider"`
	GeneratedAt time.Time      `json:"generated_at"`
}
