package models

import (
	"gorm.io/datatypes"
)

// UserSettings holds reading and reminder preferences for a user.
// Keys the API does not model explicitly are preserved in Extra.
type UserSettings struct {
	BaseModel

	UserID              string            `gorm:"size:128;not null;uniqueIndex" json:"user_id"`
	DefaultBibleVersion string            `gorm:"size:32;not null" json:"default_bible_version"`
	DefaultFont         string            `gorm:"size:64;not null" json:"default_font"`
	FontSize            int               `gorm:"not null" json:"font_size"`
	Theme               string            `gorm:"size:16;not null" json:"theme"`
	DailyReminder       bool              `json:"daily_reminder"`
	ReminderTime        string            `gorm:"size:5;not null" json:"reminder_time"`
	Language            string            `gorm:"size:16;not null" json:"language"`
	Extra               datatypes.JSONMap `json:"extra,omitempty"`
}

// TableName keeps the plural form stable across drivers.
func (UserSettings) TableName() string {
	return "user_settings"
}
