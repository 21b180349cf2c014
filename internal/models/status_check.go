package models

import "time"

// StatusCheck records a client heartbeat.
type StatusCheck struct {
	BaseModel

	ClientName string    `gorm:"size:128;not null" json:"client_name"`
	Timestamp  time.Time `gorm:"index" json:"timestamp"`
}
