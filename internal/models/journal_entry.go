package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// JournalEntry is a user's written reflection, optionally tied to a passage.
type JournalEntry struct {
	BaseModel

	UserID          string                      `gorm:"size:128;not null;index" json:"user_id"`
	Title           string                      `gorm:"size:200" json:"title,omitempty"`
	Content         string                      `gorm:"type:text;not null" json:"content"`
	Date            time.Time                   `gorm:"index" json:"date"`
	Tags            datatypes.JSONSlice[string] `json:"tags"`
	LinkedScripture *string                     `gorm:"size:128" json:"linked_scripture,omitempty"`
	CoverID         *string                     `gorm:"size:64" json:"cover_id,omitempty"`
}

// Normalise trims text fields and removes empty or repeated tags.
func (j *JournalEntry) Normalise() {
	j.Title = strings.TrimSpace(j.Title)
	j.Content = strings.TrimSpace(j.Content)

	seen := make(map[string]struct{}, len(j.Tags))
	tags := make([]string, 0, len(j.Tags))
	for _, tag := range j.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	j.Tags = tags
}
