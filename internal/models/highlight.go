package models

// Highlight marks a single verse with a catalog color for a user. A verse
// carries at most one highlight per user; re-highlighting replaces the color.
type Highlight struct {
	BaseModel

	UserID   string `gorm:"size:128;not null;index:idx_highlight_chapter,priority:1;uniqueIndex:idx_highlight_verse,priority:1" json:"user_id"`
	Book     string `gorm:"size:64;not null;index:idx_highlight_chapter,priority:2;uniqueIndex:idx_highlight_verse,priority:2" json:"book"`
	Chapter  int    `gorm:"not null;index:idx_highlight_chapter,priority:3;uniqueIndex:idx_highlight_verse,priority:3" json:"chapter"`
	Verse    int    `gorm:"not null;uniqueIndex:idx_highlight_verse,priority:4" json:"verse"`
	ColorID  string `gorm:"size:64;not null" json:"color_id"`
	ColorHex string `gorm:"size:16;not null" json:"color_hex"`
	Text     string `gorm:"type:text" json:"text,omitempty"`
}
