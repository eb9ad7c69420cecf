package models

import "time"

// MoodComment is a visitor comment embedded in a mood document.
type MoodComment struct {
	User string    `json:"user"`
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

// MoodModel is the "current mood" music widget. At most one mood may have
// IsActive=true at a time; the write path enforces this in a transaction.
type MoodModel struct {
	Base
	Title              string        `json:"title" gorm:"not null"`
	SourceURL          string        `json:"sourceUrl"` // legacy video link
	SpotifyPlaylistURL string        `json:"spotifyPlaylistUrl"`
	IsActive           bool          `json:"isActive" gorm:"index;default:false"`
	Comments           []MoodComment `json:"comments" gorm:"type:longtext;serializer:json"`
}

func (MoodModel) TableName() string { return "moods" }
