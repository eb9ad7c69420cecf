package models

import "time"

// Feed item types shown on the public timeline.
const (
	FeedTypeBlog    = "Blog"
	FeedTypeProject = "Project"
	FeedTypePhoto   = "Photo"
	FeedTypeNote    = "Note"
	FeedTypeVideo   = "Video"
)

// FeedMeta carries free-form extras per feed type.
type FeedMeta struct {
	Location string `json:"location,omitempty"`
	Source   string `json:"source,omitempty"`
}

// FeedModel is a single entry on the public feed, ordered by Date descending.
type FeedModel struct {
	Base
	Type     string    `json:"type"    gorm:"index;not null"`
	Title    string    `json:"title"   gorm:"not null"`
	Content  string    `json:"content" gorm:"type:longtext"`
	ImageURL string    `json:"imageUrl"`
	Link     string    `json:"link"`
	Date     time.Time `json:"date"    gorm:"index"`
	Meta     FeedMeta  `json:"meta"    gorm:"type:longtext;serializer:json"`
}

func (FeedModel) TableName() string { return "feeds" }

// ValidFeedType reports whether t is one of the allowed feed types.
func ValidFeedType(t string) bool {
	switch t {
	case FeedTypeBlog, FeedTypeProject, FeedTypePhoto, FeedTypeNote, FeedTypeVideo:
		return true
	}
	return false
}
