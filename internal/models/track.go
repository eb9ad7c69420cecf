package models

// TrackModel is a playlist entry. AudioURL points at an uploaded file or an
// external URL; the store never holds raw bytes.
type TrackModel struct {
	Base
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	AudioURL   string `json:"audioUrl" gorm:"not null"`
	CoverImage string `json:"coverImage"`
	Duration   int    `json:"duration"` // seconds
	Order      int    `json:"order"    gorm:"column:sort_order;index;default:0"`
}

func (TrackModel) TableName() string { return "tracks" }
