package models

import "time"

// Activity log actions.
const (
	ActivityCreated = "created"
	ActivityUpdated = "updated"
	ActivityDeleted = "deleted"
)

// Activity log resource types.
const (
	ResourceFeed    = "feed"
	ResourceProject = "project"
	ResourceMood    = "mood"
	ResourceProfile = "profile"
)

// ActivityLogModel is an append-only audit entry written after successful
// Project/Feed mutations. The API never updates or deletes entries.
type ActivityLogModel struct {
	Base
	Action        string    `json:"action"        gorm:"not null"`
	ResourceType  string    `json:"resourceType"  gorm:"index;not null"`
	ResourceTitle string    `json:"resourceTitle" gorm:"not null"`
	ResourceID    string    `json:"resourceId"    gorm:"index"`
	Timestamp     time.Time `json:"timestamp"     gorm:"index"`
}

func (ActivityLogModel) TableName() string { return "activity_logs" }
