package models

// ProjectModel stores portfolio projects.
type ProjectModel struct {
	Base
	Title       string      `json:"title"       gorm:"not null"`
	Description string      `json:"description" gorm:"type:text"`
	Tags        StringArray `json:"tags"        gorm:"type:longtext"`
	ImageURL    string      `json:"imageUrl"`
	Link        string      `json:"link"`
	Category    string      `json:"category"`
}

func (ProjectModel) TableName() string { return "projects" }
