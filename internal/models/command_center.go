package models

// CommandCenterMaxImages caps the homepage carousel size.
const CommandCenterMaxImages = 3

// CommandCenterModel is a singleton document holding the homepage carousel
// image URLs.
type CommandCenterModel struct {
	Base
	Images StringArray `json:"images" gorm:"type:longtext"`
}

func (CommandCenterModel) TableName() string { return "command_centers" }
