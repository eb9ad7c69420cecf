package models

// SocialLink is an embedded social media link. It carries its own id so a
// single link can be removed later.
type SocialLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Label    string `json:"label,omitempty"`
	Icon     string `json:"icon,omitempty"`
}

// ProfileModel is the site owner profile plus About-page styling fields.
// Same single-active rule as MoodModel.
type ProfileModel struct {
	Base
	Name        string       `json:"name"  gorm:"not null"`
	Title       string       `json:"title" gorm:"not null"`
	Bio         string       `json:"bio"   gorm:"type:text"`
	Email       string       `json:"email"`
	AvatarURL   string       `json:"avatarUrl"`
	ResumeURL   string       `json:"resumeUrl"`
	SocialLinks []SocialLink `json:"socialLinks" gorm:"type:longtext;serializer:json"`
	IsActive    bool         `json:"isActive"    gorm:"index;default:true"`

	// About page
	HeroTitle string `json:"heroTitle"`
	HeroImage string `json:"heroImage"`
	BandImage string `json:"bandImage"`
	Genres    string `json:"genres"`
	Quote     string `json:"quote" gorm:"type:text"`
}

func (ProfileModel) TableName() string { return "profiles" }
