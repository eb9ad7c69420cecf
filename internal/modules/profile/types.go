package profile

import "errors"

var errProfileNotFound = errors.New("profile not found")

// CreateProfileDTO is the POST /api/profile body.
type CreateProfileDTO struct {
	Name      string `json:"name" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Bio       string `json:"bio"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
	ResumeURL string `json:"resumeUrl"`
	IsActive  *bool  `json:"isActive"`

	HeroTitle string `json:"heroTitle"`
	HeroImage string `json:"heroImage"`
	BandImage string `json:"bandImage"`
	Genres    string `json:"genres"`
	Quote     string `json:"quote"`
}

// UpdateProfileDTO is the PUT /api/profile/:id body. Nil fields are left
// untouched.
type UpdateProfileDTO struct {
	Name      *string `json:"name"`
	Title     *string `json:"title"`
	Bio       *string `json:"bio"`
	Email     *string `json:"email"`
	AvatarURL *string `json:"avatarUrl"`
	ResumeURL *string `json:"resumeUrl"`
	IsActive  *bool   `json:"isActive"`

	HeroTitle *string `json:"heroTitle"`
	HeroImage *string `json:"heroImage"`
	BandImage *string `json:"bandImage"`
	Genres    *string `json:"genres"`
	Quote     *string `json:"quote"`
}

// AddSocialLinkDTO is the POST /api/profile/:id/social-links body.
type AddSocialLinkDTO struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url" binding:"required"`
	Label    string `json:"label"`
	Icon     string `json:"icon"`
}
