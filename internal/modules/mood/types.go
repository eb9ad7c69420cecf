package mood

import "errors"

var errMoodNotFound = errors.New("mood not found")

// CreateMoodDTO is the POST /api/mood body.
type CreateMoodDTO struct {
	Title              string `json:"title" binding:"required"`
	SourceURL          string `json:"sourceUrl"`
	SpotifyPlaylistURL string `json:"spotifyPlaylistUrl"`
	IsActive           bool   `json:"isActive"`
}

// UpdateMoodDTO is the PUT /api/mood/:id body. Nil fields are left untouched.
type UpdateMoodDTO struct {
	Title              *string `json:"title"`
	SourceURL          *string `json:"sourceUrl"`
	SpotifyPlaylistURL *string `json:"spotifyPlaylistUrl"`
	IsActive           *bool   `json:"isActive"`
}

// AddCommentDTO is the POST /api/mood/:id/comments body.
type AddCommentDTO struct {
	User string `json:"user" binding:"required"`
	Text string `json:"text" binding:"required"`
}
