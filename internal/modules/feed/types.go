package feed

import (
	"errors"
	"time"

	"github.com/jasri-space/core/internal/models"
)

var (
	errFeedNotFound    = errors.New("feed not found")
	errInvalidFeedType = errors.New("type must be Blog|Project|Photo|Note|Video")
)

// CreateFeedDTO is the POST /api/feeds body.
type CreateFeedDTO struct {
	Type     string           `json:"type" binding:"required"`
	Title    string           `json:"title" binding:"required"`
	Content  string           `json:"content"`
	ImageURL string           `json:"imageUrl"`
	Link     string           `json:"link"`
	Date     *time.Time       `json:"date"`
	Meta     *models.FeedMeta `json:"meta"`
}

// UpdateFeedDTO is the PUT /api/feeds/:id body. Nil fields are left
// untouched.
type UpdateFeedDTO struct {
	Type     *string          `json:"type"`
	Title    *string          `json:"title"`
	Content  *string          `json:"content"`
	ImageURL *string          `json:"imageUrl"`
	Link     *string          `json:"link"`
	Date     *time.Time       `json:"date"`
	Meta     *models.FeedMeta `json:"meta"`
}
