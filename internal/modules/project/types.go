package project

import "errors"

var errProjectNotFound = errors.New("project not found")

// CreateProjectDTO is the POST /api/projects body.
type CreateProjectDTO struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"imageUrl"`
	Link        string   `json:"link"`
	Category    string   `json:"category"`
}

// UpdateProjectDTO is the PUT /api/projects/:id body. Nil fields are left
// untouched.
type UpdateProjectDTO struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	ImageURL    *string   `json:"imageUrl"`
	Link        *string   `json:"link"`
	Category    *string   `json:"category"`
}
