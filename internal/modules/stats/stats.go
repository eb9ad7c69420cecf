package stats

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jasri-space/core/internal/models"
	"github.com/jasri-space/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct{ db *gorm.DB }

func NewHandler(db *gorm.DB) *Handler { return &Handler{db: db} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.stats)
}

// GET /api/stats — dashboard counters
func (h *Handler) stats(c *gin.Context) {
	var feedsCount, projectsCount int64
	if err := h.db.Model(&models.FeedModel{}).Count(&feedsCount).Error; err != nil {
		response.InternalError(c, err)
		return
	}
	if err := h.db.Model(&models.ProjectModel{}).Count(&projectsCount).Error; err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"feedsCount":    feedsCount,
		"projectsCount": projectsCount,
		"lastUpdated":   time.Now().UTC().Format(time.RFC3339),
	})
}
