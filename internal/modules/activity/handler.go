package activity

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jasri-space/core/internal/pkg/response"
)

type Handler struct {
	logger *Logger
}

func NewHandler(logger *Logger) *Handler { return &Handler{logger: logger} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/activity", h.recent)
}

// GET /api/activity?limit=N
func (h *Handler) recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	entries, err := h.logger.Recent(limit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, entries)
}
