package mood

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jasri-space/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/mood")

	g.GET("", h.active)
	g.POST("/:id/comments", h.addComment)

	a := g.Group("", authMW)
	a.GET("/all", h.list)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

// GET /api/mood — the active mood, or {} when none is set
func (h *Handler) active(c *gin.Context) {
	m, err := h.svc.Active()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	response.OK(c, m)
}

// GET /api/mood/all — every mood, for the admin dashboard
func (h *Handler) list(c *gin.Context) {
	moods, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, moods)
}

// POST /api/mood
func (h *Handler) create(c *gin.Context) {
	var dto CreateMoodDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Create(&dto)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Created(c, m)
}

// PUT /api/mood/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateMoodDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, errMoodNotFound) {
			response.NotFound(c, "Mood not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	response.OK(c, m)
}

// DELETE /api/mood/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, errMoodNotFound) {
			response.NotFound(c, "Mood not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	response.Deleted(c)
}

// POST /api/mood/:id/comments — public
func (h *Handler) addComment(c *gin.Context) {
	var dto AddCommentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.AddComment(c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, errMoodNotFound) {
			response.NotFound(c, "Mood not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	response.Created(c, m)
}
