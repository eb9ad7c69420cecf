package profile

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
	g := rg.Group("/profile")

	g.GET("", h.active)

	a := g.Group("", authMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.POST("/:id/social-links", h.addSocialLink)
	a.DELETE("/:id/social-links/:linkId", h.removeSocialLink)
}

// GET /api/profile — the active profile, or {} when none is set
func (h *Handler) active(c *gin.Context) {
	p, err := h.svc.Active()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	response.OK(c, p)
}

// POST /api/profile
func (h *Handler) create(c *gin.Context) {
	var dto CreateProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Create(&dto)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Created(c, p)
}

// PUT /api/profile/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, errProfileNotFound) {
			response.NotFound(c, "Profile not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	response.OK(c, p)
}

// POST /api/profile/:id/social-links
func (h *Handler) addSocialLink(c *gin.Context) {
	var dto AddSocialLinkDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.AddSocialLink(c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, errProfileNotFound) {
			response.NotFound(c, "Profile not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	response.Created(c, p)
}

// DELETE /api/profile/:id/social-links/:linkId
func (h *Handler) removeSocialLink(c *gin.Context) {
	p, err := h.svc.RemoveSocialLink(c.Param("id"), c.Param("linkId"))
	if err != nil {
		if errors.Is(err, errProfileNotFound) {
			response.NotFound(c, "Profile not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	response.OK(c, p)
}
