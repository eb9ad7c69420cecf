package commandcenter

import (
	"encoding/json"
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
	g := rg.Group("/command-center")

	g.GET("", h.get)
	g.POST("", authMW, h.set)
}

// GET /api/command-center
func (h *Handler) get(c *gin.Context) {
	cc, err := h.svc.Get()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if cc == nil {
		c.JSON(http.StatusOK, gin.H{"images": []string{}})
		return
	}
	response.OK(c, cc)
}

// POST /api/command-center
func (h *Handler) set(c *gin.Context) {
	var body struct {
		Images json.RawMessage `json:"images"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	var images []string
	if err := json.Unmarshal(body.Images, &images); err != nil {
		response.BadRequest(c, "Images must be an array")
		return
	}
	cc, err := h.svc.Set(images)
	if err != nil {
		if errors.Is(err, errTooManyImages) {
			response.BadRequest(c, "Maximum 3 images allowed")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, cc)
}
