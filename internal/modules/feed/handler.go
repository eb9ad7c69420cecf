package feed

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jasri-space/core/internal/pkg/response"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type Handler struct {
	svc *Service
	md  goldmark.Markdown
}

func NewHandler(svc *Service) *Handler {
	return &Handler{
		svc: svc,
		md:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/feeds")

	g.GET("", h.list)
	g.GET("/:id/render", h.render)

	a := g.Group("", authMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

// GET /api/feeds
func (h *Handler) list(c *gin.Context) {
	feeds, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, feeds)
}

// GET /api/feeds/:id/render — feed content as HTML
func (h *Handler) render(c *gin.Context) {
	f, err := h.svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, errFeedNotFound) {
			response.NotFound(c, "Feed not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(f.Content), &buf); err != nil {
		response.InternalError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// POST /api/feeds
func (h *Handler) create(c *gin.Context) {
	var dto CreateFeedDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	f, err := h.svc.Create(&dto)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Created(c, f)
}

// PUT /api/feeds/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateFeedDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	f, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, errFeedNotFound) {
			response.NotFound(c, "Feed not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	response.OK(c, f)
}

// DELETE /api/feeds/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, errFeedNotFound) {
			response.NotFound(c, "Feed not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	response.Deleted(c)
}
