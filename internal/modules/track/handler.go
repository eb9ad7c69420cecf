package track

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jasri-space/core/internal/models"
	"github.com/jasri-space/core/internal/pkg/response"
)

type Handler struct {
	svc        *Service
	uploadsDir string
}

func NewHandler(svc *Service, uploadsDir string) *Handler {
	return &Handler{svc: svc, uploadsDir: uploadsDir}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/tracks")

	g.GET("", h.list)
	g.GET("/:id", h.get)

	a := g.Group("", authMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

// GET /api/tracks
func (h *Handler) list(c *gin.Context) {
	tracks, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, tracks)
}

// GET /api/tracks/:id
func (h *Handler) get(c *gin.Context) {
	t, err := h.svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, errTrackNotFound) {
			response.NotFound(c, "Track not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, t)
}

// POST /api/tracks — multipart form: audio (file, required unless audioUrl is
// given), cover (file, optional), title, artist, order, duration
func (h *Handler) create(c *gin.Context) {
	t := models.TrackModel{
		Title:    c.PostForm("title"),
		Artist:   c.PostForm("artist"),
		Order:    atoiOr(c.PostForm("order"), 0),
		Duration: atoiOr(c.PostForm("duration"), 0),
	}

	if audio := formFile(c, "audio"); audio != nil {
		url, err := saveUpload(c, audio, "audio", h.uploadsDir)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		t.AudioURL = url
	} else {
		t.AudioURL = c.PostForm("audioUrl")
	}
	if t.AudioURL == "" {
		response.BadRequest(c, "Audio file is required")
		return
	}

	if cover := formFile(c, "cover"); cover != nil {
		url, err := saveUpload(c, cover, "cover", h.uploadsDir)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		t.CoverImage = url
	} else if v := c.PostForm("coverImageUrl"); v != "" {
		t.CoverImage = v
	}

	if err := h.svc.Create(&t); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Created(c, t)
}

// PUT /api/tracks/:id
func (h *Handler) update(c *gin.Context) {
	updates := map[string]interface{}{}
	if v, ok := c.GetPostForm("title"); ok {
		updates["title"] = v
	}
	if v, ok := c.GetPostForm("artist"); ok {
		updates["artist"] = v
	}
	if v, ok := c.GetPostForm("order"); ok {
		updates["sort_order"] = atoiOr(v, 0)
	}
	if v, ok := c.GetPostForm("duration"); ok {
		updates["duration"] = atoiOr(v, 0)
	}

	if audio := formFile(c, "audio"); audio != nil {
		url, err := saveUpload(c, audio, "audio", h.uploadsDir)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		updates["audio_url"] = url
	}
	if cover := formFile(c, "cover"); cover != nil {
		url, err := saveUpload(c, cover, "cover", h.uploadsDir)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		updates["cover_image"] = url
	} else if v, ok := c.GetPostForm("coverImageUrl"); ok && v != "" {
		updates["cover_image"] = v
	}

	t, err := h.svc.Update(c.Param("id"), updates)
	if err != nil {
		if errors.Is(err, errTrackNotFound) {
			response.NotFound(c, "Track not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	response.OK(c, t)
}

// DELETE /api/tracks/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, errTrackNotFound) {
			response.NotFound(c, "Track not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	c.JSON(200, gin.H{"message": "Track deleted"})
}

func atoiOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
