package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jasri-space/core/internal/pkg/cron"
	"github.com/jasri-space/core/internal/pkg/response"
	"gorm.io/gorm"
)

// RegisterRoot registers the public monitoring endpoint at /health.
func RegisterRoot(r gin.IRoutes, db *gorm.DB) {
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		dbOK := err == nil && sqlDB.Ping() == nil

		if !dbOK {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "degraded",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}

// RegisterAdmin registers cron inspection endpoints under /api/health.
func RegisterAdmin(rg *gin.RouterGroup, sched *cron.Scheduler, authMW gin.HandlerFunc) {
	g := rg.Group("/health", authMW)

	g.GET("/cron", func(c *gin.Context) {
		response.OK(c, sched.List())
	})

	g.POST("/cron/run/:name", func(c *gin.Context) {
		if err := sched.Run(c.Request.Context(), c.Param("name")); err != nil {
			response.NotFound(c, err.Error())
			return
		}
		response.OK(c, gin.H{"message": "job triggered"})
	})
}
