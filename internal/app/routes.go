package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jasri-space/core/internal/middleware"
	"github.com/jasri-space/core/internal/modules/activity"
	"github.com/jasri-space/core/internal/modules/auth"
	"github.com/jasri-space/core/internal/modules/commandcenter"
	"github.com/jasri-space/core/internal/modules/feed"
	"github.com/jasri-space/core/internal/modules/health"
	"github.com/jasri-space/core/internal/modules/mood"
	"github.com/jasri-space/core/internal/modules/profile"
	"github.com/jasri-space/core/internal/modules/project"
	"github.com/jasri-space/core/internal/modules/stats"
	"github.com/jasri-space/core/internal/modules/track"
	"github.com/jasri-space/core/internal/pkg/mail"
	"github.com/jasri-space/core/internal/pkg/metrics"
)

func (a *App) registerRoutes(m *metrics.Metrics, mailer *mail.Sender) {
	r := a.router

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "jasri-space api")
	})
	health.RegisterRoot(r, a.db)
	r.GET("/metrics", m.Handler())
	r.Static("/uploads", a.cfg.UploadsDir)

	authMW := middleware.RequireAuth()

	authSvc := auth.NewService(a.db, a.cfg, mailer, a.log)
	auth.NewHandler(authSvc, a.cfg).RegisterRoutes(r, authMW)
	a.authSvc = authSvc

	api := r.Group("/api")
	api.Use(middleware.OptionalAuth())
	if a.rdb != nil {
		api.Use(middleware.RateLimit(a.rdb))
	}

	act := activity.NewLogger(a.db, a.log)
	a.activityLogger = act

	activity.NewHandler(act).RegisterRoutes(api)
	project.NewHandler(project.NewService(a.db, act)).RegisterRoutes(api, authMW)
	feed.NewHandler(feed.NewService(a.db, act)).RegisterRoutes(api, authMW)
	mood.NewHandler(mood.NewService(a.db)).RegisterRoutes(api, authMW)
	profile.NewHandler(profile.NewService(a.db)).RegisterRoutes(api, authMW)
	track.NewHandler(track.NewService(a.db), a.cfg.UploadsDir).RegisterRoutes(api, authMW)
	commandcenter.NewHandler(commandcenter.NewService(a.db)).RegisterRoutes(api, authMW)
	stats.NewHandler(a.db).RegisterRoutes(api)
	health.RegisterAdmin(api, a.sched, authMW)
}
