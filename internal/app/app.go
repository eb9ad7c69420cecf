// Package app assembles the HTTP server: database, redis, middleware chain,
// module routes and the background scheduler.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jasri-space/core/internal/config"
	"github.com/jasri-space/core/internal/database"
	"github.com/jasri-space/core/internal/middleware"
	"github.com/jasri-space/core/internal/modules/activity"
	"github.com/jasri-space/core/internal/modules/auth"
	"github.com/jasri-space/core/internal/pkg/cron"
	"github.com/jasri-space/core/internal/pkg/mail"
	"github.com/jasri-space/core/internal/pkg/metrics"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	cfg    *config.AppConfig
	log    *zap.Logger
	db     *gorm.DB
	rdb    *redis.Client
	router *gin.Engine
	sched  *cron.Scheduler

	authSvc        *auth.Service
	activityLogger *activity.Logger

	cronCancel context.CancelFunc
}

// New builds a fully wired application. Redis is optional; without it the
// rate limiter is not installed.
func New(log *zap.Logger, cfg *config.AppConfig) (*App, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		rdb = redis.NewClient(opts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn("redis unreachable, rate limiting disabled", zap.Error(err))
			rdb = nil
		}
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.New()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(log))
	router.Use(corsMiddleware(cfg))
	router.Use(m.Middleware())

	a := &App{
		cfg:    cfg,
		log:    log,
		db:     db,
		rdb:    rdb,
		router: router,
		sched:  cron.New(),
	}

	a.registerRoutes(m, mail.New(cfg.Mail))
	a.registerCronJobs()

	cronCtx, cancel := context.WithCancel(context.Background())
	a.cronCancel = cancel
	a.sched.Start(cronCtx)

	return a, nil
}

func corsMiddleware(cfg *config.AppConfig) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 {
		c.AllowOrigins = cfg.AllowedOrigins
	} else {
		// cookies require explicit origins; reflect whatever the browser sends
		c.AllowOriginFunc = func(string) bool { return true }
	}
	return cors.New(c)
}

// Addr is the listen address derived from config.
func (a *App) Addr() string {
	return fmt.Sprintf(":%d", a.cfg.Port)
}

// Router exposes the gin engine, mainly for tests.
func (a *App) Router() http.Handler { return a.router }

// DB exposes the database handle, mainly for tests.
func (a *App) DB() *gorm.DB { return a.db }

// Shutdown stops background jobs and closes connections.
func (a *App) Shutdown() {
	if a.cronCancel != nil {
		a.cronCancel()
	}
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
