package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jasri-space/core/internal/app"
	"github.com/jasri-space/core/internal/config"
	"github.com/jasri-space/core/internal/database"
	"github.com/jasri-space/core/internal/modules/legacyimport"
	"github.com/jasri-space/core/internal/pkg/jwt"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", config.DefaultConfigPath, "path to config file")
	importMongo := flag.String("import-mongo", "", "MongoDB URI to import legacy data from, then exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	var logger *zap.Logger
	if cfg.IsDev() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	jwt.SetSecret(cfg.JWTSecret)

	if *importMongo != "" {
		runImport(cfg, *importMongo, logger)
		return
	}

	a, err := app.New(logger, cfg)
	if err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}
	defer a.Shutdown()

	srv := &http.Server{
		Addr:    a.Addr(),
		Handler: a.Router(),
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}

func runImport(cfg *config.AppConfig, mongoURI string, logger *zap.Logger) {
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	if err := legacyimport.Run(context.Background(), db, mongoURI, logger); err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}
}
