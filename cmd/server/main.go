package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hiring-platform-api/internal/config"
	"github.com/yukikurage/hiring-platform-api/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()
	gin.SetMode(cfg.GinMode)

	app, cleanup, err := InitApp(cfg)
	if err != nil {
		logger.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		logger.Error("Server stopped", "error", err)
		cleanup()
		os.Exit(1)
	}
}
