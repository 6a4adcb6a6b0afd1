package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"material-issue-sheet/app"
	"material-issue-sheet/config"
	"material-issue-sheet/logger"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	var envErr error
	if os.Getenv("ENV") != "production" {
		// Use Overload to ensure .env values override system environment variables
		envErr = godotenv.Overload(".env")
	}

	cfg, err := config.Load()
	if err != nil {
		// No configured logger yet
		zap.NewExample().Fatal("invalid configuration", zap.Error(err))
	}

	log := logger.New(cfg.Log)
	defer log.Sync()

	if envErr != nil {
		log.Warn(".env file not loaded, using system environment variables", zap.Error(envErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize application
	application, err := app.Initialize(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to initialize application", zap.Error(err))
	}
	defer application.Close()

	// Listen on 0.0.0.0 to accept connections from all interfaces (required for Docker/Render)
	addr := "0.0.0.0:" + cfg.Port
	server := &http.Server{
		Addr:              addr,
		Handler:           application.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", zap.Error(err))
		}
	}()

	log.Info("server starting",
		zap.String("addr", addr),
		zap.String("env", cfg.Env),
		zap.String("catalog_source", cfg.Catalog.Source),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server failed to start", zap.Error(err))
	}
	log.Info("server stopped")
}
