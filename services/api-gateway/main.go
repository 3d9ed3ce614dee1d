package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"fndetector/common/logging"
)

// @title          Fake News Detector Gateway
// @version        1.0
// @description    Validates news text and relays it to the prediction service

// @license.name MIT
// @license.url  https://opensource.org/licenses/MIT

// @host      localhost:5000
// @BasePath  /

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		logging.Configure(os.Stdout, "INFO")
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Configure(os.Stdout, cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	router := newRouter(cfg, newPredictionClient(cfg.UpstreamURL))

	serverAddr := ":" + cfg.Port

	// Create HTTP server
	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("starting gateway",
			"addr", serverAddr,
			"env", cfg.Environment,
			"upstream", cfg.UpstreamURL,
			"timeout", cfg.UpstreamTimeout,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down gateway")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("gateway exited")
}
