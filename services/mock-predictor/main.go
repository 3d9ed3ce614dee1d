package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"fndetector/common/logging"
	"fndetector/common/models"
)

func main() {
	logging.Configure(os.Stdout, os.Getenv("LOG_LEVEL"))

	// Set Gin mode based on environment
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "" {
		ginMode = "debug"
	}
	gin.SetMode(ginMode)

	latency := time.Duration(0)
	if v := os.Getenv("MOCK_LATENCY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Error("invalid MOCK_LATENCY", "value", v, "error", err)
			os.Exit(1)
		}
		latency = d
	}

	router := newRouter(newScorer(), latency)

	// Get server address from environment or use default
	serverAddr := os.Getenv("SERVER_ADDR")
	if serverAddr == "" {
		serverAddr = ":5001"
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("starting mock predictor", "addr", serverAddr, "latency", latency)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down mock predictor")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("mock predictor exited")
}

func newRouter(s *scorer, latency time.Duration) *gin.Engine {
	router := gin.Default()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"service": "mock-predictor",
		})
	})

	router.POST("/predict", handlePredict(s, latency))

	return router
}

// handlePredict scores the submitted text the way the real model service would answer
func handlePredict(s *scorer, latency time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.PredictionRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, models.UpstreamErrorBody{Error: "Invalid request body"})
			return
		}
		if strings.TrimSpace(request.Text) == "" {
			c.JSON(http.StatusBadRequest, models.UpstreamErrorBody{Error: "No text provided"})
			return
		}

		// Simulate model inference time
		if latency > 0 {
			select {
			case <-time.After(latency):
			case <-c.Request.Context().Done():
				return
			}
		}

		c.JSON(http.StatusOK, s.Predict(request.Text))
	}
}
