package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "fndetector/services/api-gateway/docs"
)

// newRouter wires middleware and routes for the gateway
func newRouter(cfg Config, p predictor) *gin.Engine {
	router := gin.New()
	router.Use(requestID(), accessLog(), gin.CustomRecovery(handlePanic))

	// Disallowed origins are aborted with 403 before reaching a handler
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	g := newGateway(cfg, p)

	router.GET("/health", g.handleHealth)
	router.POST("/predict", g.handlePredict)

	// Swagger documentation
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(handleNotFound)

	return router
}
