package http

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(handler *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(handler.log))

	corsConfig := cors.DefaultConfig()

	// Allow all origins unless CORS_ALLOWED_ORIGINS is set.
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if allowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}

	router.Use(cors.New(corsConfig))

	v1 := router.Group("/v1")
	v1.GET("/parameters/default", handler.GetDefaultParameters)
	v1.GET("/response", handler.GetResponse)
	v1.POST("/response", handler.PostResponse)

	router.GET("/health", handler.HealthCheck)

	return router
}
