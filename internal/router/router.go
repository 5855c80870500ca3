package router

import (
	"github.com/gin-gonic/gin"

	"github.com/craveboard/backend/internal/api"
	"github.com/craveboard/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(recipeHandler *api.RecipeHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS must run before everything so error responses carry the headers
	// and preflights short-circuit ahead of any business logic.
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger())

	// Health check endpoint
	router.GET("/health", api.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	recipeHandler.RegisterRoutes(v1)

	return router
}
