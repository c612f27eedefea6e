package router

import (
	"github.com/gin-gonic/gin"

	"github.com/flavorshare/backend/internal/api"
	"github.com/flavorshare/backend/internal/middleware"
)

// SetupRouter configures the application routes. Everything mounts under
// /api to match the existing client contract.
func SetupRouter(
	userHandler *api.UserHandler,
	recipeHandler *api.RecipeHandler,
	imageHandler *api.ImageHandler,
	corsOrigins []string,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(corsOrigins))

	router.GET("/health", api.HealthCheck)
	router.GET("/api/health", api.HealthCheck)

	apiGroup := router.Group("/api")
	userHandler.RegisterRoutes(apiGroup)
	recipeHandler.RegisterRoutes(apiGroup)
	imageHandler.RegisterRoutes(apiGroup)

	return router
}
