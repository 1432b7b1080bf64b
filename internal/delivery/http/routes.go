package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nutritrack/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		journal := v1.Group("/journal")
		{
			journal.POST("", handler.LogMeal)
			journal.GET("", handler.ListMeals)
			journal.PUT("/:id", handler.EditMeal)
			journal.DELETE("/:id", handler.DeleteMeal)
		}

		v1.GET("/analysis", handler.GetAnalysis)
		v1.GET("/rda", handler.GetRDA)

		profile := v1.Group("/profile")
		{
			profile.GET("", handler.GetProfile)
			profile.PUT("", handler.PutProfile)
		}
	}

	return router
}
