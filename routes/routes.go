package routes

import (
	"net/http"
	"time"

	"eventconnect/handlers"
	"eventconnect/middleware"
	"eventconnect/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers token issuance.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/token", hb.IssueTokenHandler)
	}
}

// RegisterSearchRoutes registers the discovery search endpoint.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/search", hb.SearchEventsHandler)
}

// RegisterRecommendationRoutes registers the trending and personalized feeds.
func RegisterRecommendationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/recommendations")
	{
		api.GET("/trending", hb.GetTrendingHandler)

		// Personalized feeds need a user identity.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.GET("/personalized", hb.GetPersonalizedHandler)
	}
}

// RegisterGamificationRoutes registers profile and action endpoints.
func RegisterGamificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/gamification")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/profile", hb.GetProfileHandler)
		api.POST("/actions", hb.RecordActionHandler)
	}
}

// RegisterEventRoutes registers catalog endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/events")
	{
		api.GET("", hb.ListEventsHandler)
		api.GET("/:id", hb.GetEventHandler)
		api.POST("", hb.CreateEventHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm EventConnect",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterSearchRoutes(r, hb)
	RegisterRecommendationRoutes(r, hb)
	RegisterGamificationRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterHealthRoute(r)
}
