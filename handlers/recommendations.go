package handlers

import (
	"net/http"

	"eventconnect/middleware"
	"eventconnect/models"
	"eventconnect/services/search"
	"eventconnect/services/trending"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecommendationHandler serves the trending and personalized feeds.
type RecommendationHandler struct {
	Trending trending.TrendingService
	Search   search.SearchService
	Logger   *zap.Logger
}

func NewRecommendationHandler(trendingSvc trending.TrendingService, searchSvc search.SearchService, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{Trending: trendingSvc, Search: searchSvc, Logger: logger}
}

// GetTrendingHandler handles GET /api/recommendations/trending?timeWindow&location.
func (h *RecommendationHandler) GetTrendingHandler(c *gin.Context) {
	metrics := models.TrendingMetrics{
		TimeWindow: c.Query("timeWindow"),
		Location:   c.Query("location"),
	}

	ranked, err := h.Trending.GetTrending(c.Request.Context(), metrics)
	if err != nil {
		h.Logger.Error("failed to compute trending feed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to compute trending events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": ranked})
}

// GetPersonalizedHandler handles GET /api/recommendations/personalized?limit&category.
// Until per-user taste signals land, this is a popularity-ordered category feed
// scoped to the authenticated user.
func (h *RecommendationHandler) GetPersonalizedHandler(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)

	filters := models.SearchFilters{
		Category: c.Query("category"),
		SortBy:   models.SortByPopularity,
	}
	limit := intQuery(c, "limit", 10)

	result, err := h.Search.Search(c.Request.Context(), filters, limit)
	if err != nil {
		h.Logger.Error("failed to compute personalized feed",
			zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to compute recommendations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result.Items})
}
