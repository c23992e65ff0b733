package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"eventconnect/models"
	"eventconnect/services/search"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler serves faceted discovery queries.
type SearchHandler struct {
	Search search.SearchService
	Logger *zap.Logger
}

func NewSearchHandler(searchSvc search.SearchService, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{Search: searchSvc, Logger: logger}
}

// SearchEventsHandler handles GET /api/search.
func (h *SearchHandler) SearchEventsHandler(c *gin.Context) {
	filters := models.SearchFilters{
		Query:     c.Query("q"),
		Category:  c.Query("category"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	if tags := c.Query("tags"); tags != "" {
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				filters.Tags = append(filters.Tags, t)
			}
		}
	}
	if radius, err := strconv.ParseFloat(c.Query("radius"), 64); err == nil && radius > 0 {
		filters.Location = &models.RadiusFilter{Radius: radius}
	}
	if from, to := c.Query("from"), c.Query("to"); from != "" || to != "" {
		filters.DateRange = &models.DateRange{Start: from, End: to}
	}
	minPrice, errMin := strconv.ParseFloat(c.Query("minPrice"), 64)
	maxPrice, errMax := strconv.ParseFloat(c.Query("maxPrice"), 64)
	if errMin == nil || errMax == nil {
		filters.Price = &models.PriceRange{Min: minPrice, Max: maxPrice}
	}

	result, err := h.Search.Search(c.Request.Context(), filters, intQuery(c, "limit", 0))
	if err != nil {
		h.Logger.Error("search failed", zap.String("query", filters.Query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// intQuery reads an integer query parameter with a fallback.
func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
