package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates all route handlers for registration.
type HandlerBundle struct {
	// Discovery endpoints.
	SearchEventsHandler    gin.HandlerFunc
	GetTrendingHandler     gin.HandlerFunc
	GetPersonalizedHandler gin.HandlerFunc

	// Gamification endpoints.
	GetProfileHandler   gin.HandlerFunc
	RecordActionHandler gin.HandlerFunc

	// Catalog endpoints.
	ListEventsHandler  gin.HandlerFunc
	GetEventHandler    gin.HandlerFunc
	CreateEventHandler gin.HandlerFunc

	// Auth endpoints.
	IssueTokenHandler gin.HandlerFunc
}
