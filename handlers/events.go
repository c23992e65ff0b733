package handlers

import (
	"net/http"

	eventRepo "eventconnect/database/repository/event"
	"eventconnect/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EventHandler exposes minimal catalog CRUD for clients and seed tooling.
type EventHandler struct {
	Repo   eventRepo.EventRepository
	Logger *zap.Logger
}

func NewEventHandler(repo eventRepo.EventRepository, logger *zap.Logger) *EventHandler {
	return &EventHandler{Repo: repo, Logger: logger}
}

// ListEventsHandler handles GET /api/events.
func (h *EventHandler) ListEventsHandler(c *gin.Context) {
	events, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to list events"})
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": events})
}

// GetEventHandler handles GET /api/events/:id.
func (h *EventHandler) GetEventHandler(c *gin.Context) {
	event, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "event not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": event})
}

// CreateEventHandler handles POST /api/events.
func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}
	if event.Title == "" || event.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "title and date are required"})
		return
	}
	if _, ok := event.StartTime(); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "date must be RFC 3339 or YYYY-MM-DD"})
		return
	}

	if err := h.Repo.Create(c.Request.Context(), &event); err != nil {
		h.Logger.Error("failed to create event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to create event"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": event})
}
