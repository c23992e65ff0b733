package handlers

import (
	"net/http"

	"eventconnect/middleware"
	"eventconnect/services/gamification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GamificationHandler serves profile reads and action recording.
type GamificationHandler struct {
	Svc    gamification.GamificationService
	Logger *zap.Logger
}

func NewGamificationHandler(svc gamification.GamificationService, logger *zap.Logger) *GamificationHandler {
	return &GamificationHandler{Svc: svc, Logger: logger}
}

// GetProfileHandler handles GET /api/gamification/profile.
func (h *GamificationHandler) GetProfileHandler(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing user identity"})
		return
	}

	profile, err := h.Svc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to load gamification profile", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": profile})
}

// RecordActionHandler handles POST /api/gamification/actions.
func (h *GamificationHandler) RecordActionHandler(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing user identity"})
		return
	}

	var input struct {
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Svc.RecordAction(c.Request.Context(), userID, input.Action)
	if err != nil {
		h.Logger.Error("failed to record action",
			zap.String("userID", userID), zap.String("action", input.Action), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to record action"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}
