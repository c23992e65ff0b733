package handlers

import (
	"net/http"
	"time"

	"eventconnect/utils"

	"github.com/gin-gonic/gin"
)

// IssueTokenHandler handles POST /api/auth/token. Account management lives in
// a separate service; this endpoint only signs a short-lived access token for
// an already-known user ID.
func IssueTokenHandler(c *gin.Context) {
	var input struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	token, err := utils.GenerateToken(input.UserID, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"token": token}})
}
