package handlers

import (
	"net/http"

	"purpoise-api/internal/database"
	"purpoise-api/internal/models"

	"github.com/gin-gonic/gin"
)

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// GetCurrentUser handles GET /api/me
func GetCurrentUser(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	var user models.User
	if err := database.GetDB().Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}
