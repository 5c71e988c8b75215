package handlers

import (
	"errors"
	"net/http"

	"purpoise-api/internal/database"
	"purpoise-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AddStageRequest represents the request payload for adding a stage to a goal
type AddStageRequest struct {
	Name       string `json:"name" binding:"required"`
	OrderIndex *int   `json:"orderIndex"`
}

// UpdateStageRequest represents the request payload for renaming/reordering a stage
type UpdateStageRequest struct {
	Name       *string `json:"name"`
	OrderIndex *int    `json:"orderIndex"`
}

// AddStage handles POST /api/goals/:id/stages
func AddStage(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	goal, err := goalForUser(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, errNotOwned) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goal"})
		}
		return
	}

	var req AddStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()
	orderIndex := 0
	if req.OrderIndex != nil {
		orderIndex = *req.OrderIndex
	} else {
		var count int64
		if err := db.Model(&models.Stage{}).Where("goal_id = ?", goal.ID).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create stage"})
			return
		}
		orderIndex = int(count)
	}

	stage := models.Stage{
		ID:         uuid.NewString(),
		GoalID:     goal.ID,
		Name:       req.Name,
		OrderIndex: orderIndex,
		Tasks:      []models.Task{},
	}
	if err := db.Create(&stage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create stage"})
		return
	}

	c.JSON(http.StatusCreated, stage)
}

// UpdateStage handles PUT /api/stages/:id
func UpdateStage(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	stage, err := stageForUser(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, errNotOwned) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stage not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stage"})
		}
		return
	}

	var req UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		stage.Name = *req.Name
	}
	if req.OrderIndex != nil {
		stage.OrderIndex = *req.OrderIndex
	}

	if err := database.GetDB().Save(&stage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stage"})
		return
	}

	c.JSON(http.StatusOK, stage)
}

// DeleteStage handles DELETE /api/stages/:id
// Removes the stage and its tasks.
func DeleteStage(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	stage, err := stageForUser(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, errNotOwned) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stage not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stage"})
		}
		return
	}

	db := database.GetDB()
	if err := db.Where("stage_id = ?", stage.ID).Delete(&models.Task{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete stage tasks"})
		return
	}
	if err := db.Delete(&stage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete stage"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stage deleted successfully",
		"id":      stage.ID,
	})
}
