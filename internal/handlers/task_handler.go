package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"purpoise-api/internal/database"
	"purpoise-api/internal/engine"
	"purpoise-api/internal/models"
	"purpoise-api/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	Text         string              `json:"text" binding:"required"`
	Category     models.TaskCategory `json:"category"`
	Completed    bool                `json:"completed"`
	DueDate      string              `json:"dueDate"`
	Recurrence   models.Recurrence   `json:"recurrence"`
	ResetWeekday *int                `json:"resetWeekday"`
}

// UpdateTaskRequest represents the request payload for updating a task.
// Completed is deliberately absent; completion changes go through the
// toggle endpoint so streak accounting cannot be bypassed.
type UpdateTaskRequest struct {
	Text         *string              `json:"text"`
	Category     *models.TaskCategory `json:"category"`
	DueDate      *string              `json:"dueDate"`
	Recurrence   *models.Recurrence   `json:"recurrence"`
	ResetWeekday *int                 `json:"resetWeekday"`
	OrderIndex   *int                 `json:"orderIndex"`
}

// badRequestError marks validation failures raised inside transactions.
type badRequestError struct{ msg string }

func (e badRequestError) Error() string { return e.msg }

func validCategory(c models.TaskCategory) bool {
	switch c {
	case models.CategoryWork, models.CategoryThought, models.CategoryCollaboration,
		models.CategoryStudy, models.CategoryResearch, models.CategoryAction,
		models.CategoryHabit:
		return true
	}
	return false
}

func validRecurrence(r models.Recurrence) bool {
	switch r {
	case models.RecurrenceNone, models.RecurrenceDaily, models.RecurrenceWeekly:
		return true
	}
	return false
}

// buildTask turns a create request into a task row. Requests without an
// explicit recurrence (legacy-shaped imports) get one inferred from the
// stage name and task text, once, here.
func buildTask(stage models.Stage, req CreateTaskRequest, orderIndex int) (models.Task, error) {
	category := req.Category
	if category == "" {
		category = models.CategoryAction
	}
	if !validCategory(category) {
		return models.Task{}, badRequestError{fmt.Sprintf("Invalid category %q", req.Category)}
	}

	recurrence := req.Recurrence
	weekday := models.NoWeekday
	switch {
	case recurrence == "":
		recurrence, weekday = engine.InferRecurrence(stage.Name, req.Text)
	case !validRecurrence(recurrence):
		return models.Task{}, badRequestError{fmt.Sprintf("Invalid recurrence %q", req.Recurrence)}
	case recurrence == models.RecurrenceWeekly:
		if req.ResetWeekday == nil || *req.ResetWeekday < 0 || *req.ResetWeekday > 6 {
			return models.Task{}, badRequestError{"resetWeekday (0=Sunday..6=Saturday) is required for weekly recurrence"}
		}
		weekday = *req.ResetWeekday
	}

	return models.Task{
		ID:           uuid.NewString(),
		StageID:      stage.ID,
		Text:         req.Text,
		Category:     category,
		Completed:    req.Completed,
		DueDate:      req.DueDate,
		Streak:       0,
		Recurrence:   recurrence,
		ResetWeekday: weekday,
		OrderIndex:   orderIndex,
	}, nil
}

// CreateTask handles POST /api/stages/:id/tasks
func CreateTask(c *gin.Context) {
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

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()

	// append at the end of the stage
	var count int64
	if err := db.Model(&models.Task{}).Where("stage_id = ?", stage.ID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	task, err := buildTask(stage, req, int(count))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := db.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	realtime.GetHub().BroadcastEvent(realtime.Event{
		Type:   realtime.EventTaskCreated,
		TaskID: task.ID,
		GoalID: stage.GoalID,
		UserID: userID,
	})

	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /api/tasks/:id
func UpdateTask(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	task, err := taskForUser(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, errNotOwned) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Text != nil {
		task.Text = *req.Text
	}
	if req.Category != nil {
		if !validCategory(*req.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
		task.Category = *req.Category
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.Recurrence != nil {
		if !validRecurrence(*req.Recurrence) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recurrence"})
			return
		}
		task.Recurrence = *req.Recurrence
		if *req.Recurrence != models.RecurrenceWeekly {
			task.ResetWeekday = models.NoWeekday
		}
	}
	if req.ResetWeekday != nil {
		if *req.ResetWeekday < 0 || *req.ResetWeekday > 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "resetWeekday must be 0..6"})
			return
		}
		task.ResetWeekday = *req.ResetWeekday
	}
	if task.Recurrence == models.RecurrenceWeekly && task.ResetWeekday == models.NoWeekday {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resetWeekday (0=Sunday..6=Saturday) is required for weekly recurrence"})
		return
	}
	if req.OrderIndex != nil {
		task.OrderIndex = *req.OrderIndex
	}

	if err := database.GetDB().Save(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	realtime.GetHub().BroadcastEvent(realtime.Event{
		Type:   realtime.EventTaskUpdated,
		TaskID: task.ID,
		UserID: userID,
	})

	c.JSON(http.StatusOK, task)
}

// ToggleTask handles PATCH /api/tasks/:id/toggle
// Flips the completed state and persists exactly the engine-computed field
// set, so habit streak accounting happens here and nowhere else.
func ToggleTask(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	task, err := taskForUser(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, errNotOwned) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	update := engine.ComputeToggleUpdate(task, !task.Completed, Clock.Now())

	columns := map[string]any{
		"completed":  update.Completed,
		"updated_at": update.UpdatedAt,
	}
	task.Completed = update.Completed
	task.UpdatedAt = update.UpdatedAt
	if update.Streak != nil {
		columns["streak"] = *update.Streak
		task.Streak = *update.Streak
	}
	if update.LastCompletedDate != nil {
		columns["last_completed_date"] = *update.LastCompletedDate
		task.LastCompletedDate = *update.LastCompletedDate
	}

	err = database.GetDB().Model(&models.Task{}).Where("id = ?", task.ID).
		UpdateColumns(columns).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle task"})
		return
	}

	realtime.GetHub().BroadcastEvent(realtime.Event{
		Type:   realtime.EventTaskToggled,
		TaskID: task.ID,
		UserID: userID,
	})

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id
func DeleteTask(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	task, err := taskForUser(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, errNotOwned) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	if err := database.GetDB().Delete(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	realtime.GetHub().BroadcastEvent(realtime.Event{
		Type:   realtime.EventTaskDeleted,
		TaskID: task.ID,
		UserID: userID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
		"id":      task.ID,
	})
}

// ResetRecurring handles POST /api/recurring/reset
// Runs the same pass GetGoals runs on load; safe to repeat, a second call
// on the same day finds nothing due.
func ResetRecurring(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	db := database.GetDB()
	goals, err := loadGoalTree(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals"})
		return
	}

	resetIDs := runResetPass(db, goals, userID)

	c.JSON(http.StatusOK, gin.H{
		"resetTaskIds": resetIDs,
		"count":        len(resetIDs),
	})
}
