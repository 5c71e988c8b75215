package handlers

import (
	"errors"
	"log"
	"net/http"

	"purpoise-api/internal/database"
	"purpoise-api/internal/engine"
	"purpoise-api/internal/models"
	"purpoise-api/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateGoalRequest carries a goal with optional nested stages and tasks,
// the shape a chat-generated plan arrives in.
type CreateGoalRequest struct {
	Title           string               `json:"title" binding:"required"`
	Description     string               `json:"description"`
	IsRecurringHome *bool                `json:"isRecurringHome"`
	Stages          []CreateStageRequest `json:"stages"`
}

// CreateStageRequest is one stage of a nested goal create.
type CreateStageRequest struct {
	Name  string              `json:"name" binding:"required"`
	Tasks []CreateTaskRequest `json:"tasks"`
}

// UpdateGoalRequest represents the request payload for updating a goal
type UpdateGoalRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	RAGStatus   *models.RAGStatus `json:"ragStatus"`
}

// UpdateRAGRequest is a minimal request to change a goal's RAG status
type UpdateRAGRequest struct {
	RAGStatus models.RAGStatus `json:"ragStatus" binding:"required"`
}

func validRAG(s models.RAGStatus) bool {
	return s == models.RAGRed || s == models.RAGAmber || s == models.RAGGreen
}

// loadGoalTree fetches the user's goals with stages and tasks, ordered by
// order_index at both levels. The load order is the reset pass order.
func loadGoalTree(db *gorm.DB, userID string) ([]models.Goal, error) {
	var goals []models.Goal
	if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&goals).Error; err != nil {
		return nil, err
	}

	for gi := range goals {
		var stages []models.Stage
		if err := db.Where("goal_id = ?", goals[gi].ID).Order("order_index").Find(&stages).Error; err != nil {
			return nil, err
		}
		for si := range stages {
			var tasks []models.Task
			if err := db.Where("stage_id = ?", stages[si].ID).Order("order_index").Find(&tasks).Error; err != nil {
				return nil, err
			}
			stages[si].Tasks = tasks
		}
		goals[gi].Stages = stages
	}
	return goals, nil
}

// runResetPass clears completed flags on recurring tasks that are due, in
// load order, and reflects the resets in the passed tree. One task's write
// failure is logged and does not block the rest; only the completed column
// is written, so last-completed dates and update timestamps survive.
func runResetPass(db *gorm.DB, goals []models.Goal, userID string) []string {
	done := []string{}
	for gi := range goals {
		goal := &goals[gi]
		if !goal.IsRecurringHome {
			continue
		}

		var goalDone []string
		for _, id := range engine.ComputeResets(*goal, Clock.Today()) {
			err := db.Model(&models.Task{}).Where("id = ?", id).
				UpdateColumn("completed", false).Error
			if err != nil {
				log.Printf("reset task %s: %v", id, err)
				continue
			}
			goalDone = append(goalDone, id)
			for si := range goal.Stages {
				for ti := range goal.Stages[si].Tasks {
					if goal.Stages[si].Tasks[ti].ID == id {
						goal.Stages[si].Tasks[ti].Completed = false
					}
				}
			}
		}

		if len(goalDone) > 0 {
			// the event carries only this goal's resets
			realtime.GetHub().BroadcastEvent(realtime.Event{
				Type:    realtime.EventTasksReset,
				TaskIDs: goalDone,
				GoalID:  goal.ID,
				UserID:  userID,
			})
			done = append(done, goalDone...)
		}
	}
	return done
}

// GetGoals handles GET /api/goals
// Returns the full goal tree and runs the lazy recurrence reset pass, so
// opening the app on a new day clears yesterday's recurring completions.
func GetGoals(c *gin.Context) {
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
		"goals":        goals,
		"count":        len(goals),
		"resetTaskIds": resetIDs,
	})
}

// CreateGoal handles POST /api/goals
// Accepts nested stages/tasks. Recurrence comes from explicit fields when
// present; payloads without them (legacy-shaped imports) fall back to the
// stage-name and weekday-in-text heuristics once, at creation.
func CreateGoal(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isHome := engine.IsRecurringHomeTitle(req.Title)
	if req.IsRecurringHome != nil {
		isHome = *req.IsRecurringHome
	}

	goal := models.Goal{
		ID:              uuid.NewString(),
		UserID:          userID,
		Title:           req.Title,
		Description:     req.Description,
		RAGStatus:       models.RAGGreen,
		IsRecurringHome: isHome,
	}

	db := database.GetDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&goal).Error; err != nil {
			return err
		}
		for si, stageReq := range req.Stages {
			stage := models.Stage{
				ID:         uuid.NewString(),
				GoalID:     goal.ID,
				Name:       stageReq.Name,
				OrderIndex: si,
			}
			if err := tx.Create(&stage).Error; err != nil {
				return err
			}
			for ti, taskReq := range stageReq.Tasks {
				task, err := buildTask(stage, taskReq, ti)
				if err != nil {
					return err
				}
				if err := tx.Create(&task).Error; err != nil {
					return err
				}
				stage.Tasks = append(stage.Tasks, task)
			}
			goal.Stages = append(goal.Stages, stage)
		}
		return nil
	})
	if err != nil {
		var bad badRequestError
		if errors.As(err, &bad) {
			c.JSON(http.StatusBadRequest, gin.H{"error": bad.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// GetGoalByID handles GET /api/goals/:id
func GetGoalByID(c *gin.Context) {
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

	db := database.GetDB()
	var stages []models.Stage
	if err := db.Where("goal_id = ?", goal.ID).Order("order_index").Find(&stages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stages"})
		return
	}
	for si := range stages {
		var tasks []models.Task
		if err := db.Where("stage_id = ?", stages[si].ID).Order("order_index").Find(&tasks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
			return
		}
		stages[si].Tasks = tasks
	}
	goal.Stages = stages

	c.JSON(http.StatusOK, goal)
}

// UpdateGoal handles PUT /api/goals/:id
func UpdateGoal(c *gin.Context) {
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

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.RAGStatus != nil {
		if !validRAG(*req.RAGStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ragStatus"})
			return
		}
		goal.RAGStatus = *req.RAGStatus
	}

	if err := database.GetDB().Save(&goal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update goal"})
		return
	}

	realtime.GetHub().BroadcastEvent(realtime.Event{
		Type:   realtime.EventGoalUpdated,
		GoalID: goal.ID,
		UserID: userID,
	})

	c.JSON(http.StatusOK, goal)
}

// UpdateGoalRAG handles PATCH /api/goals/:id/rag
func UpdateGoalRAG(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	var req UpdateRAGRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validRAG(req.RAGStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ragStatus"})
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

	goal.RAGStatus = req.RAGStatus
	if err := database.GetDB().Model(&goal).Update("rag_status", req.RAGStatus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update RAG status"})
		return
	}

	c.JSON(http.StatusOK, goal)
}

// DeleteGoal handles DELETE /api/goals/:id
// Removes the goal with its stages and tasks.
func DeleteGoal(c *gin.Context) {
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

	db := database.GetDB()
	err = db.Transaction(func(tx *gorm.DB) error {
		var stages []models.Stage
		if err := tx.Where("goal_id = ?", goal.ID).Find(&stages).Error; err != nil {
			return err
		}
		for _, stage := range stages {
			if err := tx.Where("stage_id = ?", stage.ID).Delete(&models.Task{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("goal_id = ?", goal.ID).Delete(&models.Stage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&goal).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Goal deleted successfully",
		"id":      goal.ID,
	})
}

// GetGoalStats handles GET /api/goals/:id/stats
// Returns completion progress across all of the goal's tasks.
func GetGoalStats(c *gin.Context) {
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

	db := database.GetDB()

	type row struct {
		Completed bool
		Count     int64
	}
	var rows []row
	err = db.Model(&models.Task{}).
		Select("tasks.completed, COUNT(*) as count").
		Joins("JOIN stages ON stages.id = tasks.stage_id").
		Where("stages.goal_id = ?", goal.ID).
		Group("tasks.completed").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	var completed, total int64
	for _, r := range rows {
		total += r.Count
		if r.Completed {
			completed += r.Count
		}
	}

	progress := 0
	if total > 0 {
		progress = int(float64(completed)/float64(total)*100 + 0.5)
	}

	c.JSON(http.StatusOK, gin.H{
		"goalId":    goal.ID,
		"completed": completed,
		"total":     total,
		"progress":  progress,
	})
}
