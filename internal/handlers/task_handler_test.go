package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"purpoise-api/internal/middleware"
	"purpoise-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func taskRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.JWTAuthMiddleware())
	r.POST("/api/stages/:id/tasks", CreateTask)
	r.PUT("/api/tasks/:id", UpdateTask)
	r.PATCH("/api/tasks/:id/toggle", ToggleTask)
	r.DELETE("/api/tasks/:id", DeleteTask)
	return r
}

func toggle(t *testing.T, r *gin.Engine, token, taskID string) (models.Task, int) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/"+taskID+"/toggle", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var task models.Task
	_ = json.Unmarshal(w.Body.Bytes(), &task)
	return task, w.Code
}

func TestToggleTask_HabitStreakAcrossDays(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupDB(t)
	dailyID, _ := seedRecurringGoal(t, db, "u-1")
	r := taskRouter()
	token := tokenFor(t, "u-1", "alice")

	fixClock(t, "2024-01-01")
	task, code := toggle(t, r, token, dailyID)
	require.Equal(t, http.StatusOK, code)
	require.True(t, task.Completed)
	require.Equal(t, 1, task.Streak)
	require.Equal(t, "2024-01-01", task.LastCompletedDate)

	// the next morning the reset pass clears the flag; the streak survives
	require.NoError(t, db.Model(&models.Task{}).Where("id = ?", dailyID).
		UpdateColumn("completed", false).Error)

	fixClock(t, "2024-01-02")
	task, code = toggle(t, r, token, dailyID)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 2, task.Streak)
	require.Equal(t, "2024-01-02", task.LastCompletedDate)

	// a missed day drops the chain back to one
	require.NoError(t, db.Model(&models.Task{}).Where("id = ?", dailyID).
		UpdateColumn("completed", false).Error)

	fixClock(t, "2024-01-05")
	task, _ = toggle(t, r, token, dailyID)
	require.Equal(t, 1, task.Streak)

	var stored models.Task
	require.NoError(t, db.First(&stored, "id = ?", dailyID).Error)
	require.Equal(t, 1, stored.Streak)
	require.Equal(t, "2024-01-05", stored.LastCompletedDate)
}

func TestToggleTask_UncompleteDecrementsWithoutClearingDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupDB(t)
	dailyID, _ := seedRecurringGoal(t, db, "u-1")
	r := taskRouter()
	token := tokenFor(t, "u-1", "alice")

	fixClock(t, "2024-01-01")
	_, _ = toggle(t, r, token, dailyID)

	task, code := toggle(t, r, token, dailyID)
	require.Equal(t, http.StatusOK, code)
	require.False(t, task.Completed)
	require.Equal(t, 0, task.Streak)
	require.Equal(t, "2024-01-01", task.LastCompletedDate)

	// a second un-complete cannot push the streak negative
	_, _ = toggle(t, r, token, dailyID) // back on
	_, _ = toggle(t, r, token, dailyID) // off again
	task, _ = toggle(t, r, token, dailyID)
	_, _ = toggle(t, r, token, dailyID)

	var stored models.Task
	require.NoError(t, db.First(&stored, "id = ?", dailyID).Error)
	require.GreaterOrEqual(t, stored.Streak, 0)
}

func TestToggleTask_NonHabitLeavesStreakAlone(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupDB(t)
	_, weeklyID := seedRecurringGoal(t, db, "u-1")
	r := taskRouter()
	token := tokenFor(t, "u-1", "alice")

	fixClock(t, "2024-01-01")
	task, code := toggle(t, r, token, weeklyID)
	require.Equal(t, http.StatusOK, code)
	require.True(t, task.Completed)
	require.Equal(t, 0, task.Streak)
	require.Empty(t, task.LastCompletedDate)
}

func TestToggleTask_OtherUsersTaskIsNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupDB(t)
	dailyID, _ := seedRecurringGoal(t, db, "u-1")
	r := taskRouter()

	fixClock(t, "2024-01-01")
	_, code := toggle(t, r, tokenFor(t, "u-2", "bob"), dailyID)
	require.Equal(t, http.StatusNotFound, code)
}

func TestCreateTask_WeeklyRequiresWeekday(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupDB(t)
	seedRecurringGoal(t, db, "u-1")
	r := taskRouter()
	token := tokenFor(t, "u-1", "alice")

	body, _ := json.Marshal(map[string]any{
		"text":       "water the plants",
		"recurrence": "weekly",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/stages/s-weekly/tasks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body, _ = json.Marshal(map[string]any{
		"text":         "water the plants",
		"recurrence":   "weekly",
		"resetWeekday": 0,
	})
	req = httptest.NewRequest(http.MethodPost, "/api/stages/s-weekly/tasks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Task
	_ = json.Unmarshal(w.Body.Bytes(), &created)
	require.Equal(t, models.RecurrenceWeekly, created.Recurrence)
	require.Equal(t, 0, created.ResetWeekday) // Sunday survives the round trip
	require.Equal(t, 1, created.OrderIndex)   // appended after the seeded task
}

func TestUpdateTask_SwitchingOffWeeklyClearsWeekday(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupDB(t)
	_, weeklyID := seedRecurringGoal(t, db, "u-1")
	r := taskRouter()
	token := tokenFor(t, "u-1", "alice")

	body, _ := json.Marshal(map[string]any{"recurrence": "none"})
	req := httptest.NewRequest(http.MethodPut, "/api/tasks/"+weeklyID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Task
	_ = json.Unmarshal(w.Body.Bytes(), &updated)
	require.Equal(t, models.RecurrenceNone, updated.Recurrence)
	require.Equal(t, models.NoWeekday, updated.ResetWeekday)
}
