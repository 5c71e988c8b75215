package handlers

import (
	"testing"

	"purpoise-api/internal/auth"
	"purpoise-api/internal/clock"
	"purpoise-api/internal/database"
	"purpoise-api/internal/models"
	"purpoise-api/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupDB swaps in a fresh in-memory database for one test.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db
	return db
}

// fixClock pins the handler clock to a date and restores it afterwards.
func fixClock(t *testing.T, date string) {
	t.Helper()
	clk, err := clock.FixedAt(date)
	require.NoError(t, err)
	prev := Clock
	Clock = clk
	t.Cleanup(func() { Clock = prev })
}

func tokenFor(t *testing.T, userID, username string) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, username)
	require.NoError(t, err)
	return token
}

// seedRecurringGoal creates a recurring home goal with a daily and a
// weekly stage, each holding one task, and returns the task ids.
func seedRecurringGoal(t *testing.T, db *gorm.DB, userID string) (dailyID, weeklyID string) {
	t.Helper()

	goal := models.Goal{ID: "g-rec", UserID: userID, Title: "Recurring Tasks", IsRecurringHome: true}
	require.NoError(t, db.Create(&goal).Error)

	daily := models.Stage{ID: "s-daily", GoalID: goal.ID, Name: "Daily Tasks", OrderIndex: 0}
	weekly := models.Stage{ID: "s-weekly", GoalID: goal.ID, Name: "Weekly Tasks", OrderIndex: 1}
	require.NoError(t, db.Create(&daily).Error)
	require.NoError(t, db.Create(&weekly).Error)

	dailyTask := models.Task{
		ID:         "t-daily",
		StageID:    daily.ID,
		Text:       "meditate",
		Category:   models.CategoryHabit,
		Recurrence: models.RecurrenceDaily,
	}
	weeklyTask := models.Task{
		ID:           "t-weekly",
		StageID:      weekly.ID,
		Text:         "Team sync notes (Friday)",
		Category:     models.CategoryAction,
		Recurrence:   models.RecurrenceWeekly,
		ResetWeekday: 5,
	}
	require.NoError(t, db.Create(&dailyTask).Error)
	require.NoError(t, db.Create(&weeklyTask).Error)

	return dailyTask.ID, weeklyTask.ID
}
