package database

import (
	"testing"

	"purpoise-api/internal/models"
	"purpoise-api/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBackfillLegacyRecurrence(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	goal := models.Goal{ID: "g-1", UserID: "u-1", Title: "Recurring Tasks"}
	require.NoError(t, db.Create(&goal).Error)
	daily := models.Stage{ID: "s-1", GoalID: "g-1", Name: "Daily Tasks"}
	weekly := models.Stage{ID: "s-2", GoalID: "g-1", Name: "Weekly Tasks", OrderIndex: 1}
	require.NoError(t, db.Create(&daily).Error)
	require.NoError(t, db.Create(&weekly).Error)

	// legacy rows carry no recurrence; blank the column after insert since
	// gorm fills the schema default on create
	legacyTasks := []models.Task{
		{ID: "t-1", StageID: "s-1", Text: "meditate"},
		{ID: "t-2", StageID: "s-2", Text: "Team sync notes (Friday)"},
		{ID: "t-3", StageID: "s-2", Text: "no weekday here"},
	}
	for i := range legacyTasks {
		require.NoError(t, db.Create(&legacyTasks[i]).Error)
		require.NoError(t, db.Model(&models.Task{}).Where("id = ?", legacyTasks[i].ID).
			UpdateColumn("recurrence", "").Error)
	}
	// already-explicit row must not be rewritten
	explicit := models.Task{ID: "t-4", StageID: "s-2", Text: "Monday and Friday review", Recurrence: models.RecurrenceWeekly, ResetWeekday: 3}
	require.NoError(t, db.Create(&explicit).Error)

	require.NoError(t, BackfillLegacyRecurrence(db))

	require.Equal(t, models.RecurrenceDaily, taskByID(t, db, "t-1").Recurrence)

	synced := taskByID(t, db, "t-2")
	require.Equal(t, models.RecurrenceWeekly, synced.Recurrence)
	require.Equal(t, 5, synced.ResetWeekday) // Friday

	require.Equal(t, models.RecurrenceNone, taskByID(t, db, "t-3").Recurrence)
	require.Equal(t, 3, taskByID(t, db, "t-4").ResetWeekday)

	var home models.Goal
	require.NoError(t, db.First(&home, "id = ?", "g-1").Error)
	require.True(t, home.IsRecurringHome)

	// idempotent on a second run
	require.NoError(t, BackfillLegacyRecurrence(db))
	require.Equal(t, 5, taskByID(t, db, "t-2").ResetWeekday)
}

// taskByID loads a task into a fresh struct; reusing one destination across
// First calls would carry the prior primary key into the next query.
func taskByID(t *testing.T, db *gorm.DB, id string) models.Task {
	t.Helper()
	var task models.Task
	require.NoError(t, db.First(&task, "id = ?", id).Error)
	return task
}

func TestBackfillLegacyRecurrence_IgnoresOtherGoals(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	goal := models.Goal{ID: "g-2", UserID: "u-1", Title: "Learn Go"}
	require.NoError(t, db.Create(&goal).Error)

	require.NoError(t, BackfillLegacyRecurrence(db))

	var got models.Goal
	require.NoError(t, db.First(&got, "id = ?", "g-2").Error)
	require.False(t, got.IsRecurringHome)
}
