// Package engine holds the recurring-task and habit-streak rules: pure
// computations over loaded task state. Nothing here touches the database;
// callers persist the results.
package engine

import (
	"time"

	"purpoise-api/internal/clock"
	"purpoise-api/internal/models"
)

// ToggleUpdate is the exact field set to persist after a completion toggle.
// Nil pointer fields are left untouched in the store.
type ToggleUpdate struct {
	Completed         bool
	UpdatedAt         time.Time
	Streak            *int
	LastCompletedDate *string
}

// ComputeToggleUpdate computes the full update for flipping a task's
// completed state at the given instant. For habit tasks, completing the day
// after the previous completion extends the streak, completing after a gap
// restarts it at 1, and re-completing on the same day leaves it unchanged.
// Un-completing a habit decrements the streak, floored at zero, and leaves
// LastCompletedDate alone.
func ComputeToggleUpdate(task models.Task, newCompleted bool, now time.Time) ToggleUpdate {
	update := ToggleUpdate{
		Completed: newCompleted,
		UpdatedAt: now,
	}

	if task.Category != models.CategoryHabit {
		return update
	}

	today := clock.DayOf(now).Date

	if newCompleted {
		if task.LastCompletedDate == "" {
			// first completion ever
			update.Streak = intPtr(1)
		} else {
			switch daysDiff := clock.DaysBetween(task.LastCompletedDate, today); {
			case daysDiff == 1:
				update.Streak = intPtr(task.Streak + 1)
			case daysDiff > 1:
				update.Streak = intPtr(1)
			}
			// daysDiff == 0: same-day re-completion, streak unchanged
		}
		update.LastCompletedDate = &today
		return update
	}

	streak := task.Streak - 1
	if streak < 0 {
		streak = 0
	}
	update.Streak = &streak
	return update
}

func intPtr(v int) *int {
	return &v
}
