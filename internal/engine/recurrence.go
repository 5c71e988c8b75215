package engine

import (
	"purpoise-api/internal/clock"
	"purpoise-api/internal/models"
)

// ComputeResets scans a loaded recurring goal and returns, in stage then
// task order, the ids of completed tasks whose completed flag is due to be
// cleared for the new cycle. Daily tasks are due once their last completion
// is on an earlier date than today; weekly tasks additionally require
// today's weekday to match their reset weekday. Nothing is mutated, and a
// second pass on the same day is a no-op because the first pass leaves the
// tasks incomplete.
func ComputeResets(goal models.Goal, today clock.Day) []string {
	var due []string

	for _, stage := range goal.Stages {
		for _, task := range stage.Tasks {
			if !task.Completed || task.LastCompletedDate == "" {
				continue
			}

			// date-only ISO strings order lexicographically
			elapsed := task.LastCompletedDate < today.Date

			switch task.Recurrence {
			case models.RecurrenceDaily:
				if elapsed {
					due = append(due, task.ID)
				}
			case models.RecurrenceWeekly:
				if task.ResetWeekday == int(today.Weekday) && elapsed {
					due = append(due, task.ID)
				}
			}
		}
	}

	return due
}
