package engine

import (
	"strings"
	"time"

	"purpoise-api/internal/models"
)

// Legacy data encoded recurrence in display text: a stage name containing
// "daily" or "weekly" classified its tasks, and weekly tasks named their
// reset day somewhere in the task text ("Team sync notes (Friday)"). These
// helpers exist only to backfill the explicit recurrence fields at
// migration time and when importing legacy-shaped payloads; the engine
// proper never re-derives recurrence from text.

var weekdayNames = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// ClassifyStageName maps a stage name to a recurrence class by
// case-insensitive substring match. "daily" wins when both appear.
func ClassifyStageName(name string) models.Recurrence {
	lower := strings.ToLower(name)
	if strings.Contains(lower, "daily") {
		return models.RecurrenceDaily
	}
	if strings.Contains(lower, "weekly") {
		return models.RecurrenceWeekly
	}
	return models.RecurrenceNone
}

// WeekdayFromText scans text for English weekday names. It reports the
// weekday only when exactly one distinct day is mentioned; zero or multiple
// mentions are ambiguous and return false (such tasks are never auto-reset).
func WeekdayFromText(text string) (time.Weekday, bool) {
	lower := strings.ToLower(text)
	found := -1
	for i, name := range weekdayNames {
		if strings.Contains(lower, name) {
			if found != -1 {
				return 0, false
			}
			found = i
		}
	}
	if found == -1 {
		return 0, false
	}
	return time.Weekday(found), true
}

// InferRecurrence derives a task's explicit recurrence fields from its
// legacy stage name and task text. Weekly-stage tasks with ambiguous text
// come out as RecurrenceNone: the reset path must skip, never guess.
func InferRecurrence(stageName, taskText string) (models.Recurrence, int) {
	switch ClassifyStageName(stageName) {
	case models.RecurrenceDaily:
		return models.RecurrenceDaily, models.NoWeekday
	case models.RecurrenceWeekly:
		if day, ok := WeekdayFromText(taskText); ok {
			return models.RecurrenceWeekly, int(day)
		}
		return models.RecurrenceNone, models.NoWeekday
	default:
		return models.RecurrenceNone, models.NoWeekday
	}
}

// IsRecurringHomeTitle reports whether a goal title marks the legacy
// recurring-tasks container.
func IsRecurringHomeTitle(title string) bool {
	return strings.Contains(title, "Recurring Tasks")
}
