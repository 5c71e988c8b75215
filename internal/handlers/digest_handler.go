package handlers

import (
	"net/http"
	"time"

	"purpoise-api/internal/clock"
	"purpoise-api/internal/database"
	"purpoise-api/internal/models"

	"github.com/gin-gonic/gin"
)

// digestLimit caps how many tasks a digest lists.
const digestLimit = 5

// DigestTask is one entry of the weekly digest.
type DigestTask struct {
	models.Task
	GoalTitle string `json:"goalTitle"`
}

// GetWeeklyDigest handles GET /api/dashboard/digest
// Early in the week (Sun-Tue) it surfaces tasks due this week ("focus");
// from Wednesday it surfaces what was completed so far ("review"), using
// the mutation timestamp as the completion marker.
func GetWeeklyDigest(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	goals, err := loadGoalTree(database.GetDB(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals"})
		return
	}

	today := Clock.Today()
	now := Clock.Now()
	weekStart := startOfWeek(now, today.Weekday)

	isStartOfWeek := today.Weekday <= time.Tuesday

	var digestType string
	var picked []DigestTask

	if isStartOfWeek {
		digestType = "focus"
		weekEnd := weekStart.AddDate(0, 0, 7)
		picked = collectDigest(goals, func(t models.Task) bool {
			if t.DueDate == "" {
				return false
			}
			due, err := time.Parse(clock.DateLayout, t.DueDate)
			if err != nil {
				return false
			}
			return !due.Before(weekStart) && !due.After(weekEnd)
		})
	} else {
		digestType = "review"
		picked = collectDigest(goals, func(t models.Task) bool {
			if !t.Completed || t.UpdatedAt.IsZero() {
				return false
			}
			return !t.UpdatedAt.Before(weekStart) && !t.UpdatedAt.After(now)
		})
	}

	if len(picked) > digestLimit {
		picked = picked[:digestLimit]
	}

	c.JSON(http.StatusOK, gin.H{
		"type":  digestType,
		"tasks": picked,
	})
}

// startOfWeek returns midnight of the most recent Sunday.
func startOfWeek(now time.Time, weekday time.Weekday) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, -int(weekday))
}

func collectDigest(goals []models.Goal, match func(models.Task) bool) []DigestTask {
	picked := []DigestTask{}
	for _, goal := range goals {
		for _, stage := range goal.Stages {
			for _, task := range stage.Tasks {
				if match(task) {
					picked = append(picked, DigestTask{Task: task, GoalTitle: goal.Title})
				}
			}
		}
	}
	return picked
}
