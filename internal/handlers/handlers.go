package handlers

import (
	"errors"

	"purpoise-api/internal/clock"
	"purpoise-api/internal/database"
	"purpoise-api/internal/models"

	"gorm.io/gorm"
)

// Clock supplies "now" and "today" for toggles, resets and digests.
// Tests swap in a fixed clock.
var Clock = clock.System()

var errNotOwned = errors.New("record not found for user")

// goalForUser fetches a goal scoped to its owner.
func goalForUser(userID, goalID string) (models.Goal, error) {
	var goal models.Goal
	err := database.GetDB().Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return goal, errNotOwned
	}
	return goal, err
}

// stageForUser fetches a stage after verifying its goal belongs to the user.
func stageForUser(userID, stageID string) (models.Stage, error) {
	var stage models.Stage
	if err := database.GetDB().Where("id = ?", stageID).First(&stage).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return stage, errNotOwned
		}
		return stage, err
	}
	if _, err := goalForUser(userID, stage.GoalID); err != nil {
		return stage, err
	}
	return stage, nil
}

// taskForUser fetches a task after walking stage and goal ownership.
func taskForUser(userID, taskID string) (models.Task, error) {
	var task models.Task
	if err := database.GetDB().Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return task, errNotOwned
		}
		return task, err
	}
	if _, err := stageForUser(userID, task.StageID); err != nil {
		return task, err
	}
	return task, nil
}
