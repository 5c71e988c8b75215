package models

import (
	"gorm.io/gorm"
)

// TaskCategory classifies what kind of work a task represents.
// Only CategoryHabit participates in streak accounting.
type TaskCategory string

const (
	CategoryWork          TaskCategory = "work"
	CategoryThought       TaskCategory = "thought"
	CategoryCollaboration TaskCategory = "collaboration"
	CategoryStudy         TaskCategory = "study"
	CategoryResearch      TaskCategory = "research"
	CategoryAction        TaskCategory = "action"
	CategoryHabit         TaskCategory = "habit"
)

// Recurrence is the auto-reset cadence of a task.
type Recurrence string

const (
	RecurrenceNone   Recurrence = "none"
	RecurrenceDaily  Recurrence = "daily"
	RecurrenceWeekly Recurrence = "weekly"
)

// NoWeekday is the ResetWeekday value for tasks without a weekly reset day.
const NoWeekday = -1

// Task represents a single task within a stage.
// DueDate and LastCompletedDate are date-only strings ("2006-01-02") in the
// reference timezone. LastCompletedDate is stamped on incomplete->complete
// transitions and never cleared by a recurrence reset.
type Task struct {
	ID                string       `json:"id" gorm:"primaryKey"`
	StageID           string       `json:"stageId" gorm:"column:stage_id;index"`
	Text              string       `json:"text" gorm:"not null"`
	Category          TaskCategory `json:"category" gorm:"default:'action'"`
	Completed         bool         `json:"completed" gorm:"default:false"`
	DueDate           string       `json:"dueDate" gorm:"column:due_date"`
	LastCompletedDate string       `json:"lastCompletedDate" gorm:"column:last_completed_date"`
	Streak            int          `json:"streak" gorm:"default:0"`
	Recurrence        Recurrence   `json:"recurrence" gorm:"default:'none'"`
	ResetWeekday      int          `json:"resetWeekday" gorm:"column:reset_weekday"`
	OrderIndex        int          `json:"orderIndex" gorm:"column:order_index"`
	gorm.Model
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}
