package models

import (
	"gorm.io/gorm"
)

// RAGStatus is a coarse red/amber/green health marker for a goal.
type RAGStatus string

const (
	RAGRed   RAGStatus = "red"
	RAGAmber RAGStatus = "amber"
	RAGGreen RAGStatus = "green"
)

// Goal is a named container of stages owned by a single user.
// Exactly one goal per user may be flagged as the recurring home; its tasks
// are the only ones the recurrence resetter touches.
type Goal struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	UserID          string    `json:"-" gorm:"column:user_id;index"`
	Title           string    `json:"title" gorm:"not null"`
	Description     string    `json:"description"`
	RAGStatus       RAGStatus `json:"ragStatus" gorm:"column:rag_status;default:'green'"`
	IsRecurringHome bool      `json:"isRecurringHome" gorm:"column:is_recurring_home;default:false"`
	Stages          []Stage   `json:"stages" gorm:"-"`
	gorm.Model
}

// TableName specifies the table name for Goal Model
func (Goal) TableName() string {
	return "goals"
}
