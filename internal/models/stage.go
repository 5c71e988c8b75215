package models

import (
	"gorm.io/gorm"
)

// Stage is an ordered named grouping of tasks within a goal.
type Stage struct {
	ID         string `json:"id" gorm:"primaryKey"`
	GoalID     string `json:"goalId" gorm:"column:goal_id;index"`
	Name       string `json:"name" gorm:"not null"`
	OrderIndex int    `json:"orderIndex" gorm:"column:order_index"`
	Tasks      []Task `json:"tasks" gorm:"-"`
	gorm.Model
}

// TableName specifies the table name for Stage Model
func (Stage) TableName() string {
	return "stages"
}
