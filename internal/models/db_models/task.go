package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

type Task struct {
	BaseModel
	BoardID    uuid.UUID  `gorm:"index"`
	CategoryID *uuid.UUID `gorm:"index"`

	Description string       `gorm:"not null"`
	Priority    TaskPriority `gorm:"default:'medium'"`
	Completed   bool         `gorm:"default:false"`
	Position    int

	Tags pq.StringArray `gorm:"type:text[]"`
}
