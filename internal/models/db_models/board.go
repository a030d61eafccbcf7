package db_models

import (
	"github.com/google/uuid"
)

type Board struct {
	BaseModel
	OwnerID uuid.UUID `gorm:"index"`
	Name    string    `gorm:"not null"`

	Tasks []Task `gorm:"foreignKey:BoardID"`
}
