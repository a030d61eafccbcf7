package db_models

import (
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// Category groups tasks. The embedding backs similarity lookups for the
// suggest-category flow.
type Category struct {
	BaseModel
	OwnerID uuid.UUID `gorm:"index"`
	Name    string    `gorm:"not null"`

	Embedding pgvector.Vector `gorm:"type:vector(1536)"`

	Tasks []Task `gorm:"foreignKey:CategoryID"`
}
