package db_models

import (
	"gorm.io/datatypes"
)

// SubscriptionFields is the jsonb payload under the user's "subscription"
// column. Key names and nesting are part of the externally-owned schema and
// must match it exactly.
type SubscriptionFields struct {
	Plan              string `json:"plan,omitempty"`
	Status            string `json:"status,omitempty"`
	SubscriptionID    string `json:"subscriptionId,omitempty"`
	CancelAtPeriodEnd bool   `json:"cancelAtPeriodEnd"`
	CanceledAt        *int64 `json:"canceledAt"`
}

// DefaultSubscriptionFields are written by ensure-user-fields when a record
// has no subscription payload yet.
func DefaultSubscriptionFields() SubscriptionFields {
	return SubscriptionFields{
		Plan:              "free",
		Status:            "active",
		CancelAtPeriodEnd: false,
		CanceledAt:        nil,
	}
}

type User struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string

	Subscription datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Boards     []Board    `gorm:"foreignKey:OwnerID"`
	Categories []Category `gorm:"foreignKey:OwnerID"`
}
