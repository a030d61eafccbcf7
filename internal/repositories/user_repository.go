package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "taskly/internal/models/db_models"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*dbm.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*dbm.User, error)
	Insert(ctx context.Context, user *dbm.User) error

	// SubscriptionFields decodes the user's jsonb subscription payload.
	SubscriptionFields(user *dbm.User) (dbm.SubscriptionFields, error)

	// UpdateSubscriptionFields overwrites the subscription payload and bumps
	// updated_at. Last write wins; no lock is taken.
	UpdateSubscriptionFields(ctx context.Context, userID uuid.UUID, fields dbm.SubscriptionFields) error

	// EnsureSubscriptionDefaults writes the default payload when the record
	// has none. Returns true when a write happened.
	EnsureSubscriptionDefaults(ctx context.Context, userID uuid.UUID) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*dbm.User, error) {
	var user dbm.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*dbm.User, error) {
	var user dbm.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Insert(ctx context.Context, user *dbm.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) SubscriptionFields(user *dbm.User) (dbm.SubscriptionFields, error) {
	var fields dbm.SubscriptionFields
	if len(user.Subscription) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(user.Subscription, &fields); err != nil {
		return dbm.SubscriptionFields{}, err
	}
	return fields, nil
}

func (r *userRepository) UpdateSubscriptionFields(ctx context.Context, userID uuid.UUID, fields dbm.SubscriptionFields) error {
	return r.db.WithContext(ctx).
		Model(&dbm.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"subscription": jsonRaw(fields),
			"updated_at":   time.Now().Unix(),
		}).Error
}

func (r *userRepository) EnsureSubscriptionDefaults(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := r.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, gorm.ErrRecordNotFound
	}

	fields, err := r.SubscriptionFields(user)
	if err == nil && fields.Plan != "" {
		return false, nil
	}

	if err := r.UpdateSubscriptionFields(ctx, userID, dbm.DefaultSubscriptionFields()); err != nil {
		return false, err
	}
	return true, nil
}

func jsonRaw(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}
