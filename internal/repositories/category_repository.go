package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	dbm "taskly/internal/models/db_models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *dbm.Category) error
	FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*dbm.Category, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]dbm.Category, error)
	GetNearestByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]dbm.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *dbm.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*dbm.Category, error) {
	var category dbm.Category
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND LOWER(name) = LOWER(?)", ownerID, name).
		First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]dbm.Category, error) {
	var categories []dbm.Category
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetNearestByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]dbm.Category, error) {
	var results []dbm.Category

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM categories
        WHERE (1 - (embedding <=> $1)) > 0.5
        ORDER BY embedding <=> $1
        LIMIT $2
    `

	err := r.db.WithContext(ctx).Raw(query, vecStr, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
