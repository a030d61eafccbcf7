package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "taskly/internal/models/db_models"
)

type BoardRepository interface {
	Create(ctx context.Context, board *dbm.Board) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page int, pageSize int) ([]dbm.Board, error)
	GetByID(ctx context.Context, boardID uuid.UUID) (*dbm.Board, error)
	GetByIDWithTasks(ctx context.Context, boardID uuid.UUID) (*dbm.Board, error)
}

type boardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepository{db: db}
}

func (r *boardRepository) Create(ctx context.Context, board *dbm.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

func (r *boardRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page int, pageSize int) ([]dbm.Board, error) {
	var boards []dbm.Board
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&boards).Error
	if err != nil {
		return nil, err
	}
	return boards, nil
}

func (r *boardRepository) GetByID(ctx context.Context, boardID uuid.UUID) (*dbm.Board, error) {
	var board dbm.Board
	err := r.db.WithContext(ctx).First(&board, "id = ?", boardID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *boardRepository) GetByIDWithTasks(ctx context.Context, boardID uuid.UUID) (*dbm.Board, error) {
	var board dbm.Board
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&board, "id = ?", boardID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}
