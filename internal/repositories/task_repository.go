package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "taskly/internal/models/db_models"
)

type TaskRepository interface {
	CreateBatch(ctx context.Context, tasks []dbm.Task) error
	GetByID(ctx context.Context, taskID uuid.UUID) (*dbm.Task, error)
	SetCompleted(ctx context.Context, taskID uuid.UUID, completed bool) error
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]dbm.Task, error)
	NextPosition(ctx context.Context, boardID uuid.UUID) (int, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) CreateBatch(ctx context.Context, tasks []dbm.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tasks).Error
}

func (r *taskRepository) GetByID(ctx context.Context, taskID uuid.UUID) (*dbm.Task, error) {
	var task dbm.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", taskID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) SetCompleted(ctx context.Context, taskID uuid.UUID, completed bool) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Task{}).
		Where("id = ?", taskID).
		Update("completed", completed).Error
}

func (r *taskRepository) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]dbm.Task, error) {
	var tasks []dbm.Task
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("position ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) NextPosition(ctx context.Context, boardID uuid.UUID) (int, error) {
	var max int
	err := r.db.WithContext(ctx).
		Model(&dbm.Task{}).
		Where("board_id = ?", boardID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
