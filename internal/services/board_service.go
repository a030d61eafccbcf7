package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	dbm "taskly/internal/models/db_models"
	"taskly/internal/models/request_models"
	"taskly/internal/models/response_models"
	"taskly/internal/repositories"
	"taskly/pkg/utils"
)

type BoardServiceInterface interface {
	CreateBoard(ctx context.Context, ownerID uuid.UUID, request request_models.CreateBoardRequest) (*response_models.BoardResponse, error)
	ListBoards(ctx context.Context, ownerID uuid.UUID, page int, pageSize int) ([]response_models.BoardResponse, error)
	GetBoard(ctx context.Context, ownerID uuid.UUID, boardID uuid.UUID) (*response_models.BoardResponse, error)
	ImportPlan(ctx context.Context, ownerID uuid.UUID, boardID uuid.UUID, request request_models.ImportPlanRequest) (*response_models.BoardResponse, error)
	ToggleTask(ctx context.Context, ownerID uuid.UUID, taskID uuid.UUID) (*response_models.TaskResponse, error)
}

type BoardService struct {
	boardRepo    repositories.BoardRepository
	taskRepo     repositories.TaskRepository
	categoryRepo repositories.CategoryRepository
	aiClient     utils.TaskAIClientInterface
}

func NewBoardService(
	boardRepo repositories.BoardRepository,
	taskRepo repositories.TaskRepository,
	categoryRepo repositories.CategoryRepository,
	aiClient utils.TaskAIClientInterface,
) BoardServiceInterface {
	return &BoardService{
		boardRepo:    boardRepo,
		taskRepo:     taskRepo,
		categoryRepo: categoryRepo,
		aiClient:     aiClient,
	}
}

func (s *BoardService) CreateBoard(ctx context.Context, ownerID uuid.UUID, request request_models.CreateBoardRequest) (*response_models.BoardResponse, error) {
	board := &dbm.Board{
		OwnerID: ownerID,
		Name:    request.Name,
	}
	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.BoardResponse{ID: board.ID, Name: board.Name}, nil
}

func (s *BoardService) ListBoards(ctx context.Context, ownerID uuid.UUID, page int, pageSize int) ([]response_models.BoardResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	boards, err := s.boardRepo.ListByOwner(ctx, ownerID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.BoardResponse, 0, len(boards))
	for _, board := range boards {
		out = append(out, response_models.BoardResponse{
			ID:   board.ID,
			Name: board.Name,
		})
	}
	return out, nil
}

func (s *BoardService) GetBoard(ctx context.Context, ownerID uuid.UUID, boardID uuid.UUID) (*response_models.BoardResponse, error) {
	board, err := s.boardRepo.GetByIDWithTasks(ctx, boardID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if board == nil || board.OwnerID != ownerID {
		return nil, utils.ErrRecordNotFound
	}

	resp := &response_models.BoardResponse{
		ID:        board.ID,
		Name:      board.Name,
		TaskCount: len(board.Tasks),
	}
	for _, task := range board.Tasks {
		resp.Tasks = append(resp.Tasks, taskResponse(&task))
	}
	return resp, nil
}

// ImportPlan persists an AI-generated plan into the board: the category is
// created for the owner when new, the tasks appended in order.
func (s *BoardService) ImportPlan(ctx context.Context, ownerID uuid.UUID, boardID uuid.UUID, request request_models.ImportPlanRequest) (*response_models.BoardResponse, error) {
	board, err := s.boardRepo.GetByID(ctx, boardID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if board == nil || board.OwnerID != ownerID {
		return nil, utils.ErrRecordNotFound
	}

	category, err := s.ensureCategory(ctx, ownerID, request.Category)
	if err != nil {
		return nil, err
	}

	position, err := s.taskRepo.NextPosition(ctx, boardID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	tasks := make([]dbm.Task, 0, len(request.Tasks))
	for i, item := range request.Tasks {
		priority := dbm.TaskPriority(item.Priority)
		switch priority {
		case dbm.PriorityHigh, dbm.PriorityMedium, dbm.PriorityLow:
		default:
			priority = dbm.PriorityMedium
		}

		task := dbm.Task{
			BoardID:     boardID,
			Description: item.Description,
			Priority:    priority,
			Position:    position + i,
			Tags:        item.Tags,
		}
		if category != nil {
			task.CategoryID = &category.ID
		}
		tasks = append(tasks, task)
	}

	if err := s.taskRepo.CreateBatch(ctx, tasks); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return s.GetBoard(ctx, ownerID, boardID)
}

func (s *BoardService) ToggleTask(ctx context.Context, ownerID uuid.UUID, taskID uuid.UUID) (*response_models.TaskResponse, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if task == nil {
		return nil, utils.ErrRecordNotFound
	}

	board, err := s.boardRepo.GetByID(ctx, task.BoardID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if board == nil || board.OwnerID != ownerID {
		return nil, utils.ErrRecordNotFound
	}

	if err := s.taskRepo.SetCompleted(ctx, taskID, !task.Completed); err != nil {
		return nil, utils.ErrDatabaseError
	}

	task.Completed = !task.Completed
	resp := taskResponse(task)
	return &resp, nil
}

func (s *BoardService) ensureCategory(ctx context.Context, ownerID uuid.UUID, name string) (*dbm.Category, error) {
	existing, err := s.categoryRepo.FindByName(ctx, ownerID, name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return existing, nil
	}

	category := &dbm.Category{
		OwnerID: ownerID,
		Name:    name,
	}
	// Embed the name so the category participates in similarity lookups.
	if vector, err := s.aiClient.GetEmbedding(ctx, name); err == nil {
		category.Embedding = vector
	} else {
		log.Printf("category embedding failed for %q: %v", name, err)
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return category, nil
}

func taskResponse(task *dbm.Task) response_models.TaskResponse {
	return response_models.TaskResponse{
		ID:          task.ID,
		Description: task.Description,
		Priority:    string(task.Priority),
		Completed:   task.Completed,
		Position:    task.Position,
		CategoryID:  task.CategoryID,
		Tags:        task.Tags,
	}
}
