package board_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"taskly/internal/api/controllers"
	"taskly/internal/repositories"
	"taskly/internal/services"
	"taskly/pkg/utils"
)

var Module = fx.Provide(
	provideBoardRepo, provideTaskRepo, provideCategoryRepo, provideBoardService, provideBoardController)

func provideBoardRepo(db *gorm.DB) repositories.BoardRepository {
	return repositories.NewBoardRepository(db)
}

func provideTaskRepo(db *gorm.DB) repositories.TaskRepository {
	return repositories.NewTaskRepository(db)
}

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideBoardService(
	boardRepo repositories.BoardRepository,
	taskRepo repositories.TaskRepository,
	categoryRepo repositories.CategoryRepository,
	aiClient utils.TaskAIClientInterface,
) services.BoardServiceInterface {
	return services.NewBoardService(boardRepo, taskRepo, categoryRepo, aiClient)
}

func provideBoardController(boardService services.BoardServiceInterface) *controllers.BoardController {
	return controllers.NewBoardController(boardService)
}
