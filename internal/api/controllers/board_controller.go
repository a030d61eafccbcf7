package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskly/internal/models/request_models"
	"taskly/internal/services"
	"taskly/pkg/utils"
)

type BoardController struct {
	boardService services.BoardServiceInterface
}

func NewBoardController(boardService services.BoardServiceInterface) *BoardController {
	return &BoardController{
		boardService: boardService,
	}
}

func (ctl *BoardController) CreateBoardHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Board name is required")
		return
	}

	board, err := ctl.boardService.CreateBoard(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, board, localize(c, "BoardCreated", "Board created"))
}

func (ctl *BoardController) ListBoardsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	boards, err := ctl.boardService.ListBoards(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, boards, "")
}

func (ctl *BoardController) GetBoardHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid board id")
		return
	}

	board, err := ctl.boardService.GetBoard(c.Request.Context(), userID, boardID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, board, "")
}

// ImportPlanHandler appends a generated task plan to an existing board.
func (ctl *BoardController) ImportPlanHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid board id")
		return
	}

	var req request_models.ImportPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Tasks) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Category and at least one task are required")
		return
	}

	board, err := ctl.boardService.ImportPlan(c.Request.Context(), userID, boardID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, board, localize(c, "PlanImported", "Plan imported"))
}

func (ctl *BoardController) ToggleTaskHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid task id")
		return
	}

	task, err := ctl.boardService.ToggleTask(c.Request.Context(), userID, taskID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, task, "")
}
