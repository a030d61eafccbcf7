package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskly/internal/models/request_models"
	"taskly/internal/services"
	"taskly/pkg/utils"
)

type AIController struct {
	aiService services.AIServiceInterface
}

func NewAIController(aiService services.AIServiceInterface) *AIController {
	return &AIController{
		aiService: aiService,
	}
}

// CreateTasksHandler turns a free-form prompt into a categorized task plan.
// A missing or blank prompt is rejected before the model is consulted.
func (ctl *AIController) CreateTasksHandler(c *gin.Context) {
	var req request_models.CreateTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		utils.RespondError(c, http.StatusBadRequest, "Prompt is required")
		return
	}

	plan, err := ctl.aiService.CreateTasks(c.Request.Context(), req.Prompt)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, localize(c, "TaskPlanCreated", "Task plan created"))
}

// SuggestCategoryHandler proposes a category for a task description. The
// caller may be anonymous; an attached user id only enriches the candidate
// set with their stored categories.
func (ctl *AIController) SuggestCategoryHandler(c *gin.Context) {
	var req request_models.SuggestCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var ownerID *uuid.UUID
	if raw := c.GetString("user_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			ownerID = &id
		}
	}

	suggestion, err := ctl.aiService.SuggestCategory(c.Request.Context(), ownerID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestion, localize(c, "CategorySuggested", "Category suggested"))
}
