package request_models

type CreateBoardRequest struct {
	Name string `json:"name" binding:"required"`
}

// ImportPlanRequest persists an AI-generated plan into a board.
type ImportPlanRequest struct {
	Category string              `json:"category" binding:"required"`
	Tasks    []ImportTaskRequest `json:"tasks" binding:"required,dive"`
}

type ImportTaskRequest struct {
	Description string   `json:"description" binding:"required"`
	Priority    string   `json:"priority"`
	Tags        []string `json:"tags"`
}
