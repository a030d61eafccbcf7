package response_models

import "github.com/google/uuid"

type BoardResponse struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	TaskCount int            `json:"task_count"`
	Tasks     []TaskResponse `json:"tasks,omitempty"`
}

type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Completed   bool       `json:"completed"`
	Position    int        `json:"position"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}
