package request_models

type CreateTasksRequest struct {
	Prompt string `json:"prompt"`
}

type SuggestCategoryRequest struct {
	Description        string   `json:"description"`
	ExistingCategories []string `json:"existingCategories"`
}
