package response_models

type TaskItem struct {
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type GeneratedTaskPlan struct {
	Category string     `json:"category"`
	Tasks    []TaskItem `json:"tasks"`
}

type CategorySuggestion struct {
	Category   string  `json:"category"`
	IsNew      bool    `json:"is_new"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
}
