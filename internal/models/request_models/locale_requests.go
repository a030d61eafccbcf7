package request_models

type ChangeLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}
