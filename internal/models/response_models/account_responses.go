package response_models

import "github.com/google/uuid"

type LoginResponse struct {
	Token string `json:"token"`
}

type AccountResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
