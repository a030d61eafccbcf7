package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps the tagged error kinds from custom_err.go to HTTP
// responses. Raw collaborator errors never reach the client; they are logged
// here and surfaced as a generic message.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrDescriptionTooShort):
		RespondError(c, http.StatusBadRequest, "Description must be at least 10 characters")
	case errors.Is(err, ErrUnknownPlan):
		RespondError(c, http.StatusBadRequest, "Unknown plan or billing interval")
	case errors.Is(err, ErrUnknownProvider):
		RespondError(c, http.StatusBadRequest, "Unknown billing provider")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrAIAuthFailed):
		RespondError(c, http.StatusUnauthorized, "AI service rejected our credentials")
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrRecordNotFound):
		RespondError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrAIQuotaExceeded):
		RespondError(c, http.StatusTooManyRequests, "AI quota exceeded, try again later")
	case errors.Is(err, ErrAIUnavailable):
		RespondError(c, http.StatusServiceUnavailable, "AI service is unreachable")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unhandled service error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
