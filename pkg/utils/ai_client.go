package utils

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/pgvector/pgvector-go"
	"taskly/internal/models/response_models"
)

// TaskAIClientInterface is the single boundary to the generative-AI
// collaborator. Implementations classify raw provider errors into the tagged
// kinds from custom_err.go before returning.
type TaskAIClientInterface interface {
	GenerateTasks(ctx context.Context, prompt string) (*response_models.GeneratedTaskPlan, error)
	SuggestCategory(ctx context.Context, description string, existingCategories []string) (*response_models.CategorySuggestion, error)
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

// NewTaskAIClient creates an OpenAI or Gemini client based on config. An
// empty API key selects the deterministic mock client (development mode).
func NewTaskAIClient(provider, apiKey, model string) (TaskAIClientInterface, error) {
	if apiKey == "" {
		log.Printf("No AI credentials configured, using mock task client")
		return NewMockTaskAIClient(), nil
	}

	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAITaskAIClient(apiKey, model), nil
	case "gemini":
		return NewGeminiTaskAIClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

// ClassifyAIError folds a raw provider error into the closed error taxonomy.
// Keyword matching happens here once, not per route.
func ClassifyAIError(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota") || strings.Contains(msg, "rate"):
		return ErrAIQuotaExceeded
	case strings.Contains(msg, "auth") || strings.Contains(msg, "api key") || strings.Contains(msg, "permission"):
		return ErrAIAuthFailed
	case strings.Contains(msg, "network") || strings.Contains(msg, "fetch") ||
		strings.Contains(msg, "connection") || strings.Contains(msg, "timeout"):
		return ErrAIUnavailable
	default:
		return ErrAIUnexpected
	}
}
