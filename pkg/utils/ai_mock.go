package utils

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/pgvector/pgvector-go"

	"taskly/internal/models/response_models"
)

const mockPromptPreviewLen = 40

// MockTaskAIClient is the development-mode collaborator used when no AI
// credentials are configured. All output is deterministic for a given input.
type MockTaskAIClient struct{}

func NewMockTaskAIClient() TaskAIClientInterface {
	return &MockTaskAIClient{}
}

func (m *MockTaskAIClient) GenerateTasks(ctx context.Context, prompt string) (*response_models.GeneratedTaskPlan, error) {
	preview := truncatePrompt(prompt, mockPromptPreviewLen)

	return &response_models.GeneratedTaskPlan{
		Category: "General",
		Tasks: []response_models.TaskItem{
			{Description: fmt.Sprintf("Plan out: %s", preview), Priority: "high"},
			{Description: "Break the work into concrete steps", Priority: "medium"},
			{Description: "Review progress and adjust the plan", Priority: "low"},
		},
	}, nil
}

func (m *MockTaskAIClient) SuggestCategory(ctx context.Context, description string, existingCategories []string) (*response_models.CategorySuggestion, error) {
	lower := strings.ToLower(description)
	for _, cat := range existingCategories {
		if cat != "" && strings.Contains(lower, strings.ToLower(cat)) {
			return &response_models.CategorySuggestion{
				Category:   cat,
				IsNew:      false,
				Confidence: 0.8,
				Reasoning:  "Description mentions an existing category",
			}, nil
		}
	}

	return &response_models.CategorySuggestion{
		Category:   "General",
		IsNew:      len(existingCategories) == 0 || !containsFold(existingCategories, "General"),
		Confidence: 0.5,
		Reasoning:  "No existing category matched the description",
	}, nil
}

// GetEmbedding maps text onto a deterministic 1536-dim vector by word
// hashing. Good enough to exercise similarity lookups without a provider.
func (m *MockTaskAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	words := strings.Fields(text)

	const dimensions = 1536
	vector := make([]float32, dimensions)

	for _, word := range words {
		hash := hashWord(word)
		for i := 0; i < dimensions; i++ {
			influence := math.Sin(float64(hash+uint32(i))) * 0.1
			vector[i] += float32(influence)
		}
	}

	magnitude := float32(0)
	for _, val := range vector {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))

	if magnitude > 0 {
		for i := range vector {
			vector[i] /= magnitude
		}
	}

	return pgvector.NewVector(vector), nil
}

func truncatePrompt(prompt string, max int) string {
	prompt = strings.TrimSpace(prompt)
	if len(prompt) <= max {
		return prompt
	}
	return prompt[:max]
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

func hashWord(word string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return h.Sum32()
}
