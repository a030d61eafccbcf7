package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"

	"taskly/internal/models/response_models"
)

// OpenAITaskAIClient implements TaskAIClientInterface via chat completions in
// JSON mode plus the embeddings API.
type OpenAITaskAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAITaskAIClient(apiKey, model string) TaskAIClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITaskAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAITaskAIClient) GenerateTasks(ctx context.Context, prompt string) (*response_models.GeneratedTaskPlan, error) {
	system := `You break goals into 3-7 concrete tasks. Respond with JSON only:
{"category":"string","tasks":[{"description":"string","priority":"high|medium|low"}]}`

	content, err := c.complete(ctx, system, prompt)
	if err != nil {
		return nil, err
	}

	var plan response_models.GeneratedTaskPlan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		log.Printf("openai returned malformed plan JSON: %v", err)
		return nil, ErrAIUnexpected
	}
	if plan.Category == "" || len(plan.Tasks) == 0 {
		return nil, ErrAIUnexpected
	}

	return &plan, nil
}

func (c *OpenAITaskAIClient) SuggestCategory(ctx context.Context, description string, existingCategories []string) (*response_models.CategorySuggestion, error) {
	system := `You assign task categories. Prefer an existing category; invent a new one only
when none fits. Respond with JSON only:
{"category":"string","is_new":bool,"confidence":0.0,"reasoning":"one sentence"}`

	user := fmt.Sprintf("Task: %s\nExisting categories: %s", description, strings.Join(existingCategories, ", "))

	content, err := c.complete(ctx, system, user)
	if err != nil {
		return nil, err
	}

	var suggestion response_models.CategorySuggestion
	if err := json.Unmarshal([]byte(content), &suggestion); err != nil || suggestion.Category == "" {
		return nil, ErrAIUnexpected
	}

	return &suggestion, nil
}

func (c *OpenAITaskAIClient) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		log.Printf("openai completion failed: %v", err)
		return "", ClassifyAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrAIUnexpected
	}
	return cleanJSONResponse(resp.Choices[0].Message.Content), nil
}

func (c *OpenAITaskAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.SmallEmbedding3,
	})
	if err != nil {
		log.Printf("openai embedding failed: %v", err)
		return pgvector.Vector{}, ClassifyAIError(err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, ErrAIUnexpected
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}
