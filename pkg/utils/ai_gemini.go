package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/option"

	"taskly/internal/models/response_models"
)

// GeminiTaskAIClient implements TaskAIClientInterface on Google's Gemini
// models. Generation runs in JSON mode so responses need no brace matching.
type GeminiTaskAIClient struct {
	client         *genai.Client
	model          string
	embeddingModel string
}

func NewGeminiTaskAIClient(apiKey, model string) (TaskAIClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTaskAIClient{
		client:         client,
		model:          model,
		embeddingModel: "text-embedding-004",
	}, nil
}

func (c *GeminiTaskAIClient) GenerateTasks(ctx context.Context, prompt string) (*response_models.GeneratedTaskPlan, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.2)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(2000)

	schema := `{"category":"string","tasks":[{"description":"string","priority":"high|medium|low"}]}`

	instruction := fmt.Sprintf(`
Break the goal below into 3-7 concrete, actionable tasks and pick one short
category name for the whole set. Return JSON only, matching this schema
exactly:
%s

Goal: %s

Rules:
- Each description is a single imperative sentence.
- priority is one of "high", "medium", "low".
Return JSON only. No comments, no markdown.
`, schema, prompt)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(instruction))
	if err != nil {
		log.Printf("gemini task generation failed: %v", err)
		return nil, ClassifyAIError(err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, ErrAIUnexpected
	}

	content := cleanJSONResponse(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))

	var plan response_models.GeneratedTaskPlan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		log.Printf("gemini returned malformed plan JSON: %v", err)
		return nil, ErrAIUnexpected
	}
	if plan.Category == "" || len(plan.Tasks) == 0 {
		return nil, ErrAIUnexpected
	}

	return &plan, nil
}

func (c *GeminiTaskAIClient) SuggestCategory(ctx context.Context, description string, existingCategories []string) (*response_models.CategorySuggestion, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetMaxOutputTokens(500)

	var existing strings.Builder
	for _, cat := range existingCategories {
		fmt.Fprintf(&existing, "- %s\n", cat)
	}

	prompt := fmt.Sprintf(`
Pick the best category for the task described below. Prefer one of the
existing categories; invent a new short name only when none fits. Return JSON
only: {"category":"string","is_new":bool,"confidence":0.0-1.0,"reasoning":"one sentence"}

Task: %s

Existing categories:
%s
Return JSON only.
`, description, existing.String())

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		log.Printf("gemini category suggestion failed: %v", err)
		return nil, ClassifyAIError(err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, ErrAIUnexpected
	}

	content := cleanJSONResponse(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))

	var suggestion response_models.CategorySuggestion
	if err := json.Unmarshal([]byte(content), &suggestion); err != nil || suggestion.Category == "" {
		return nil, ErrAIUnexpected
	}

	return &suggestion, nil
}

func (c *GeminiTaskAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	em := c.client.EmbeddingModel(c.embeddingModel)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		log.Printf("gemini embedding failed: %v", err)
		return pgvector.Vector{}, ClassifyAIError(err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return pgvector.Vector{}, ErrAIUnexpected
	}
	return pgvector.NewVector(resp.Embedding.Values), nil
}

func (c *GeminiTaskAIClient) Close() error {
	return c.client.Close()
}

// cleanJSONResponse strips markdown fences some models still wrap around
// JSON-mode output.
func cleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	return strings.TrimSpace(response)
}
