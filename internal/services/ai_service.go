package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"taskly/internal/models/request_models"
	"taskly/internal/models/response_models"
	"taskly/internal/repositories"
	"taskly/pkg/utils"
)

const minCategoryDescriptionLen = 10

type AIServiceInterface interface {
	CreateTasks(ctx context.Context, prompt string) (*response_models.GeneratedTaskPlan, error)
	SuggestCategory(ctx context.Context, ownerID *uuid.UUID, request request_models.SuggestCategoryRequest) (*response_models.CategorySuggestion, error)
}

type AIService struct {
	client       utils.TaskAIClientInterface
	categoryRepo repositories.CategoryRepository
}

func NewAIService(client utils.TaskAIClientInterface, categoryRepo repositories.CategoryRepository) AIServiceInterface {
	return &AIService{
		client:       client,
		categoryRepo: categoryRepo,
	}
}

func (s *AIService) CreateTasks(ctx context.Context, prompt string) (*response_models.GeneratedTaskPlan, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, utils.ErrInvalidInput
	}

	plan, err := s.client.GenerateTasks(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if plan == nil || len(plan.Tasks) == 0 {
		return nil, utils.ErrAIUnexpected
	}

	return plan, nil
}

func (s *AIService) SuggestCategory(ctx context.Context, ownerID *uuid.UUID, request request_models.SuggestCategoryRequest) (*response_models.CategorySuggestion, error) {
	description := strings.TrimSpace(request.Description)
	if len(description) < minCategoryDescriptionLen {
		return nil, utils.ErrDescriptionTooShort
	}

	candidates := s.collectCandidates(ctx, ownerID, description, request.ExistingCategories)

	return s.client.SuggestCategory(ctx, description, candidates)
}

// collectCandidates merges request-supplied categories with the caller's
// stored ones plus the embedding-nearest matches. Enrichment is best effort;
// lookup failures only shrink the candidate set.
func (s *AIService) collectCandidates(ctx context.Context, ownerID *uuid.UUID, description string, fromRequest []string) []string {
	seen := make(map[string]bool)
	var candidates []string

	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || seen[strings.ToLower(name)] {
			return
		}
		seen[strings.ToLower(name)] = true
		candidates = append(candidates, name)
	}

	for _, name := range fromRequest {
		add(name)
	}

	if ownerID != nil && s.categoryRepo != nil {
		stored, err := s.categoryRepo.ListByOwner(ctx, *ownerID)
		if err != nil {
			log.Printf("category list lookup failed: %v", err)
		}
		for _, cat := range stored {
			add(cat.Name)
		}
	}

	if s.categoryRepo != nil {
		if vector, err := s.client.GetEmbedding(ctx, description); err == nil {
			nearest, err := s.categoryRepo.GetNearestByVector(ctx, vector, 5)
			if err != nil {
				log.Printf("category similarity lookup failed: %v", err)
			}
			for _, cat := range nearest {
				add(cat.Name)
			}
		}
	}

	return candidates
}
