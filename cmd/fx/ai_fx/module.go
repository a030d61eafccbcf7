package ai_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"taskly/internal/api/controllers"
	"taskly/internal/repositories"
	"taskly/internal/services"
	"taskly/pkg/utils"
)

var Module = fx.Provide(
	provideAIClient, provideAIService, provideAIController)

// provideAIClient picks the model backend from AI_PROVIDER. Without an API
// key the deterministic mock client is used, so the endpoints keep working in
// development.
func provideAIClient() utils.TaskAIClientInterface {
	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if provider == "openai" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	client, err := utils.NewTaskAIClient(provider, apiKey, os.Getenv("AI_MODEL"))
	if err != nil {
		log.Fatalf("AI client init failed: %v", err)
	}
	return client
}

func provideAIService(client utils.TaskAIClientInterface, categoryRepo repositories.CategoryRepository) services.AIServiceInterface {
	return services.NewAIService(client, categoryRepo)
}

func provideAIController(aiService services.AIServiceInterface) *controllers.AIController {
	return controllers.NewAIController(aiService)
}
