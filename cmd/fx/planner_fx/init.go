// cmd/fx/planner_fx/init.go
package planner_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"wanderwise/internal/api/controllers"
	"wanderwise/internal/services"
	"wanderwise/pkg/utils"
	"wanderwise/pkg/viewstate"
)

var Module = fx.Provide(
	ProvideGeneratorClient,
	ProvideGenerationService,
	provideViewStateStore,
	controllers.NewPlannerController)

// GeneratorConfig holds configuration for generator clients
type GeneratorConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideGeneratorClient creates a generator client based on environment variables
func ProvideGeneratorClient() (utils.GeneratorClientInterface, error) {
	config := getGeneratorConfig()

	log.Printf("Initializing %s generator client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIGeneratorClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiGeneratorClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

// ProvideGenerationService creates the generation service with all dependencies
func ProvideGenerationService(
	generator utils.GeneratorClientInterface,
	placeService services.PlaceServiceInterface,
) services.GenerationServiceInterface {
	return services.NewGenerationService(generator, placeService)
}

func provideViewStateStore() viewstate.Store {
	return viewstate.NewSlotStore()
}

// getGeneratorConfig reads configuration from environment variables
func getGeneratorConfig() GeneratorConfig {
	provider := getEnvWithDefault("GENERATOR_PROVIDER", "gemini") // Default to free Gemini

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return GeneratorConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
