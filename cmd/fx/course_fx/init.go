// cmd/fx/course_fx/init.go
package course_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"coursemap/internal/api/controllers"
	"coursemap/internal/repositories"
	"coursemap/internal/services"
	"coursemap/pkg/utils"
)

var Module = fx.Provide(
	ProvideAIClient,
	provideCourseRepo,
	provideEmbeddingRepo,
	provideSuggestionService,
	provideCourseService,
	controllers.NewCourseController,
)

// AIConfig holds provider selection for the generative model client.
type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideAIClient creates the model client based on environment variables.
func ProvideAIClient() (utils.AIClientInterface, error) {
	config := getAIConfig()

	log.Printf("Initializing %s model client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func provideCourseRepo(db *gorm.DB) repositories.CourseRepository {
	return repositories.NewCourseRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.ICourseEmbeddingRepository {
	return repositories.NewCourseEmbeddingRepository(db)
}

func provideSuggestionService(
	aiClient utils.AIClientInterface,
	embeddingRepo repositories.ICourseEmbeddingRepository,
) services.SuggestionServiceInterface {
	return services.NewSuggestionService(aiClient, embeddingRepo)
}

func provideCourseService(
	aiClient utils.AIClientInterface,
	courseRepo repositories.CourseRepository,
	suggestions services.SuggestionServiceInterface,
) services.CourseServiceInterface {
	return services.NewCourseService(aiClient, courseRepo, suggestions)
}

func getAIConfig() AIConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

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
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return AIConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
