package infra

import (
	"fmt"
	"os"
	"strings"

	"activityfinder/pkg/utils"

	"github.com/joho/godotenv"
)

const envDevelopment = "development"

type Config struct {
	Port        string
	Environment string
	CORSOrigins []string

	LLMProvider string

	AnthropicAPIKey  string
	AnthropicModel   string
	AnthropicBaseURL string

	OpenAIAPIKey string
	OpenAIModel  string

	GeminiAPIKey string
	GeminiModel  string
}

// LoadConfig reads configuration from the environment, after loading a .env
// file if one is present.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Port:        getEnvWithDefault("PORT", "3001"),
		Environment: getEnvWithDefault("APP_ENV", "production"),
		CORSOrigins: splitList(getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),

		LLMProvider: strings.ToLower(getEnvWithDefault("LLM_PROVIDER", "anthropic")),

		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:   getEnvWithDefault("ANTHROPIC_MODEL", utils.DefaultAnthropicModel),
		AnthropicBaseURL: getEnvWithDefault("ANTHROPIC_BASE_URL", utils.DefaultAnthropicBaseURL),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnvWithDefault("OPENAI_MODEL", utils.DefaultOpenAIModel),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnvWithDefault("GEMINI_MODEL", utils.DefaultGeminiModel),
	}
}

func (c Config) IsDevelopment() bool {
	return c.Environment == envDevelopment
}

func (c Config) AnthropicConfigured() bool {
	return c.AnthropicAPIKey != ""
}

// LLMCredentials returns the api key, model and base URL for the selected provider.
func (c Config) LLMCredentials() (apiKey, model, baseURL string) {
	switch c.LLMProvider {
	case "openai":
		return c.OpenAIAPIKey, c.OpenAIModel, ""
	case "gemini":
		return c.GeminiAPIKey, c.GeminiModel, ""
	default:
		return c.AnthropicAPIKey, c.AnthropicModel, c.AnthropicBaseURL
	}
}

// Validate fails when the selected provider is unknown or has no credential.
func (c Config) Validate() error {
	var keyName string
	switch c.LLMProvider {
	case "anthropic":
		keyName = "ANTHROPIC_API_KEY"
	case "openai":
		keyName = "OPENAI_API_KEY"
	case "gemini":
		keyName = "GEMINI_API_KEY"
	default:
		return fmt.Errorf("%w: %q (use anthropic, openai or gemini)", utils.ErrUnsupportedLLM, c.LLMProvider)
	}
	if key, _, _ := c.LLMCredentials(); key == "" {
		return fmt.Errorf("%w: %s not found in environment variables", utils.ErrMissingCredential, keyName)
	}
	return nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
