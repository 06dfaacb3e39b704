package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	GenAI  GenAIConfig
	App    AppConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type GenAIConfig struct {
	Backend        string // "gemini" or "openai"
	GeminiAPIKey   string
	GeminiModel    string
	GeminiFlash    string
	GeminiBaseURL  string
	OpenAIAPIKey   string
	OpenAIModel    string
	TimeoutSeconds int
}

type AppConfig struct {
	Environment       string
	LogLevel          string
	Version           string
	DeadlineCheckSpec string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: splitEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		GenAI: GenAIConfig{
			Backend:        getEnv("GENAI_BACKEND", "gemini"),
			GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
			GeminiModel:    getEnv("GEMINI_MODEL", "gemini-3-pro-preview"),
			GeminiFlash:    getEnv("GEMINI_FLASH_MODEL", "gemini-3-flash-preview"),
			GeminiBaseURL:  getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
			OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			TimeoutSeconds: getEnvAsInt("GENAI_TIMEOUT_SECONDS", 60),
		},
		App: AppConfig{
			Environment:       getEnv("APP_ENV", "development"),
			LogLevel:          getEnv("LOG_LEVEL", "info"),
			Version:           getEnv("APP_VERSION", "1.0.0"),
			DeadlineCheckSpec: getEnv("DEADLINE_CHECK_SPEC", "0 * * * * *"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.GenAI.Backend {
	case "gemini", "openai":
	default:
		return fmt.Errorf("GENAI_BACKEND must be gemini or openai, got %q", c.GenAI.Backend)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func splitEnv(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
