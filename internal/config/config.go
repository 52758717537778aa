package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Intent    IntentConfig
	Gemini    GeminiConfig
	OpenAI    OpenAIConfig
	Translate TranslateConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// StoreConfig selects and configures the list/history store backend
type StoreConfig struct {
	Driver             string // "memory" (default) or "postgres"
	DSN                string
	MaxConnections     int
	MaxIdleConnections int
}

// IntentConfig selects the structured-intent extractor backend
type IntentConfig struct {
	Provider string // "gemini" (default) or "openai"
	Timeout  int    // seconds, bounds every extraction call
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float64
	Enabled     bool
}

// OpenAIConfig holds OpenAI-compatible API configuration
type OpenAIConfig struct {
	APIKey      string
	APIBase     string
	ChatModel   string
	Temperature float64
	MaxTokens   int
	Timeout     int
	Enabled     bool
}

// TranslateConfig holds the translation backend configuration.
// A missing API key disables translation entirely; commands then pass
// through in their original language.
type TranslateConfig struct {
	APIKey  string
	APIBase string
	Timeout int // seconds
	Enabled bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Store: StoreConfig{
			Driver:             getEnv("STORE_DRIVER", "memory"),
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
		},
		Intent: IntentConfig{
			Provider: getEnv("INTENT_PROVIDER", "gemini"),
			Timeout:  getEnvAsInt("INTENT_TIMEOUT", 30),
		},
		Gemini: GeminiConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			Model:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			Temperature: getEnvAsFloat("GEMINI_TEMPERATURE", 0.2),
			Enabled:     getEnv("GEMINI_API_KEY", "") != "",
		},
		OpenAI: OpenAIConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			APIBase:     getEnv("OPENAI_API_BASE", "https://api.openai.com/v1"),
			ChatModel:   getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
			Temperature: getEnvAsFloat("OPENAI_CHAT_TEMPERATURE", 0.2),
			MaxTokens:   getEnvAsInt("OPENAI_CHAT_MAX_TOKENS", 1024),
			Timeout:     getEnvAsInt("OPENAI_TIMEOUT", 30),
			Enabled:     getEnv("OPENAI_API_KEY", "") != "",
		},
		Translate: TranslateConfig{
			APIKey:  getEnv("TRANSLATE_API_KEY", ""),
			APIBase: getEnv("TRANSLATE_API_BASE", "https://translation.googleapis.com/language/translate/v2"),
			Timeout: getEnvAsInt("TRANSLATE_TIMEOUT", 30),
			Enabled: getEnv("TRANSLATE_API_KEY", "") != "",
		},
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}
