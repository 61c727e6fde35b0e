package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Chat    ChatConfig
	OpenAI  OpenAIConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// CatalogConfig holds catalog ingestion configuration
type CatalogConfig struct {
	DataDir     string // directory holding the scraper output JSON files
	ContextFile string // optional general-context markdown
	SiteBaseURL string // base URL used to absolutize relative image paths
}

// ChatConfig holds conversation engine configuration
type ChatConfig struct {
	HistorySize     int // messages kept per session
	RetrievalK      int // base k for document retrieval
	MaxResults      int // listing cap for criteria search
	MaxImages       int // image cap per answer
	SessionCapacity int // bounded session store size (LRU)
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

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8000),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Catalog: CatalogConfig{
			DataDir:     getEnv("CATALOG_DATA_DIR", "data"),
			ContextFile: getEnv("CATALOG_CONTEXT_FILE", "data/contexto_geral.md"),
			SiteBaseURL: getEnv("SITE_BASE_URL", "https://www.novatorres.com.br"),
		},
		Chat: ChatConfig{
			HistorySize:     getEnvAsInt("CHAT_HISTORY_SIZE", 10),
			RetrievalK:      getEnvAsInt("CHAT_RETRIEVAL_K", 5),
			MaxResults:      getEnvAsInt("CHAT_MAX_RESULTS", 10),
			MaxImages:       getEnvAsInt("CHAT_MAX_IMAGES", 5),
			SessionCapacity: getEnvAsInt("CHAT_SESSION_CAPACITY", 1024),
		},
		OpenAI: OpenAIConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			APIBase:     getEnv("OPENAI_API_BASE", "https://api.openai.com/v1"),
			ChatModel:   getEnv("OPENAI_CHAT_MODEL", "gpt-3.5-turbo-0125"),
			Temperature: getEnvAsFloat("OPENAI_CHAT_TEMPERATURE", 0.2),
			MaxTokens:   getEnvAsInt("OPENAI_CHAT_MAX_TOKENS", 2048),
			Timeout:     getEnvAsInt("OPENAI_TIMEOUT", 30),
			Enabled:     getEnv("OPENAI_API_KEY", "") != "",
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
