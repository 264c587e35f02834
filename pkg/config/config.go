package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Storage backend selectors
const (
	StorageFile  = "file"
	StorageNeo4j = "neo4j"
)

// Classifier backend selectors
const (
	ClassifierLLM  = "llm"
	ClassifierStub = "stub"
)

// Config holds all application configuration
type Config struct {
	// App
	Port string
	Env  string

	// Storage
	StorageBackend string
	DataDir        string

	// Neo4j (only used when StorageBackend == "neo4j")
	Neo4jURI      string
	Neo4jUser     string
	Neo4jPassword string

	// Classifier
	ClassifierBackend   string
	LiteLLMURL          string
	ModelID             string
	OpenRouterAPIKey    string
	ClassifierTimeoutMS int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("ENV", "development"),
		StorageBackend:      getEnv("STORAGE_BACKEND", StorageFile),
		DataDir:             getEnv("DATA_DIR", "data"),
		Neo4jURI:            getEnv("NEO4J_URI", "bolt://localhost:7687"),
		Neo4jUser:           getEnv("NEO4J_USER", "neo4j"),
		Neo4jPassword:       getEnv("NEO4J_PASSWORD", "password"),
		ClassifierBackend:   getEnv("CLASSIFIER", ClassifierStub),
		LiteLLMURL:          getEnv("LITELLM_URL", "http://localhost:4000"),
		ModelID:             getEnv("MODEL_ID", "openrouter/anthropic/claude-3.5-sonnet"),
		OpenRouterAPIKey:    getEnv("OPENROUTER_API_KEY", ""),
		ClassifierTimeoutMS: getEnvInt("CLASSIFIER_TIMEOUT_MS", 15000),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StorageFile:
		if c.DataDir == "" {
			return fmt.Errorf("DATA_DIR is required for file storage")
		}
	case StorageNeo4j:
		if c.Neo4jURI == "" {
			return fmt.Errorf("NEO4J_URI is required for neo4j storage")
		}
		if c.Neo4jUser == "" {
			return fmt.Errorf("NEO4J_USER is required for neo4j storage")
		}
		if c.Neo4jPassword == "" {
			return fmt.Errorf("NEO4J_PASSWORD is required for neo4j storage")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND: %s", c.StorageBackend)
	}

	switch c.ClassifierBackend {
	case ClassifierStub:
	case ClassifierLLM:
		if c.LiteLLMURL == "" {
			return fmt.Errorf("LITELLM_URL is required for the llm classifier")
		}
		if c.ModelID == "" {
			return fmt.Errorf("MODEL_ID is required for the llm classifier")
		}
	default:
		return fmt.Errorf("unknown CLASSIFIER: %s", c.ClassifierBackend)
	}

	if c.ClassifierTimeoutMS <= 0 {
		return fmt.Errorf("CLASSIFIER_TIMEOUT_MS must be positive")
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
