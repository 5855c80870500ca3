package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Default gateway settings. The URL and model match the hosted gateway the
// service was built against; both can be overridden per environment.
const (
	DefaultGatewayAPIURL = "https://ai.gateway.lovable.dev/v1/chat/completions"
	DefaultGatewayModel  = "google/gemini-2.5-flash"
)

// Config holds all configuration for the application. Values are read once
// at startup; there is no runtime mutation.
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Model gateway configuration
	GatewayAPIKey string
	GatewayAPIURL string
	GatewayModel  string

	// Redis configuration (optional; enables IP rate limiting when set)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Rate limiting
	RateLimitPerMinute int
}

// LoadConfig creates a Config from environment variables.
//
// The gateway credential can be provided directly via GATEWAY_API_KEY or
// indirectly via GATEWAY_API_KEY_FILE pointing at a secret file (Docker
// secrets style); file contents are trimmed of surrounding whitespace.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerHost:         getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		GatewayAPIURL:      getEnv("GATEWAY_API_URL", DefaultGatewayAPIURL),
		GatewayModel:       getEnv("GATEWAY_MODEL", DefaultGatewayModel),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RateLimitPerMinute: 10,
	}

	apiKey, err := loadGatewayAPIKey()
	if err != nil {
		return nil, err
	}
	cfg.GatewayAPIKey = apiKey

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	if limitStr := os.Getenv("RATE_LIMIT_PER_MINUTE"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE value %q: %w", limitStr, err)
		}
		cfg.RateLimitPerMinute = limit
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func loadGatewayAPIKey() (string, error) {
	apiKey := os.Getenv("GATEWAY_API_KEY")
	if apiKey != "" {
		return apiKey, nil
	}

	apiKeyFile := os.Getenv("GATEWAY_API_KEY_FILE")
	if apiKeyFile == "" {
		return "", fmt.Errorf("GATEWAY_API_KEY or GATEWAY_API_KEY_FILE must be set")
	}

	apiKeyBytes, err := os.ReadFile(apiKeyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read API key file: %w", err)
	}

	apiKey = strings.TrimSpace(string(apiKeyBytes))
	if apiKey == "" {
		return "", fmt.Errorf("API key file is empty")
	}

	return apiKey, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
