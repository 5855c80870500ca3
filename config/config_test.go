package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("GATEWAY_API_KEY", "test-api-key")
	t.Setenv("GATEWAY_API_URL", "https://gateway.example.com/v1/chat/completions")
	t.Setenv("GATEWAY_MODEL", "test-model")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test-api-key", cfg.GatewayAPIKey)
	assert.Equal(t, "https://gateway.example.com/v1/chat/completions", cfg.GatewayAPIURL)
	assert.Equal(t, "test-model", cfg.GatewayModel)
	assert.Equal(t, "9090", cfg.ServerPort)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GATEWAY_API_KEY", "test-api-key")
	t.Setenv("GATEWAY_API_URL", "")
	t.Setenv("GATEWAY_MODEL", "")
	t.Setenv("SERVER_HOST", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultGatewayAPIURL, cfg.GatewayAPIURL)
	assert.Equal(t, DefaultGatewayModel, cfg.GatewayModel)
	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 10, cfg.RateLimitPerMinute)
}

func TestLoadConfigAPIKeyFile(t *testing.T) {
	keyFile := filepath.Join(t.TempDir(), "gateway_api_key")
	require.NoError(t, os.WriteFile(keyFile, []byte("  file-api-key\n"), 0o600))

	t.Setenv("GATEWAY_API_KEY", "")
	t.Setenv("GATEWAY_API_KEY_FILE", keyFile)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "file-api-key", cfg.GatewayAPIKey, "key file contents should be trimmed")
}

func TestLoadConfigMissingAPIKey(t *testing.T) {
	t.Setenv("GATEWAY_API_KEY", "")
	t.Setenv("GATEWAY_API_KEY_FILE", "")

	cfg, err := LoadConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "GATEWAY_API_KEY or GATEWAY_API_KEY_FILE must be set")
}

func TestLoadConfigEmptyAPIKeyFile(t *testing.T) {
	keyFile := filepath.Join(t.TempDir(), "gateway_api_key")
	require.NoError(t, os.WriteFile(keyFile, []byte("   \n"), 0o600))

	t.Setenv("GATEWAY_API_KEY", "")
	t.Setenv("GATEWAY_API_KEY_FILE", keyFile)

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API key file is empty")
}

func TestLoadConfigInvalidNumbers(t *testing.T) {
	t.Setenv("GATEWAY_API_KEY", "test-api-key")

	t.Run("bad redis db", func(t *testing.T) {
		t.Setenv("REDIS_DB", "not-a-number")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("bad rate limit", func(t *testing.T) {
		t.Setenv("REDIS_DB", "")
		t.Setenv("RATE_LIMIT_PER_MINUTE", "lots")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestValidateConfig(t *testing.T) {
	valid := &Config{
		ServerPort:         "8080",
		GatewayAPIKey:      "key",
		GatewayAPIURL:      "https://gateway.example.com",
		GatewayModel:       "model",
		RateLimitPerMinute: 10,
	}
	assert.NoError(t, ValidateConfig(valid))

	t.Run("rejects non-http gateway URL", func(t *testing.T) {
		cfg := *valid
		cfg.GatewayAPIURL = "ftp://gateway.example.com"
		assert.Error(t, ValidateConfig(&cfg))
	})

	t.Run("rejects zero rate limit", func(t *testing.T) {
		cfg := *valid
		cfg.RateLimitPerMinute = 0
		assert.Error(t, ValidateConfig(&cfg))
	})
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())

	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())
}
