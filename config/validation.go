package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that the loaded configuration is usable. The
// gateway credential is the only hard requirement; everything else has a
// workable default or is optional.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.GatewayAPIKey == "" {
		errors = append(errors, "gateway API key is required")
	}
	if cfg.GatewayAPIURL == "" {
		errors = append(errors, "gateway API URL must not be empty")
	}
	if !strings.HasPrefix(cfg.GatewayAPIURL, "http://") && !strings.HasPrefix(cfg.GatewayAPIURL, "https://") {
		errors = append(errors, fmt.Sprintf("gateway API URL %q is not an HTTP(S) URL", cfg.GatewayAPIURL))
	}
	if cfg.GatewayModel == "" {
		errors = append(errors, "gateway model identifier must not be empty")
	}
	if cfg.ServerPort == "" {
		errors = append(errors, "server port must not be empty")
	}
	if cfg.RateLimitPerMinute <= 0 {
		errors = append(errors, "rate limit must be a positive number of requests per minute")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}

	return nil
}
