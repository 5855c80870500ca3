package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/craveboard/backend/config"
)

// Sentinel errors for the upstream conditions the relay handler must
// distinguish. Everything else is a generic upstream failure.
var (
	// ErrRateLimited is returned when the gateway answers 429.
	ErrRateLimited = errors.New("gateway rate limit exceeded")
	// ErrQuotaExceeded is returned when the gateway answers 402.
	ErrQuotaExceeded = errors.New("gateway quota exhausted")
	// ErrEmptyCompletion is returned when the gateway answers 2xx with no choices.
	ErrEmptyCompletion = errors.New("no choices in gateway response")
)

const (
	requestTimeout = 30 * time.Second
	maxAttempts    = 3
)

// LLMService talks to the configured chat-completion gateway.
type LLMService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewLLMService creates a gateway client from configuration.
func NewLLMService(cfg *config.Config) *LLMService {
	return &LLMService{
		apiKey: cfg.GatewayAPIKey,
		apiURL: cfg.GatewayAPIURL,
		model:  cfg.GatewayModel,
		client: &http.Client{Timeout: requestTimeout},
	}
}

// Message represents a message in the chat completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a chat completion request to the gateway.
type Request struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// Generate sends the system and user prompts to the gateway and returns the
// raw text content of the model's first choice. The reply is fully buffered;
// there is no streaming. Transport failures and upstream 5xx statuses are
// retried with exponential backoff up to maxAttempts; 429 and 402 surface
// immediately as ErrRateLimited and ErrQuotaExceeded.
func (s *LLMService) Generate(ctx context.Context, system, user string) (string, error) {
	reqBody := Request{
		Model: s.model,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	var content string
	operation := func() error {
		var opErr error
		content, opErr = s.doRequest(ctx, jsonData)
		return opErr
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxAttempts-1), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", err
	}

	return content, nil
}

func (s *LLMService) doRequest(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		// Transport failure: retryable.
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error().
			Int("status", resp.StatusCode).
			Str("body", string(respBody)).
			Msg("gateway request failed")

		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			return "", backoff.Permanent(ErrRateLimited)
		case http.StatusPaymentRequired:
			return "", backoff.Permanent(ErrQuotaExceeded)
		}

		upstreamErr := fmt.Errorf("gateway request failed with status %d", resp.StatusCode)
		if resp.StatusCode >= 500 {
			return "", upstreamErr
		}
		return "", backoff.Permanent(upstreamErr)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
	}

	if len(result.Choices) == 0 {
		return "", backoff.Permanent(ErrEmptyCompletion)
	}

	return result.Choices[0].Message.Content, nil
}
