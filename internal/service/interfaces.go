package service

import "context"

// RecipeGenerator is the narrow surface the relay handler depends on. The
// production implementation is LLMService; tests substitute canned replies.
type RecipeGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
