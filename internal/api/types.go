package api

import "github.com/craveboard/backend/internal/types"

// GenerateRequest is the inbound body for recipe generation.
type GenerateRequest struct {
	FoodInput string `json:"foodInput"`
}

// GenerateResponse is the success body: a batch of generated recipes.
// Zero recipes with no message is still a success.
type GenerateResponse struct {
	BatchID string         `json:"batch_id,omitempty"`
	Recipes []types.Recipe `json:"recipes"`
	Message string         `json:"message,omitempty"`
}

// ErrorResponse is the body for input and upstream failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
