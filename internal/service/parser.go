package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/craveboard/backend/internal/types"
)

// ExtractJSON pulls the first top-level JSON object out of raw model output.
// Models prepend and append prose despite being told not to, so the
// heuristic is the span from the first '{' to the last '}'. If no object
// delimiters exist the full text is returned for a direct parse attempt.
func ExtractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}
	return raw
}

// ParseRecipes parses raw model output into a recipe batch.
//
// The only shape requirement is a top-level object with a "recipes" key
// holding an array; an empty array is a valid result. Individual recipes
// are decoded leniently and passed through without per-field validation,
// because rejecting loosely shaped but usable model output helps nobody.
// Recipe IDs are assigned as <unix-ms>-<index>, unique within the batch.
func ParseRecipes(raw string) (*types.RecipeBatch, error) {
	candidate := ExtractJSON(raw)

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse model output: %w", err)
	}

	recipesRaw, ok := envelope["recipes"]
	if !ok {
		return nil, fmt.Errorf("model output missing recipes array")
	}

	var recipes []types.Recipe
	if err := json.Unmarshal(recipesRaw, &recipes); err != nil {
		return nil, fmt.Errorf("recipes key is not a valid recipe array: %w", err)
	}
	if recipes == nil {
		// "recipes": null is not an array.
		return nil, fmt.Errorf("recipes key is null")
	}

	now := time.Now().UnixMilli()
	for i := range recipes {
		recipes[i].ID = fmt.Sprintf("%d-%d", now, i)
	}

	return &types.RecipeBatch{Recipes: recipes}, nil
}
