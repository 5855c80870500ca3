package types

import (
	"encoding/json"
	"fmt"
)

// Recipe represents a single generated recipe as returned by the model.
// Fields are decoded leniently: the model's output is trusted up to the
// top-level shape, and individual recipes are passed through as-is.
type Recipe struct {
	ID           string     `json:"id,omitempty"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	PrepTime     string     `json:"prep_time"`
	CookTime     string     `json:"cook_time"`
	Servings     FlexInt    `json:"servings"`
	Difficulty   string     `json:"difficulty"`
	Ingredients  []string   `json:"ingredients"`
	Instructions []string   `json:"instructions"`
	Tips         []string   `json:"tips,omitempty"`
	Nutrition    *Nutrition `json:"nutrition,omitempty"`
}

// Nutrition holds free-form nutritional estimates for a recipe.
// Values are display strings like "350 per serving", never parsed numbers.
type Nutrition struct {
	Calories string `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
}

// RecipeBatch is the set of recipes produced by one generation call.
// IDs are unique within the batch only, not across sessions.
type RecipeBatch struct {
	BatchID string   `json:"batch_id,omitempty"`
	Recipes []Recipe `json:"recipes"`
}

// FlexInt decodes a JSON number or a numeric string into an int.
// Models frequently return "servings": "4" despite being asked for a number.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexInt(int(num))
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		var parsed int
		if _, err := fmt.Sscanf(str, "%d", &parsed); err == nil {
			*f = FlexInt(parsed)
			return nil
		}
		// Non-numeric strings like "4-6 servings" keep a zero value rather
		// than failing the whole batch.
		*f = 0
		return nil
	}

	return fmt.Errorf("invalid servings format: %s", string(data))
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}
