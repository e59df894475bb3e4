package planner

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// flexFloat decodes a JSON number that models sometimes emit as a quoted
// string ("0.25"). Null and empty strings decode to zero.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("invalid numeric value %q", str)
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// flexInt is flexFloat truncated to an int.
type flexInt int

func (i *flexInt) UnmarshalJSON(data []byte) error {
	var f flexFloat
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	*i = flexInt(f)
	return nil
}

type ingredientPayload struct {
	Name     string    `json:"name"`
	Quantity flexFloat `json:"quantity"`
	Unit     string    `json:"unit"`
	Category string    `json:"category"`
	Notes    string    `json:"notes"`
}

type recipeIngredientPayload struct {
	IngredientName string    `json:"ingredient_name"`
	Quantity       flexFloat `json:"quantity"`
	Unit           string    `json:"unit"`
	Category       string    `json:"category"`
	Notes          string    `json:"notes"`
	IsOptional     bool      `json:"is_optional"`
}

type recipePayload struct {
	Name               string                    `json:"name"`
	Description        string                    `json:"description"`
	Instructions       string                    `json:"instructions"`
	PrepTimeMinutes    flexInt                   `json:"prep_time_minutes"`
	CookTimeMinutes    flexInt                   `json:"cook_time_minutes"`
	Difficulty         string                    `json:"difficulty"`
	CuisineType        string                    `json:"cuisine_type"`
	Tags               string                    `json:"tags"`
	CaloriesPerServing flexInt                   `json:"calories_per_serving"`
	Ingredients        []recipeIngredientPayload `json:"ingredients"`
}

type mealPlanEntryPayload struct {
	Day                         flexInt  `json:"day"`
	MealType                    string   `json:"meal_type"`
	MealName                    string   `json:"meal_name"`
	Description                 string   `json:"description"`
	IngredientsUsed             []string `json:"ingredients_used"`
	AdditionalIngredientsNeeded []string `json:"additional_ingredients_needed"`
	EstimatedPrepTimeMinutes    flexInt  `json:"estimated_prep_time_minutes"`
	EstimatedCalories           flexInt  `json:"estimated_calories"`
}
