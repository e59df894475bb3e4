// Package planning contains the transient domain objects produced by AI
// generation. They exist for a single request/review cycle: the caller either
// approves them (persistence happens elsewhere) or discards them. The only
// identity they carry across calls is an optional link back to a catalog entry.
package planning

import (
	"time"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/catalog"
)

// GeneratedIngredient is one AI-suggested ingredient reconciled against the
// household catalog. IsNew holds exactly when no catalog entry matched.
type GeneratedIngredient struct {
	Name       string           `json:"name"`
	Quantity   float64          `json:"quantity"`
	Unit       catalog.Unit     `json:"unit"`
	Category   catalog.Category `json:"category"`
	Notes      string           `json:"notes,omitempty"`
	MatchedID  *uuid.UUID       `json:"existing_ingredient_id,omitempty"`
	IsNew      bool             `json:"is_new"`
	Confidence float64          `json:"confidence_score"`
}

// SetMatch records the matching outcome and keeps the IsNew invariant.
func (g *GeneratedIngredient) SetMatch(id *uuid.UUID, confidence float64) {
	g.MatchedID = id
	g.IsNew = id == nil
	g.Confidence = confidence
}

// IngredientList is the full result of an ingredient generation call.
type IngredientList struct {
	MealName    string                `json:"meal_name"`
	HouseholdID uuid.UUID             `json:"household_id"`
	Ingredients []GeneratedIngredient `json:"ingredients"`
	Total       int                   `json:"total_ingredients"`
	NewCount    int                   `json:"new_ingredients_count"`
	MatchCount  int                   `json:"matched_ingredients_count"`
}

// RecipeIngredientCandidate is an ingredient line inside a generated recipe.
// IsUserSupplied is true only when the name came from the caller's own
// ingredient list; model-added extras are tagged false.
type RecipeIngredientCandidate struct {
	GeneratedIngredient
	IsOptional     bool `json:"is_optional"`
	IsUserSupplied bool `json:"is_user_provided"`
}

// GeneratedRecipe is a complete AI-drafted recipe awaiting user approval.
// MatchedRecipeID points at a stored household recipe whose name collides
// with the draft, so callers can warn before saving a near-duplicate.
type GeneratedRecipe struct {
	Name               string                      `json:"name"`
	Description        string                      `json:"description,omitempty"`
	Instructions       string                      `json:"instructions"`
	PrepTimeMinutes    int                         `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes    int                         `json:"cook_time_minutes,omitempty"`
	Servings           int                         `json:"servings"`
	Difficulty         catalog.DifficultyLevel     `json:"difficulty,omitempty"`
	Cuisine            catalog.CuisineType         `json:"cuisine_type,omitempty"`
	Tags               string                      `json:"tags,omitempty"`
	CaloriesPerServing int                         `json:"calories_per_serving,omitempty"`
	Ingredients        []RecipeIngredientCandidate `json:"ingredients"`
	MatchedRecipeID    *uuid.UUID                  `json:"existing_recipe_id,omitempty"`
	HouseholdID        uuid.UUID                   `json:"household_id"`
}

// MealPlanEntry is one suggested meal in a generated plan. Day is 1-based and
// Date is always StartDate + (Day-1) days. RequiresShopping holds exactly when
// AdditionalNeeded is non-empty.
type MealPlanEntry struct {
	Day              int              `json:"day"`
	Date             time.Time        `json:"meal_date"`
	MealType         catalog.MealType `json:"meal_type"`
	Name             string           `json:"meal_name"`
	Description      string           `json:"description,omitempty"`
	IngredientsUsed  []string         `json:"ingredients_used"`
	AdditionalNeeded []string         `json:"additional_ingredients_needed"`
	PrepTimeMinutes  int              `json:"estimated_prep_time_minutes,omitempty"`
	Calories         int              `json:"estimated_calories,omitempty"`
	MatchedIDs       []uuid.UUID      `json:"matched_ingredient_ids"`
	RequiresShopping bool             `json:"requires_shopping"`
}

// MealPlan is the full result of a meal-plan generation call.
type MealPlan struct {
	HouseholdID         uuid.UUID       `json:"household_id"`
	StartDate           time.Time       `json:"start_date"`
	EndDate             time.Time       `json:"end_date"`
	TotalDays           int             `json:"total_days"`
	Entries             []MealPlanEntry `json:"meal_suggestions"`
	TotalMeals          int             `json:"total_meals"`
	AvailableCount      int             `json:"available_ingredients_count"`
	FullyStockedMeals   int             `json:"meals_with_all_ingredients"`
	ShoppingNeededMeals int             `json:"meals_requiring_shopping"`
}

// Validate checks the structural invariants of a generated plan entry.
func (e MealPlanEntry) Validate(totalDays int) error {
	if e.Day < 1 || e.Day > totalDays {
		return ErrDayOutOfRange
	}
	if !e.MealType.Valid() {
		return catalog.ErrUnknownMealType
	}
	if e.Name == "" {
		return ErrEmptyMealName
	}
	if e.RequiresShopping != (len(e.AdditionalNeeded) > 0) {
		return ErrShoppingFlagMismatch
	}
	return nil
}
