// Package grocery holds the read models used when turning planned meals into
// an aggregated shopping list.
package grocery

import (
	"time"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/catalog"
)

// Meal is a scheduled meal joined with the recipe ingredient lines needed to
// scale it. Servings on the meal may differ from the recipe's base servings.
type Meal struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	Name        string
	Date        time.Time
	MealType    catalog.MealType
	Servings    int
	RecipeID    *uuid.UUID
	Recipe      *Recipe
}

// Recipe carries the base servings and ingredient lines of a stored recipe.
type Recipe struct {
	ID       uuid.UUID
	Name     string
	Servings int
	Lines    []RecipeLine
}

// RecipeLine is one ingredient requirement of a recipe.
type RecipeLine struct {
	IngredientID uuid.UUID
	Name         string
	Category     catalog.Category
	Quantity     float64
	Unit         catalog.Unit
	Notes        string
	AveragePrice *float64
	IsOptional   bool
}

// Line is one aggregated grocery list entry. Lines are keyed by
// (IngredientID, Unit); the same ingredient in different units stays separate.
type Line struct {
	IngredientID  uuid.UUID        `json:"ingredient_id"`
	Name          string           `json:"ingredient_name"`
	Category      catalog.Category `json:"category"`
	Quantity      float64          `json:"quantity"`
	Unit          catalog.Unit     `json:"unit"`
	Notes         string           `json:"notes,omitempty"`
	EstimatedCost *float64         `json:"estimated_cost,omitempty"`
}

// List is the aggregated output for a set of meals. Lines are sorted by
// display name then unit.
type List struct {
	Name        string      `json:"name"`
	HouseholdID uuid.UUID   `json:"household_id"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	Lines       []Line      `json:"items"`
	MealIDs     []uuid.UUID `json:"meal_ids"`
	TotalItems  int         `json:"total_items"`
}
