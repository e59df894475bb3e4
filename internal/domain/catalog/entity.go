// Package catalog contains the household inventory domain: the ingredients
// and recipes a household already knows about, which ground all matching.
package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Ingredient is a household-scoped catalog entry. It is the ground truth that
// AI-generated ingredient names are reconciled against. The core reads these
// entries; it never creates or mutates them.
type Ingredient struct {
	ID          uuid.UUID
	Name        string
	Category    Category
	HouseholdID uuid.UUID
	Description string

	// Reference pricing, carried through to grocery list lines unchanged
	AveragePrice *float64
	PriceUnit    *Unit

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecipeRef is the catalog view of a stored recipe, just enough for
// name matching and aggregation.
type RecipeRef struct {
	ID          uuid.UUID
	Name        string
	HouseholdID uuid.UUID
	Servings    int
}

// AvailableIngredient is a catalog ingredient currently marked purchased in a
// recent grocery list, used to ground meal-plan prompts.
type AvailableIngredient struct {
	IngredientID uuid.UUID
	Name         string
	Quantity     float64
	Unit         Unit
	Category     Category
}

// RecentMeal is a slim view of a past meal, fed into meal-plan prompts
// so the model can keep variety.
type RecentMeal struct {
	Name     string
	MealType MealType
	Date     time.Time
}

// Validate checks the invariants a catalog entry must hold.
func (i Ingredient) Validate() error {
	if i.Name == "" {
		return ErrEmptyName
	}
	if !i.Category.Valid() {
		return ErrUnknownCategory
	}
	return nil
}
