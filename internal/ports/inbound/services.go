// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/grocery"
	"github.com/platewise/v1/internal/domain/planning"
)

// PlannerService defines the AI generation use cases. All commands carry the
// acting user so household membership can be enforced before any model call.
type PlannerService interface {
	GenerateIngredients(ctx context.Context, cmd GenerateIngredientsCommand) (*planning.IngredientList, error)
	GenerateRecipe(ctx context.Context, cmd GenerateRecipeCommand) (*planning.GeneratedRecipe, error)
	GenerateMealPlan(ctx context.Context, cmd GenerateMealPlanCommand) (*planning.MealPlan, error)
}

// GroceryService builds aggregated shopping lists from scheduled meals.
type GroceryService interface {
	BuildGroceryList(ctx context.Context, cmd BuildGroceryListCommand) (*grocery.List, error)
}

// GenerateIngredientsCommand asks for an ingredient list for a named meal.
type GenerateIngredientsCommand struct {
	UserID              uuid.UUID
	HouseholdID         uuid.UUID
	MealName            string
	Servings            int
	DietaryRestrictions []string
}

// GenerateRecipeCommand asks for a full recipe draft. IngredientIDs reference
// catalog entries the caller wants used; each must belong to the household and
// is resolved to its catalog name. IngredientNames carries free-text names.
// Both may be empty, in which case the model suggests everything.
type GenerateRecipeCommand struct {
	UserID              uuid.UUID
	HouseholdID         uuid.UUID
	MealName            string
	IngredientIDs       []uuid.UUID
	IngredientNames     []string
	Servings            int
	Difficulty          string
	MaxPrepTimeMinutes  int
	CuisineType         string
	DietaryRestrictions []string
	Language            string
}

// GenerateMealPlanCommand asks for a multi-day meal plan.
type GenerateMealPlanCommand struct {
	UserID             uuid.UUID
	HouseholdID        uuid.UUID
	Days               int
	MealsPerDay        int
	StartDate          *time.Time
	DietaryPreferences []string
	UseAvailableOnly   bool
	PreferredMealTypes []string
}

// BuildGroceryListCommand aggregates the ingredient needs of the given meals
// into a named list.
type BuildGroceryListCommand struct {
	UserID      uuid.UUID
	HouseholdID uuid.UUID
	Name        string
	MealIDs     []uuid.UUID
}
