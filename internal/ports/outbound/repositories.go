// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/domain/grocery"
)

// CatalogRepository exposes read access to a household's ingredient and
// recipe catalog. Ingredient listings are returned in alphabetical name
// order so downstream matching is deterministic.
type CatalogRepository interface {
	FindIngredientsByHousehold(ctx context.Context, householdID uuid.UUID) ([]catalog.Ingredient, error)
	FindAvailableIngredients(ctx context.Context, householdID uuid.UUID) ([]catalog.AvailableIngredient, error)
	FindRecipesByHousehold(ctx context.Context, householdID uuid.UUID) ([]catalog.RecipeRef, error)
}

// MealRepository exposes read access to scheduled meals.
type MealRepository interface {
	// FindRecentMeals returns meals dated within [from, to] in
	// chronological order, keeping only the most recent limit entries.
	FindRecentMeals(ctx context.Context, householdID uuid.UUID, from, to time.Time, limit int) ([]catalog.RecentMeal, error)
	// FindMealsForAggregation loads the given meals with their recipe
	// ingredient lines. Unknown ids are simply absent from the result.
	FindMealsForAggregation(ctx context.Context, mealIDs []uuid.UUID) ([]grocery.Meal, error)
}

// HouseholdRepository answers membership questions.
type HouseholdRepository interface {
	IsMember(ctx context.Context, householdID, userID uuid.UUID) (bool, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
