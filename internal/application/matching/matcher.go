package matching

import (
	"strings"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/catalog"
)

const (
	// DefaultIngredientThreshold is the minimum fuzzy score accepted when
	// matching a suggested ingredient name against the catalog.
	DefaultIngredientThreshold = 0.85
	// DefaultRecipeThreshold must be strictly exceeded for a recipe name
	// to count as already existing.
	DefaultRecipeThreshold = 0.85
)

// Matcher resolves generated names against catalog entries.
type Matcher struct {
	ingredientThreshold float64
	recipeThreshold     float64
}

// NewMatcher builds a Matcher. Non-positive thresholds fall back to the
// defaults.
func NewMatcher(ingredientThreshold, recipeThreshold float64) *Matcher {
	if ingredientThreshold <= 0 {
		ingredientThreshold = DefaultIngredientThreshold
	}
	if recipeThreshold <= 0 {
		recipeThreshold = DefaultRecipeThreshold
	}
	return &Matcher{
		ingredientThreshold: ingredientThreshold,
		recipeThreshold:     recipeThreshold,
	}
}

// MatchIngredient finds the catalog entry for a suggested name. An exact
// case-insensitive name match wins immediately with confidence 1.0 regardless
// of category. Otherwise the best fuzzy score among same-category entries is
// taken when it reaches the threshold; the first entry in catalog order keeps
// a tied score. No match returns (nil, 0).
func (m *Matcher) MatchIngredient(name string, category catalog.Category, entries []catalog.Ingredient) (*uuid.UUID, float64) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return nil, 0
	}
	for _, e := range entries {
		if strings.ToLower(e.Name) == lower {
			id := e.ID
			return &id, 1.0
		}
	}
	var bestID *uuid.UUID
	bestScore := 0.0
	for _, e := range entries {
		if e.Category != category {
			continue
		}
		score := Similarity(lower, strings.ToLower(e.Name))
		if score > bestScore && score >= m.ingredientThreshold {
			id := e.ID
			bestID = &id
			bestScore = score
		}
	}
	if bestID == nil {
		return nil, 0
	}
	return bestID, bestScore
}

// MatchIngredientAny behaves like MatchIngredient but considers every
// category in the fuzzy pass. Used when the suggested name carries no
// category of its own.
func (m *Matcher) MatchIngredientAny(name string, entries []catalog.Ingredient) (*uuid.UUID, float64) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return nil, 0
	}
	for _, e := range entries {
		if strings.ToLower(e.Name) == lower {
			id := e.ID
			return &id, 1.0
		}
	}
	var bestID *uuid.UUID
	bestScore := 0.0
	for _, e := range entries {
		score := Similarity(lower, strings.ToLower(e.Name))
		if score > bestScore && score >= m.ingredientThreshold {
			id := e.ID
			bestID = &id
			bestScore = score
		}
	}
	if bestID == nil {
		return nil, 0
	}
	return bestID, bestScore
}

// MatchRecipe reports whether a generated recipe name collides with an
// existing recipe. The similarity must strictly exceed the threshold.
func (m *Matcher) MatchRecipe(name string, recipes []catalog.RecipeRef) *catalog.RecipeRef {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return nil
	}
	for i := range recipes {
		if Similarity(lower, strings.ToLower(recipes[i].Name)) > m.recipeThreshold {
			return &recipes[i]
		}
	}
	return nil
}
