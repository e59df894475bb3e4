package planner

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/platewise/v1/internal/domain/catalog"
)

func TestBuildIngredientsPrompt(t *testing.T) {
	prompt := buildIngredientsPrompt("chicken curry", 4, []string{"vegetarian", "gluten-free"})

	assert.Contains(t, prompt, `"chicken curry"`)
	assert.Contains(t, prompt, "Servings: 4")
	assert.Contains(t, prompt, "vegetarian, gluten-free")
	assert.Contains(t, prompt, "Return ONLY valid JSON")
	assert.Contains(t, prompt, unitVocabulary)
	assert.Contains(t, prompt, categoryVocabulary)
}

func TestBuildIngredientsPromptNoRestrictions(t *testing.T) {
	prompt := buildIngredientsPrompt("pancakes", 2, nil)

	assert.Contains(t, prompt, "Dietary restrictions: None")
}

func TestBuildRecipePromptWithUserIngredients(t *testing.T) {
	prompt := buildRecipePrompt(recipePromptInput{
		MealName:        "stir fry",
		IngredientNames: []string{"chicken breast", "broccoli"},
		Servings:        4,
	})

	assert.Contains(t, prompt, "chicken breast, broccoli")
	assert.Contains(t, prompt, "Mark user-provided ingredients with is_user_provided=true")
	assert.Contains(t, prompt, "Max prep time: no limit minutes")
	assert.Contains(t, prompt, "Difficulty: any")
	assert.Contains(t, prompt, "language: en")
}

func TestBuildRecipePromptWithoutIngredients(t *testing.T) {
	prompt := buildRecipePrompt(recipePromptInput{
		MealName:           "stir fry",
		Servings:           2,
		Difficulty:         "easy",
		MaxPrepTimeMinutes: 30,
		CuisineType:        "thai",
		Language:           "es",
	})

	assert.Contains(t, prompt, "has not provided any specific ingredients")
	assert.Contains(t, prompt, "Mark all ingredients with is_user_provided=false")
	assert.Contains(t, prompt, "Difficulty: easy")
	assert.Contains(t, prompt, "Max prep time: 30 minutes")
	assert.Contains(t, prompt, "Cuisine type: thai")
	assert.Contains(t, prompt, "language: es")
}

func TestRecipePromptVocabularyMatchesEnums(t *testing.T) {
	for _, unit := range strings.Split(unitVocabulary, "|") {
		assert.True(t, catalog.Unit(unit).Valid(), "unit %q not in enum", unit)
	}
	for _, cat := range strings.Split(categoryVocabulary, "|") {
		assert.True(t, catalog.Category(cat).Valid(), "category %q not in enum", cat)
	}
}

func TestBuildMealPlanPrompt(t *testing.T) {
	available := []catalog.AvailableIngredient{
		{Name: "rice"},
		{Name: "black beans"},
	}
	past := []catalog.RecentMeal{
		{Name: "Taco night", MealType: catalog.MealTypeDinner, Date: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)},
	}

	prompt := buildMealPlanPrompt(7, 3, available, past, []string{"vegan"}, []string{"lunch", "dinner"}, true)

	assert.Contains(t, prompt, "7-day meal plan with 3 meals per day")
	assert.Contains(t, prompt, "rice, black beans")
	assert.Contains(t, prompt, "- Taco night (dinner, 2026-08-10)")
	assert.Contains(t, prompt, "Dietary preferences: vegan")
	assert.Contains(t, prompt, "Strict constraint: Only use available ingredients")
	assert.Contains(t, prompt, "Preferred meal types: lunch, dinner")
}

func TestBuildMealPlanPromptEmptyContext(t *testing.T) {
	prompt := buildMealPlanPrompt(3, 2, nil, nil, nil, nil, false)

	assert.Contains(t, prompt, "Available Ingredients:\nNone")
	assert.Contains(t, prompt, "No past meal history available")
	assert.Contains(t, prompt, "Strict constraint: Can suggest additional ingredients")
	assert.Contains(t, prompt, "Preferred meal types: breakfast, lunch, dinner")
}
