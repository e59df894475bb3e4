package planner

import (
	"fmt"
	"strings"

	"github.com/platewise/v1/internal/domain/catalog"
)

const (
	unitVocabulary     = "gram|kilogram|ounce|pound|milliliter|liter|teaspoon|tablespoon|cup|pint|quart|gallon|piece|slice|clove|package|can|bunch|to_taste|as_needed"
	categoryVocabulary = "produce|meat|seafood|dairy|bakery|pantry|spices|beverages|frozen|snacks|other"
)

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}

func orAny(value string) string {
	if value == "" {
		return "any"
	}
	return value
}

func buildIngredientsPrompt(mealName string, servings int, restrictions []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a culinary expert. Generate a comprehensive ingredient list for %q.\n\n", mealName)
	fmt.Fprintf(&b, "Requirements:\n")
	fmt.Fprintf(&b, "- Servings: %d\n", servings)
	fmt.Fprintf(&b, "- Dietary restrictions: %s\n", joinOrNone(restrictions))
	fmt.Fprintf(&b, "- Format: Return ONLY valid JSON with no additional text or markdown\n\n")
	fmt.Fprintf(&b, `JSON Schema:
{
  "ingredients": [
    {
      "name": "ingredient name (lowercase)",
      "quantity": number,
      "unit": "%s",
      "category": "%s",
      "notes": "preparation notes (optional)"
    }
  ]
}

Example:
{"ingredients": [{"name": "chicken breast", "quantity": 500, "unit": "gram", "category": "meat", "notes": "boneless, skinless"}]}

Generate ingredients for %s:

note: Return ONLY valid JSON with no additional text or markdown
`, unitVocabulary, categoryVocabulary, mealName)
	return b.String()
}

func buildRecipePrompt(cmd recipePromptInput) string {
	var ingredientSection string
	if len(cmd.IngredientNames) > 0 {
		ingredientSection = fmt.Sprintf(`Using these main ingredients:
%s

IMPORTANT: You may suggest additional ingredients needed to complete the recipe (like spices, oils, seasonings, etc.).
Mark user-provided ingredients with is_user_provided=true, and additional ingredients with is_user_provided=false.`,
			strings.Join(cmd.IngredientNames, ", "))
	} else {
		ingredientSection = `The user has not provided any specific ingredients.

IMPORTANT: You must suggest ALL ingredients needed for this recipe.
Mark all ingredients with is_user_provided=false since they are all AI-suggested.`
	}

	maxPrep := "no limit"
	if cmd.MaxPrepTimeMinutes > 0 {
		maxPrep = fmt.Sprintf("%d", cmd.MaxPrepTimeMinutes)
	}
	language := cmd.Language
	if language == "" {
		language = "en"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a culinary expert. Create a detailed recipe for %q.\n\n", cmd.MealName)
	fmt.Fprintf(&b, "%s\n\n", ingredientSection)
	fmt.Fprintf(&b, "Requirements:\n")
	fmt.Fprintf(&b, "- Servings: %d\n", cmd.Servings)
	fmt.Fprintf(&b, "- Difficulty: %s\n", orAny(cmd.Difficulty))
	fmt.Fprintf(&b, "- Max prep time: %s minutes\n", maxPrep)
	fmt.Fprintf(&b, "- Cuisine type: %s\n", orAny(cmd.CuisineType))
	fmt.Fprintf(&b, "- Dietary restrictions: %s\n", joinOrNone(cmd.DietaryRestrictions))
	fmt.Fprintf(&b, "- language: %s\n", language)
	fmt.Fprintf(&b, "- Format: Return ONLY valid JSON with no additional text\n\n")
	fmt.Fprintf(&b, `JSON Schema:
{
  "name": "recipe name",
  "description": "brief description",
  "instructions": "detailed step-by-step instructions (use \n for line breaks)",
  "prep_time_minutes": number,
  "cook_time_minutes": number,
  "difficulty": "easy|medium|hard",
  "cuisine_type": "italian|chinese|mexican|indian|japanese|american|french|thai|mediterranean|middle_eastern|korean|vietnamese|other",
  "tags": "comma,separated,tags",
  "calories_per_serving": number (estimate),
  "ingredients": [
    {
      "ingredient_name": "ingredient name",
      "quantity": "decimal number (e.g., 0.25, 1.5, 2)",
      "unit": "%s",
      "category": "%s",
      "notes": "preparation notes",
      "is_optional": false,
      "is_user_provided": true if from main ingredients list, false if additional
    }
  ]
}

Generate recipe:

note: Return ONLY valid JSON with no additional text or markdown
`, unitVocabulary, categoryVocabulary)
	return b.String()
}

// recipePromptInput carries the prompt-relevant slice of a recipe command.
type recipePromptInput struct {
	MealName            string
	IngredientNames     []string
	Servings            int
	Difficulty          string
	MaxPrepTimeMinutes  int
	CuisineType         string
	DietaryRestrictions []string
	Language            string
}

func buildMealPlanPrompt(days, mealsPerDay int, available []catalog.AvailableIngredient, past []catalog.RecentMeal, preferences, mealTypes []string, availableOnly bool) string {
	ingredientList := "None"
	if len(available) > 0 {
		names := make([]string, len(available))
		for i, a := range available {
			names[i] = a.Name
		}
		ingredientList = strings.Join(names, ", ")
	}

	var pastContext string
	if len(past) > 0 {
		var lines []string
		for _, m := range past {
			lines = append(lines, fmt.Sprintf("- %s (%s, %s)", m.Name, m.MealType, m.Date.Format("2006-01-02")))
		}
		pastContext = fmt.Sprintf(`
Past Meals (last 30 days):
%s

IMPORTANT: Use this meal history to:
- Avoid repeating the same meals too frequently
- Maintain variety in meal types and cuisines
- Consider user preferences based on recently planned meals
- Balance the meal plan with different protein sources and cooking styles
`, strings.Join(lines, "\n"))
	} else {
		pastContext = "\nNo past meal history available. Focus on creating a diverse, balanced meal plan.\n"
	}

	mealTypesStr := "breakfast, lunch, dinner"
	if len(mealTypes) > 0 {
		mealTypesStr = strings.Join(mealTypes, ", ")
	}
	constraint := "Can suggest additional ingredients"
	if availableOnly {
		constraint = "Only use available ingredients"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a meal planning expert. Create a %d-day meal plan with %d meals per day.\n\n", days, mealsPerDay)
	fmt.Fprintf(&b, "Available Ingredients:\n%s\n\n%s\n", ingredientList, pastContext)
	fmt.Fprintf(&b, "Requirements:\n")
	fmt.Fprintf(&b, "- Use available ingredients prioritized\n")
	fmt.Fprintf(&b, "- Dietary preferences: %s\n", joinOrNone(preferences))
	fmt.Fprintf(&b, "- Strict constraint: %s\n", constraint)
	fmt.Fprintf(&b, "- Preferred meal types: %s\n", mealTypesStr)
	fmt.Fprintf(&b, "- Ensure variety and avoid repeating meals from the past 30 days when possible\n")
	fmt.Fprintf(&b, "- Format: Return ONLY valid JSON\n\n")
	fmt.Fprintf(&b, `JSON Schema:
{
  "meal_plan": [
    {
      "day": 1,
      "meal_type": "breakfast|lunch|dinner|snack",
      "meal_name": "name",
      "description": "brief description",
      "ingredients_used": ["ingredient names from available list"],
      "additional_ingredients_needed": ["ingredient names not in available list"],
      "estimated_prep_time_minutes": minutes,
      "estimated_calories": number
    }
  ]
}

Generate meal plan:

note: Return ONLY valid JSON with no additional text or markdown
`)
	return b.String()
}
