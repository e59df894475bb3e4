package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/domain/grocery"
	"github.com/platewise/v1/internal/ports/outbound"
)

// MealRepository implements outbound.MealRepository.
type MealRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewMealRepository(db *pgxpool.Pool, logger *zap.Logger) outbound.MealRepository {
	return &MealRepository{db: db, logger: logger}
}

// FindRecentMeals returns meals dated within [from, to] in chronological
// order, keeping only the most recent limit entries.
func (r *MealRepository) FindRecentMeals(ctx context.Context, householdID uuid.UUID, from, to time.Time, limit int) ([]catalog.RecentMeal, error) {
	query := `
		SELECT name, meal_type, meal_date FROM (
			SELECT name, meal_type, meal_date
			FROM meals
			WHERE household_id = $1 AND meal_date BETWEEN $2 AND $3
			ORDER BY meal_date DESC
			LIMIT $4
		) recent
		ORDER BY meal_date ASC`

	rows, err := r.db.Query(ctx, query, householdID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent meals: %w", err)
	}
	defer rows.Close()

	var result []catalog.RecentMeal
	for rows.Next() {
		var m catalog.RecentMeal
		var mealType string
		if err := rows.Scan(&m.Name, &mealType, &m.Date); err != nil {
			return nil, fmt.Errorf("scanning recent meal: %w", err)
		}
		m.MealType = catalog.MealType(mealType)
		result = append(result, m)
	}
	return result, rows.Err()
}

// FindMealsForAggregation loads the given meals together with their linked
// recipe and its ingredient lines. Unknown ids are simply absent from the
// result.
func (r *MealRepository) FindMealsForAggregation(ctx context.Context, mealIDs []uuid.UUID) ([]grocery.Meal, error) {
	mealQuery := `
		SELECT m.id, m.household_id, m.name, m.meal_date, m.meal_type, m.servings,
		       m.recipe_id, r.name, r.servings
		FROM meals m
		LEFT JOIN recipes r ON r.id = m.recipe_id
		WHERE m.id = ANY($1)`

	rows, err := r.db.Query(ctx, mealQuery, mealIDs)
	if err != nil {
		return nil, fmt.Errorf("querying meals: %w", err)
	}
	defer rows.Close()

	var meals []grocery.Meal
	byRecipe := make(map[uuid.UUID][]int)
	for rows.Next() {
		var m grocery.Meal
		var mealType string
		var recipeName *string
		var recipeServings *int
		if err := rows.Scan(&m.ID, &m.HouseholdID, &m.Name, &m.Date, &mealType, &m.Servings,
			&m.RecipeID, &recipeName, &recipeServings); err != nil {
			return nil, fmt.Errorf("scanning meal: %w", err)
		}
		m.MealType = catalog.MealType(mealType)
		if m.RecipeID != nil && recipeName != nil {
			m.Recipe = &grocery.Recipe{ID: *m.RecipeID, Name: *recipeName}
			if recipeServings != nil {
				m.Recipe.Servings = *recipeServings
			}
			byRecipe[*m.RecipeID] = append(byRecipe[*m.RecipeID], len(meals))
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(byRecipe) == 0 {
		return meals, nil
	}

	recipeIDs := make([]uuid.UUID, 0, len(byRecipe))
	for id := range byRecipe {
		recipeIDs = append(recipeIDs, id)
	}

	lineQuery := `
		SELECT ri.recipe_id, ri.ingredient_id, i.name, i.category, ri.quantity, ri.unit,
		       ri.notes, i.average_price, ri.is_optional
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ri.recipe_id = ANY($1)`

	lineRows, err := r.db.Query(ctx, lineQuery, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("querying recipe ingredients: %w", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var recipeID uuid.UUID
		var line grocery.RecipeLine
		var category, unit string
		if err := lineRows.Scan(&recipeID, &line.IngredientID, &line.Name, &category,
			&line.Quantity, &unit, &line.Notes, &line.AveragePrice, &line.IsOptional); err != nil {
			return nil, fmt.Errorf("scanning recipe ingredient: %w", err)
		}
		line.Category = catalog.Category(category)
		line.Unit = catalog.Unit(unit)
		for _, idx := range byRecipe[recipeID] {
			meals[idx].Recipe.Lines = append(meals[idx].Recipe.Lines, line)
		}
	}
	return meals, lineRows.Err()
}
