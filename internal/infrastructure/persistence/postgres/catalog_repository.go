package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/ports/outbound"
)

// CatalogRepository implements outbound.CatalogRepository.
type CatalogRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCatalogRepository(db *pgxpool.Pool, logger *zap.Logger) outbound.CatalogRepository {
	return &CatalogRepository{db: db, logger: logger}
}

// FindIngredientsByHousehold returns the household's full ingredient catalog
// in alphabetical name order.
func (r *CatalogRepository) FindIngredientsByHousehold(ctx context.Context, householdID uuid.UUID) ([]catalog.Ingredient, error) {
	query := `
		SELECT id, name, category, household_id, description, average_price, price_unit, created_at, updated_at
		FROM ingredients
		WHERE household_id = $1
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query, householdID)
	if err != nil {
		return nil, fmt.Errorf("querying ingredients: %w", err)
	}
	defer rows.Close()

	var result []catalog.Ingredient
	for rows.Next() {
		var ing catalog.Ingredient
		var category string
		var priceUnit *string
		if err := rows.Scan(&ing.ID, &ing.Name, &category, &ing.HouseholdID, &ing.Description,
			&ing.AveragePrice, &priceUnit, &ing.CreatedAt, &ing.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning ingredient: %w", err)
		}
		ing.Category = catalog.Category(category)
		if priceUnit != nil {
			u := catalog.Unit(*priceUnit)
			ing.PriceUnit = &u
		}
		result = append(result, ing)
	}
	return result, rows.Err()
}

// FindAvailableIngredients returns ingredients marked purchased in the
// household's grocery lists, one row per ingredient, most recent purchase
// winning.
func (r *CatalogRepository) FindAvailableIngredients(ctx context.Context, householdID uuid.UUID) ([]catalog.AvailableIngredient, error) {
	query := `
		SELECT DISTINCT ON (i.id) i.id, i.name, gli.quantity, gli.unit, i.category
		FROM grocery_list_items gli
		JOIN grocery_lists gl ON gl.id = gli.grocery_list_id
		JOIN ingredients i ON i.id = gli.ingredient_id
		WHERE gl.household_id = $1 AND gli.is_purchased
		ORDER BY i.id, gl.created_at DESC`

	rows, err := r.db.Query(ctx, query, householdID)
	if err != nil {
		return nil, fmt.Errorf("querying available ingredients: %w", err)
	}
	defer rows.Close()

	var result []catalog.AvailableIngredient
	for rows.Next() {
		var a catalog.AvailableIngredient
		var unit, category string
		if err := rows.Scan(&a.IngredientID, &a.Name, &a.Quantity, &unit, &category); err != nil {
			return nil, fmt.Errorf("scanning available ingredient: %w", err)
		}
		a.Unit = catalog.Unit(unit)
		a.Category = catalog.Category(category)
		result = append(result, a)
	}
	return result, rows.Err()
}

// FindRecipesByHousehold returns the household's recipe references in
// alphabetical name order.
func (r *CatalogRepository) FindRecipesByHousehold(ctx context.Context, householdID uuid.UUID) ([]catalog.RecipeRef, error) {
	query := `
		SELECT id, name, household_id, servings
		FROM recipes
		WHERE household_id = $1
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query, householdID)
	if err != nil {
		return nil, fmt.Errorf("querying recipes: %w", err)
	}
	defer rows.Close()

	var result []catalog.RecipeRef
	for rows.Next() {
		var ref catalog.RecipeRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.HouseholdID, &ref.Servings); err != nil {
			return nil, fmt.Errorf("scanning recipe: %w", err)
		}
		result = append(result, ref)
	}
	return result, rows.Err()
}
