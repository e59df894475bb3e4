package grocery

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/platewise/v1/internal/domain/catalog"
	domain "github.com/platewise/v1/internal/domain/grocery"
	"github.com/platewise/v1/internal/ports/inbound"
	apperrors "github.com/platewise/v1/pkg/errors"
)

type MockMealRepository struct {
	mock.Mock
}

func (m *MockMealRepository) FindRecentMeals(ctx context.Context, householdID uuid.UUID, from, to time.Time, limit int) ([]catalog.RecentMeal, error) {
	args := m.Called(ctx, householdID, from, to, limit)
	return args.Get(0).([]catalog.RecentMeal), args.Error(1)
}

func (m *MockMealRepository) FindMealsForAggregation(ctx context.Context, mealIDs []uuid.UUID) ([]domain.Meal, error) {
	args := m.Called(ctx, mealIDs)
	return args.Get(0).([]domain.Meal), args.Error(1)
}

type MockHouseholdRepository struct {
	mock.Mock
}

func (m *MockHouseholdRepository) IsMember(ctx context.Context, householdID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, householdID, userID)
	return args.Bool(0), args.Error(1)
}

var (
	testHousehold = uuid.New()
	testUser      = uuid.New()
)

func newTestService(t *testing.T) (*Service, *MockMealRepository, *MockHouseholdRepository) {
	meals := &MockMealRepository{}
	households := &MockHouseholdRepository{}
	svc := NewService(meals, households, zaptest.NewLogger(t))
	return svc, meals, households
}

func day(d int) time.Time {
	return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
}

func mealWithRecipe(mealServings, recipeServings int, date time.Time, lines ...domain.RecipeLine) domain.Meal {
	return domain.Meal{
		ID:          uuid.New(),
		HouseholdID: testHousehold,
		Name:        "test meal",
		Date:        date,
		Servings:    mealServings,
		Recipe: &domain.Recipe{
			ID:       uuid.New(),
			Name:     "test recipe",
			Servings: recipeServings,
			Lines:    lines,
		},
	}
}

func TestBuildGroceryListScalesSumsAndRounds(t *testing.T) {
	svc, meals, households := newTestService(t)
	households.On("IsMember", mock.Anything, testHousehold, testUser).Return(true, nil)

	riceID := uuid.New()
	price := 3.50
	// Recipe serves 4, meal feeds 8: quantities double. Two meals use the
	// same ingredient and unit so contributions sum: 2*400 + 400 = 1200.
	m1 := mealWithRecipe(8, 4, day(3), domain.RecipeLine{
		IngredientID: riceID, Name: "rice", Category: catalog.CategoryPantry,
		Quantity: 400, Unit: catalog.UnitGram, AveragePrice: &price,
	})
	m2 := mealWithRecipe(4, 4, day(5), domain.RecipeLine{
		IngredientID: riceID, Name: "rice", Category: catalog.CategoryPantry,
		Quantity: 400, Unit: catalog.UnitGram, AveragePrice: &price,
	})
	ids := []uuid.UUID{m1.ID, m2.ID}
	meals.On("FindMealsForAggregation", mock.Anything, ids).Return([]domain.Meal{m1, m2}, nil)

	list, err := svc.BuildGroceryList(context.Background(), inbound.BuildGroceryListCommand{
		UserID:      testUser,
		HouseholdID: testHousehold,
		Name:        "Weekly shop",
		MealIDs:     ids,
	})
	require.NoError(t, err)

	require.Len(t, list.Lines, 1)
	line := list.Lines[0]
	assert.Equal(t, riceID, line.IngredientID)
	assert.Equal(t, 1200.00, line.Quantity)
	assert.Equal(t, catalog.UnitGram, line.Unit)
	assert.Equal(t, "rice", line.Name)
	require.NotNil(t, line.EstimatedCost)
	assert.Equal(t, 3.50, *line.EstimatedCost)

	assert.Equal(t, day(3), list.StartDate)
	assert.Equal(t, day(5), list.EndDate)
	assert.Equal(t, 1, list.TotalItems)
	assert.Equal(t, "Weekly shop", list.Name)
}

func TestBuildGroceryListSortsByNameThenUnit(t *testing.T) {
	svc, meals, households := newTestService(t)
	households.On("IsMember", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	milkID := uuid.New()
	m := mealWithRecipe(4, 4, day(1),
		domain.RecipeLine{IngredientID: uuid.New(), Name: "zucchini", Category: catalog.CategoryProduce, Quantity: 2, Unit: catalog.UnitPiece},
		domain.RecipeLine{IngredientID: milkID, Name: "milk", Category: catalog.CategoryDairy, Quantity: 200, Unit: catalog.UnitMilliliter},
		domain.RecipeLine{IngredientID: milkID, Name: "milk", Category: catalog.CategoryDairy, Quantity: 1, Unit: catalog.UnitCup},
		domain.RecipeLine{IngredientID: uuid.New(), Name: "apple", Category: catalog.CategoryProduce, Quantity: 3, Unit: catalog.UnitPiece},
	)
	meals.On("FindMealsForAggregation", mock.Anything, mock.Anything).Return([]domain.Meal{m}, nil)

	list, err := svc.BuildGroceryList(context.Background(), inbound.BuildGroceryListCommand{
		UserID:      testUser,
		HouseholdID: testHousehold,
		Name:        "Weekly shop",
		MealIDs:     []uuid.UUID{m.ID},
	})
	require.NoError(t, err)

	require.Len(t, list.Lines, 4)
	assert.Equal(t, "apple", list.Lines[0].Name)
	assert.Equal(t, "milk", list.Lines[1].Name)
	assert.Equal(t, catalog.UnitCup, list.Lines[1].Unit)
	assert.Equal(t, "milk", list.Lines[2].Name)
	assert.Equal(t, catalog.UnitMilliliter, list.Lines[2].Unit)
	assert.Equal(t, "zucchini", list.Lines[3].Name)
}

func TestBuildGroceryListRequiresName(t *testing.T) {
	svc, meals, _ := newTestService(t)

	_, err := svc.BuildGroceryList(context.Background(), inbound.BuildGroceryListCommand{
		UserID:      testUser,
		HouseholdID: testHousehold,
		Name:        "   ",
		MealIDs:     []uuid.UUID{uuid.New()},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidationFailed, apperrors.GetCode(err))
	meals.AssertNotCalled(t, "FindMealsForAggregation")
}

func TestBuildGroceryListKeepsUnitsSeparate(t *testing.T) {
	svc, meals, households := newTestService(t)
	households.On("IsMember", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	milkID := uuid.New()
	m := mealWithRecipe(4, 4, day(1),
		domain.RecipeLine{IngredientID: milkID, Name: "milk", Category: catalog.CategoryDairy, Quantity: 2, Unit: catalog.UnitCup},
		domain.RecipeLine{IngredientID: milkID, Name: "milk", Category: catalog.CategoryDairy, Quantity: 200, Unit: catalog.UnitMilliliter},
	)
	meals.On("FindMealsForAggregation", mock.Anything, mock.Anything).Return([]domain.Meal{m}, nil)

	list, err := svc.BuildGroceryList(context.Background(), inbound.BuildGroceryListCommand{
		UserID:      testUser,
		HouseholdID: testHousehold,
		Name:        "Weekly shop",
		MealIDs:     []uuid.UUID{m.ID},
	})
	require.NoError(t, err)
	assert.Len(t, list.Lines, 2)
}

func TestBuildGroceryListSkipsOptionalLines(t *testing.T) {
	svc, meals, households := newTestService(t)
	households.On("IsMember", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	m := mealWithRecipe(4, 4, day(1),
		domain.RecipeLine{IngredientID: uuid.New(), Name: "flour", Category: catalog.CategoryPantry, Quantity: 500, Unit: catalog.UnitGram},
		domain.RecipeLine{IngredientID: uuid.New(), Name: "chili flakes", Category: catalog.CategorySpices, Quantity: 1, Unit: catalog.UnitTeaspoon, IsOptional: true},
	)
	meals.On("FindMealsForAggregation", mock.Anything, mock.Anything).Return([]domain.Meal{m}, nil)

	list, err := svc.BuildGroceryList(context.Background(), inbound.BuildGroceryListCommand{
		UserID:      testUser,
		HouseholdID: testHousehold,
		Name:        "Weekly shop",
		MealIDs:     []uuid.UUID{m.ID},
	})
	require.NoError(t, err)
	require.Len(t, list.Lines, 1)
	assert.Equal(t, "flour", list.Lines[0].Name)
}

func TestBuildGroceryListRejectsUnknownMeal(t *testing.T) {
	svc, meals, households := newTestService(t)
	households.On("IsMember", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	known := mealWithRecipe(2, 2, day(1))
	meals.On("FindMealsForAggregation", mock.Anything, mock.Anything).Return([]domain.Meal{known}, nil)

	_, err := svc.BuildGroceryList(context.Background(), inbound.BuildGroceryListCommand{
		UserID:      testUser,
		HouseholdID: testHousehold,
		Name:        "Weekly shop",
		MealIDs:     []uuid.UUID{known.ID, uuid.New()},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeBadRequest, apperrors.GetCode(err))
	assert.Contains(t, err.Error(), "not found")
}

func TestBuildGroceryListRejectsForeignMeal(t *testing.T) {
	svc, meals, households := newTestService(t)
	households.On("IsMember", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	foreign := mealWithRecipe(2, 2, day(1))
	foreign.HouseholdID = uuid.New()
	meals.On("FindMealsForAggregation", mock.Anything, mock.Anything).Return([]domain.Meal{foreign}, nil)

	_, err := svc.BuildGroceryList(context.Background(), inbound.BuildGroceryListCommand{
		UserID:      testUser,
		HouseholdID: testHousehold,
		Name:        "Weekly shop",
		MealIDs:     []uuid.UUID{foreign.ID},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeBadRequest, apperrors.GetCode(err))
	assert.Contains(t, err.Error(), "belong")
}

func TestBuildGroceryListZeroServingsRecipe(t *testing.T) {
	svc, meals, households := newTestService(t)
	households.On("IsMember", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	m := mealWithRecipe(4, 0, day(1),
		domain.RecipeLine{IngredientID: uuid.New(), Name: "flour", Category: catalog.CategoryPantry, Quantity: 500, Unit: catalog.UnitGram},
	)
	meals.On("FindMealsForAggregation", mock.Anything, mock.Anything).Return([]domain.Meal{m}, nil)

	_, err := svc.BuildGroceryList(context.Background(), inbound.BuildGroceryListCommand{
		UserID:      testUser,
		HouseholdID: testHousehold,
		Name:        "Weekly shop",
		MealIDs:     []uuid.UUID{m.ID},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInternal, apperrors.GetCode(err))
}

func TestBuildGroceryListMembershipDenied(t *testing.T) {
	svc, meals, households := newTestService(t)
	households.On("IsMember", mock.Anything, testHousehold, testUser).Return(false, nil)

	_, err := svc.BuildGroceryList(context.Background(), inbound.BuildGroceryListCommand{
		UserID:      testUser,
		HouseholdID: testHousehold,
		Name:        "Weekly shop",
		MealIDs:     []uuid.UUID{uuid.New()},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeHouseholdAccessDenied, apperrors.GetCode(err))
	meals.AssertNotCalled(t, "FindMealsForAggregation")
}

func TestBuildGroceryListMealsWithoutRecipesContributeNothing(t *testing.T) {
	svc, meals, households := newTestService(t)
	households.On("IsMember", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	m := domain.Meal{ID: uuid.New(), HouseholdID: testHousehold, Name: "takeout", Date: day(2), Servings: 2}
	meals.On("FindMealsForAggregation", mock.Anything, mock.Anything).Return([]domain.Meal{m}, nil)

	list, err := svc.BuildGroceryList(context.Background(), inbound.BuildGroceryListCommand{
		UserID:      testUser,
		HouseholdID: testHousehold,
		Name:        "Weekly shop",
		MealIDs:     []uuid.UUID{m.ID},
	})
	require.NoError(t, err)
	assert.Empty(t, list.Lines)
	assert.Equal(t, 0, list.TotalItems)
}

func TestBuildGroceryListPermutationInvariantTotals(t *testing.T) {
	svc, meals, households := newTestService(t)
	households.On("IsMember", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	id := uuid.New()
	m1 := mealWithRecipe(3, 2, day(1), domain.RecipeLine{IngredientID: id, Name: "butter", Category: catalog.CategoryDairy, Quantity: 0.33, Unit: catalog.UnitCup})
	m2 := mealWithRecipe(5, 4, day(2), domain.RecipeLine{IngredientID: id, Name: "butter", Category: catalog.CategoryDairy, Quantity: 0.25, Unit: catalog.UnitCup})

	forward := []domain.Meal{m1, m2}
	reverse := []domain.Meal{m2, m1}
	meals.On("FindMealsForAggregation", mock.Anything, []uuid.UUID{m1.ID, m2.ID}).Return(forward, nil)
	meals.On("FindMealsForAggregation", mock.Anything, []uuid.UUID{m2.ID, m1.ID}).Return(reverse, nil)

	a, err := svc.BuildGroceryList(context.Background(), inbound.BuildGroceryListCommand{
		UserID: testUser, HouseholdID: testHousehold, Name: "Weekly shop", MealIDs: []uuid.UUID{m1.ID, m2.ID},
	})
	require.NoError(t, err)
	b, err := svc.BuildGroceryList(context.Background(), inbound.BuildGroceryListCommand{
		UserID: testUser, HouseholdID: testHousehold, Name: "Weekly shop", MealIDs: []uuid.UUID{m2.ID, m1.ID},
	})
	require.NoError(t, err)

	require.Len(t, a.Lines, 1)
	require.Len(t, b.Lines, 1)
	assert.Equal(t, a.Lines[0].Quantity, b.Lines[0].Quantity)
}
