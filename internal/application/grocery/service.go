// Package grocery turns a set of scheduled meals into one consolidated
// shopping list, scaling recipe quantities by serving ratio and summing per
// (ingredient, unit) group.
package grocery

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/domain/catalog"
	domain "github.com/platewise/v1/internal/domain/grocery"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	apperrors "github.com/platewise/v1/pkg/errors"
)

// Service implements inbound.GroceryService.
type Service struct {
	meals      outbound.MealRepository
	households outbound.HouseholdRepository
	logger     *zap.Logger
}

func NewService(mealRepo outbound.MealRepository, householdRepo outbound.HouseholdRepository, logger *zap.Logger) *Service {
	return &Service{
		meals:      mealRepo,
		households: householdRepo,
		logger:     logger,
	}
}

var _ inbound.GroceryService = (*Service)(nil)

type lineKey struct {
	ingredientID uuid.UUID
	unit         catalog.Unit
}

// BuildGroceryList aggregates the ingredient needs of the given meals into
// one named list. Any unknown meal id, or a meal from another household,
// rejects the whole call; no partial list is produced. Lines come back
// sorted by ingredient name then unit.
func (s *Service) BuildGroceryList(ctx context.Context, cmd inbound.BuildGroceryListCommand) (*domain.List, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("list name is required")
	}
	if len(cmd.MealIDs) == 0 {
		return nil, apperrors.NewValidationError("at least one meal id is required")
	}
	ok, err := s.households.IsMember(ctx, cmd.HouseholdID, cmd.UserID)
	if err != nil {
		return nil, apperrors.Wrap(err, "membership lookup failed")
	}
	if !ok {
		return nil, apperrors.NewHouseholdAccessError(cmd.HouseholdID.String())
	}

	unique := make(map[uuid.UUID]bool, len(cmd.MealIDs))
	for _, id := range cmd.MealIDs {
		unique[id] = true
	}

	meals, err := s.meals.FindMealsForAggregation(ctx, cmd.MealIDs)
	if err != nil {
		return nil, apperrors.Wrap(err, "loading meals")
	}
	if len(meals) < len(unique) {
		return nil, apperrors.NewBadRequestError("One or more meals not found")
	}
	for _, m := range meals {
		if m.HouseholdID != cmd.HouseholdID {
			return nil, apperrors.NewBadRequestError("All meals must belong to the specified household")
		}
	}

	groups := make(map[lineKey]*domain.Line)

	list := &domain.List{
		Name:        name,
		HouseholdID: cmd.HouseholdID,
		MealIDs:     cmd.MealIDs,
	}
	for _, m := range meals {
		if !m.Date.IsZero() {
			if list.StartDate.IsZero() || m.Date.Before(list.StartDate) {
				list.StartDate = m.Date
			}
			if list.EndDate.IsZero() || m.Date.After(list.EndDate) {
				list.EndDate = m.Date
			}
		}
		if m.Recipe == nil || len(m.Recipe.Lines) == 0 {
			continue
		}
		if m.Recipe.Servings <= 0 {
			return nil, apperrors.NewInternalError(
				fmt.Sprintf("recipe %q has no serving count", m.Recipe.Name))
		}
		ratio := float64(m.Servings) / float64(m.Recipe.Servings)

		for _, line := range m.Recipe.Lines {
			if line.IsOptional {
				continue
			}
			key := lineKey{ingredientID: line.IngredientID, unit: line.Unit}
			scaled := line.Quantity * ratio
			if existing, found := groups[key]; found {
				existing.Quantity += scaled
				continue
			}
			groups[key] = &domain.Line{
				IngredientID:  line.IngredientID,
				Name:          line.Name,
				Category:      line.Category,
				Quantity:      scaled,
				Unit:          line.Unit,
				Notes:         line.Notes,
				EstimatedCost: line.AveragePrice,
			}
		}
	}

	for _, line := range groups {
		line.Quantity = round2(line.Quantity)
		list.Lines = append(list.Lines, *line)
	}
	sort.Slice(list.Lines, func(i, j int) bool {
		a, b := list.Lines[i], list.Lines[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.Unit != b.Unit {
			return a.Unit < b.Unit
		}
		return a.IngredientID.String() < b.IngredientID.String()
	})
	list.TotalItems = len(list.Lines)

	s.logger.Info("grocery list built",
		zap.String("household_id", cmd.HouseholdID.String()),
		zap.Int("meals", len(meals)),
		zap.Int("items", list.TotalItems))
	return list, nil
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
