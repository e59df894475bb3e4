package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/infrastructure/http/middleware"
	"github.com/platewise/v1/internal/ports/inbound"
)

// PlannerAPIHandlers handles AI generation requests
type PlannerAPIHandlers struct {
	planner  inbound.PlannerService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewPlannerAPIHandlers(planner inbound.PlannerService, logger *zap.Logger) *PlannerAPIHandlers {
	return &PlannerAPIHandlers{
		planner:  planner,
		validate: validator.New(),
		logger:   logger,
	}
}

// GenerateIngredientsRequest represents an ingredient generation request
type GenerateIngredientsRequest struct {
	HouseholdID         string   `json:"household_id" validate:"required,uuid"`
	MealName            string   `json:"meal_name" validate:"required,max=200"`
	Servings            int      `json:"servings" validate:"omitempty,min=1,max=100"`
	DietaryRestrictions []string `json:"dietary_restrictions" validate:"omitempty,dive,max=100"`
}

// GenerateRecipeRequest represents a recipe generation request
type GenerateRecipeRequest struct {
	HouseholdID         string   `json:"household_id" validate:"required,uuid"`
	MealName            string   `json:"meal_name" validate:"required,max=200"`
	IngredientIDs       []string `json:"ingredient_ids" validate:"omitempty,dive,uuid"`
	IngredientNames     []string `json:"ingredient_names" validate:"omitempty,dive,max=200"`
	Servings            int      `json:"servings" validate:"omitempty,min=1,max=100"`
	Difficulty          string   `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	MaxPrepTimeMinutes  int      `json:"max_prep_time_minutes" validate:"omitempty,min=1"`
	CuisineType         string   `json:"cuisine_type" validate:"omitempty,max=50"`
	DietaryRestrictions []string `json:"dietary_restrictions" validate:"omitempty,dive,max=100"`
	Language            string   `json:"language" validate:"omitempty,len=2"`
}

// GenerateMealPlanRequest represents a meal plan generation request
type GenerateMealPlanRequest struct {
	HouseholdID        string   `json:"household_id" validate:"required,uuid"`
	Days               int      `json:"days" validate:"required,min=1,max=30"`
	MealsPerDay        int      `json:"meals_per_day" validate:"required,min=1,max=6"`
	StartDate          string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	DietaryPreferences []string `json:"dietary_preferences" validate:"omitempty,dive,max=100"`
	UseAvailableOnly   bool     `json:"use_available_only"`
	PreferredMealTypes []string `json:"preferred_meal_types" validate:"omitempty,dive,oneof=breakfast lunch dinner snack"`
}

// GenerateIngredients handles POST /api/v1/ai/generate-ingredients
func (h *PlannerAPIHandlers) GenerateIngredients(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeJSON(w, h.logger, http.StatusUnauthorized, APIResponse{Success: false, Message: "User not authenticated"})
		return
	}

	var req GenerateIngredientsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, APIResponse{Success: false, Message: "Invalid JSON payload"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, APIResponse{Success: false, Message: err.Error()})
		return
	}
	householdID, _ := uuid.Parse(req.HouseholdID)

	result, err := h.planner.GenerateIngredients(r.Context(), inbound.GenerateIngredientsCommand{
		UserID:              userID,
		HouseholdID:         householdID,
		MealName:            req.MealName,
		Servings:            req.Servings,
		DietaryRestrictions: req.DietaryRestrictions,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
		Message: "Ingredients generated successfully",
	})
}

// GenerateRecipe handles POST /api/v1/ai/generate-recipe
func (h *PlannerAPIHandlers) GenerateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeJSON(w, h.logger, http.StatusUnauthorized, APIResponse{Success: false, Message: "User not authenticated"})
		return
	}

	var req GenerateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, APIResponse{Success: false, Message: "Invalid JSON payload"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, APIResponse{Success: false, Message: err.Error()})
		return
	}
	householdID, _ := uuid.Parse(req.HouseholdID)
	ingredientIDs := make([]uuid.UUID, len(req.IngredientIDs))
	for i, raw := range req.IngredientIDs {
		ingredientIDs[i], _ = uuid.Parse(raw)
	}

	result, err := h.planner.GenerateRecipe(r.Context(), inbound.GenerateRecipeCommand{
		UserID:              userID,
		HouseholdID:         householdID,
		MealName:            req.MealName,
		IngredientIDs:       ingredientIDs,
		IngredientNames:     req.IngredientNames,
		Servings:            req.Servings,
		Difficulty:          req.Difficulty,
		MaxPrepTimeMinutes:  req.MaxPrepTimeMinutes,
		CuisineType:         req.CuisineType,
		DietaryRestrictions: req.DietaryRestrictions,
		Language:            req.Language,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
		Message: "Recipe generated successfully",
	})
}

// GenerateMealPlan handles POST /api/v1/ai/generate-meal-plan
func (h *PlannerAPIHandlers) GenerateMealPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeJSON(w, h.logger, http.StatusUnauthorized, APIResponse{Success: false, Message: "User not authenticated"})
		return
	}

	var req GenerateMealPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, APIResponse{Success: false, Message: "Invalid JSON payload"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, APIResponse{Success: false, Message: err.Error()})
		return
	}
	householdID, _ := uuid.Parse(req.HouseholdID)

	cmd := inbound.GenerateMealPlanCommand{
		UserID:             userID,
		HouseholdID:        householdID,
		Days:               req.Days,
		MealsPerDay:        req.MealsPerDay,
		DietaryPreferences: req.DietaryPreferences,
		UseAvailableOnly:   req.UseAvailableOnly,
		PreferredMealTypes: req.PreferredMealTypes,
	}
	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			writeJSON(w, h.logger, http.StatusBadRequest, APIResponse{Success: false, Message: "start_date must be YYYY-MM-DD"})
			return
		}
		cmd.StartDate = &start
	}

	result, err := h.planner.GenerateMealPlan(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
		Message: "Meal plan generated successfully",
	})
}
