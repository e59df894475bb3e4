package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/infrastructure/http/middleware"
	"github.com/platewise/v1/internal/ports/inbound"
)

// GroceryAPIHandlers handles grocery list aggregation requests
type GroceryAPIHandlers struct {
	grocery  inbound.GroceryService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewGroceryAPIHandlers(grocery inbound.GroceryService, logger *zap.Logger) *GroceryAPIHandlers {
	return &GroceryAPIHandlers{
		grocery:  grocery,
		validate: validator.New(),
		logger:   logger,
	}
}

// GenerateGroceryListRequest represents a grocery list generation request
type GenerateGroceryListRequest struct {
	HouseholdID string   `json:"household_id" validate:"required,uuid"`
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	MealIDs     []string `json:"meal_ids" validate:"required,min=1,dive,uuid"`
}

// Generate handles POST /api/v1/grocery-lists/generate
func (h *GroceryAPIHandlers) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeJSON(w, h.logger, http.StatusUnauthorized, APIResponse{Success: false, Message: "User not authenticated"})
		return
	}

	var req GenerateGroceryListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, APIResponse{Success: false, Message: "Invalid JSON payload"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, APIResponse{Success: false, Message: err.Error()})
		return
	}

	householdID, _ := uuid.Parse(req.HouseholdID)
	mealIDs := make([]uuid.UUID, len(req.MealIDs))
	for i, raw := range req.MealIDs {
		mealIDs[i], _ = uuid.Parse(raw)
	}

	result, err := h.grocery.BuildGroceryList(r.Context(), inbound.BuildGroceryListCommand{
		UserID:      userID,
		HouseholdID: householdID,
		Name:        req.Name,
		MealIDs:     mealIDs,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
		Message: "Grocery list generated successfully",
	})
}
