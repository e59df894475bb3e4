// Package planner orchestrates AI content generation: building prompts from
// household state, invoking the model provider, extracting structured output
// from free-form replies, and reconciling suggested names with the catalog.
package planner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/application/matching"
	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/domain/planning"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	apperrors "github.com/platewise/v1/pkg/errors"
)

const (
	ingredientsTemperature = 0.7
	recipeTemperature      = 0.8
	mealPlanTemperature    = 0.6

	defaultServings = 4
	maxPlanDays     = 30
	maxMealsPerDay  = 6

	pastMealsWindowDays = 30
	pastMealsLimit      = 20
)

// Service implements inbound.PlannerService.
type Service struct {
	cfg        *config.Config
	gen        outbound.TextGenerator
	catalog    outbound.CatalogRepository
	meals      outbound.MealRepository
	households outbound.HouseholdRepository
	cache      outbound.CacheRepository
	matcher    *matching.Matcher
	logger     *zap.Logger
	now        func() time.Time
}

// NewService wires the planner service. cache may be nil, in which case
// model replies are never cached.
func NewService(
	cfg *config.Config,
	gen outbound.TextGenerator,
	catalogRepo outbound.CatalogRepository,
	mealRepo outbound.MealRepository,
	householdRepo outbound.HouseholdRepository,
	cache outbound.CacheRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		cfg:        cfg,
		gen:        gen,
		catalog:    catalogRepo,
		meals:      mealRepo,
		households: householdRepo,
		cache:      cache,
		matcher:    matching.NewMatcher(cfg.AI.MatchThreshold, cfg.AI.RecipeMatchThreshold),
		logger:     logger,
		now:        time.Now,
	}
}

var _ inbound.PlannerService = (*Service)(nil)

// GenerateIngredients asks the model for an ingredient list for a named meal
// and reconciles every suggestion against the household catalog.
func (s *Service) GenerateIngredients(ctx context.Context, cmd inbound.GenerateIngredientsCommand) (*planning.IngredientList, error) {
	if strings.TrimSpace(cmd.MealName) == "" {
		return nil, apperrors.NewValidationError("meal_name is required")
	}
	if cmd.Servings <= 0 {
		cmd.Servings = defaultServings
	}
	if err := s.requireMember(ctx, cmd.HouseholdID, cmd.UserID); err != nil {
		return nil, err
	}

	prompt := buildIngredientsPrompt(cmd.MealName, cmd.Servings, cmd.DietaryRestrictions)
	raw, err := s.invokeModel(ctx, prompt, ingredientsTemperature, s.cfg.AI.Model)
	if err != nil {
		return nil, err
	}

	payload, err := extractJSON(raw)
	if err != nil {
		s.logger.Warn("unparsable ingredient reply",
			zap.String("meal_name", cmd.MealName),
			zap.String("raw_reply", raw))
		return nil, err
	}
	body, ok := payload["ingredients"]
	if !ok {
		return nil, apperrors.NewBadRequestError(
			"The AI couldn't generate a valid ingredient list. This might be due to:\n" +
				"• The meal name being too vague or uncommon\n" +
				"• Conflicting dietary restrictions\n" +
				"• Service temporary unavailability\n\n" +
				"Please try again with a more specific meal name or simpler requirements.")
	}
	var items []ingredientPayload
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("malformed ingredients list: %v", err))
	}

	entries, err := s.catalog.FindIngredientsByHousehold(ctx, cmd.HouseholdID)
	if err != nil {
		return nil, apperrors.Wrap(err, "loading household catalog")
	}

	result := &planning.IngredientList{
		MealName:    cmd.MealName,
		HouseholdID: cmd.HouseholdID,
	}
	for _, item := range items {
		ing, err := s.buildGeneratedIngredient(item, entries)
		if err != nil {
			return nil, err
		}
		if ing.IsNew {
			result.NewCount++
		} else {
			result.MatchCount++
		}
		result.Ingredients = append(result.Ingredients, ing)
	}
	result.Total = len(result.Ingredients)

	s.logger.Info("ingredient list generated",
		zap.String("meal_name", cmd.MealName),
		zap.String("household_id", cmd.HouseholdID.String()),
		zap.Int("total", result.Total),
		zap.Int("matched", result.MatchCount))
	return result, nil
}

// GenerateRecipe asks the model for a complete recipe draft. Caller-supplied
// ingredient ids are resolved to catalog names before prompting; an id that
// is unknown to the household fails the call before any model work. Every
// ingredient in the result is tagged is_user_provided by comparing names back
// against the caller's list, not by trusting the model's own tagging.
func (s *Service) GenerateRecipe(ctx context.Context, cmd inbound.GenerateRecipeCommand) (*planning.GeneratedRecipe, error) {
	if strings.TrimSpace(cmd.MealName) == "" {
		return nil, apperrors.NewValidationError("meal_name is required")
	}
	if cmd.Servings <= 0 {
		cmd.Servings = defaultServings
	}
	if err := s.requireMember(ctx, cmd.HouseholdID, cmd.UserID); err != nil {
		return nil, err
	}

	entries, err := s.catalog.FindIngredientsByHousehold(ctx, cmd.HouseholdID)
	if err != nil {
		return nil, apperrors.Wrap(err, "loading household catalog")
	}
	names, err := resolveIngredientIDs(cmd.IngredientIDs, entries)
	if err != nil {
		return nil, err
	}
	names = append(names, cmd.IngredientNames...)

	prompt := buildRecipePrompt(recipePromptInput{
		MealName:            cmd.MealName,
		IngredientNames:     names,
		Servings:            cmd.Servings,
		Difficulty:          cmd.Difficulty,
		MaxPrepTimeMinutes:  cmd.MaxPrepTimeMinutes,
		CuisineType:         cmd.CuisineType,
		DietaryRestrictions: cmd.DietaryRestrictions,
		Language:            cmd.Language,
	})
	raw, err := s.invokeModel(ctx, prompt, recipeTemperature, s.cfg.AI.Model)
	if err != nil {
		return nil, err
	}

	payload, err := extractJSON(raw)
	if err != nil {
		s.logger.Warn("unparsable recipe reply",
			zap.String("meal_name", cmd.MealName),
			zap.String("raw_reply", raw))
		return nil, err
	}
	var recipe recipePayload
	if err := unmarshalObject(payload, &recipe); err != nil {
		return nil, err
	}
	if strings.TrimSpace(recipe.Instructions) == "" {
		return nil, apperrors.NewBadRequestError(
			"The AI couldn't generate a complete recipe. Please try again with a more specific meal name.")
	}
	difficulty, err := catalog.ParseDifficulty(recipe.Difficulty)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown difficulty %q", recipe.Difficulty))
	}
	cuisine, err := catalog.ParseCuisine(recipe.CuisineType)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown cuisine %q", recipe.CuisineType))
	}

	supplied := make(map[string]bool, len(names))
	for _, name := range names {
		supplied[strings.ToLower(strings.TrimSpace(name))] = true
	}

	out := &planning.GeneratedRecipe{
		Name:               recipe.Name,
		Description:        recipe.Description,
		Instructions:       recipe.Instructions,
		PrepTimeMinutes:    int(recipe.PrepTimeMinutes),
		CookTimeMinutes:    int(recipe.CookTimeMinutes),
		Servings:           cmd.Servings,
		Difficulty:         difficulty,
		Cuisine:            cuisine,
		Tags:               recipe.Tags,
		CaloriesPerServing: int(recipe.CaloriesPerServing),
		HouseholdID:        cmd.HouseholdID,
	}
	if out.Name == "" {
		out.Name = cmd.MealName
	}
	for _, item := range recipe.Ingredients {
		ing, err := s.buildGeneratedIngredient(ingredientPayload{
			Name:     item.IngredientName,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			Category: item.Category,
			Notes:    item.Notes,
		}, entries)
		if err != nil {
			return nil, err
		}
		out.Ingredients = append(out.Ingredients, planning.RecipeIngredientCandidate{
			GeneratedIngredient: ing,
			IsOptional:          item.IsOptional,
			IsUserSupplied:      supplied[strings.ToLower(strings.TrimSpace(item.IngredientName))],
		})
	}

	recipes, err := s.catalog.FindRecipesByHousehold(ctx, cmd.HouseholdID)
	if err != nil {
		return nil, apperrors.Wrap(err, "loading household recipes")
	}
	if ref := s.matcher.MatchRecipe(out.Name, recipes); ref != nil {
		id := ref.ID
		out.MatchedRecipeID = &id
		s.logger.Info("recipe draft collides with stored recipe",
			zap.String("draft_name", out.Name),
			zap.String("existing_name", ref.Name),
			zap.String("existing_id", ref.ID.String()))
	}

	s.logger.Info("recipe generated",
		zap.String("meal_name", cmd.MealName),
		zap.String("household_id", cmd.HouseholdID.String()),
		zap.Int("ingredients", len(out.Ingredients)))
	return out, nil
}

// resolveIngredientIDs maps caller-supplied catalog ids onto their names.
// entries is already household-scoped, so an absent id either does not exist
// or belongs to another household; both reject the call.
func resolveIngredientIDs(ids []uuid.UUID, entries []catalog.Ingredient) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	byID := make(map[uuid.UUID]string, len(entries))
	for _, e := range entries {
		byID[e.ID] = e.Name
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		name, ok := byID[id]
		if !ok {
			return nil, apperrors.NewBadRequestError(
				fmt.Sprintf("Ingredient %s not found in this household", id))
		}
		names = append(names, name)
	}
	return names, nil
}

// GenerateMealPlan asks the model for a multi-day plan grounded on the
// household's currently available ingredients and recent meal history.
func (s *Service) GenerateMealPlan(ctx context.Context, cmd inbound.GenerateMealPlanCommand) (*planning.MealPlan, error) {
	if cmd.Days < 1 || cmd.Days > maxPlanDays {
		return nil, apperrors.NewValidationError(fmt.Sprintf("days must be between 1 and %d", maxPlanDays))
	}
	if cmd.MealsPerDay < 1 || cmd.MealsPerDay > maxMealsPerDay {
		return nil, apperrors.NewValidationError(fmt.Sprintf("meals_per_day must be between 1 and %d", maxMealsPerDay))
	}
	if err := s.requireMember(ctx, cmd.HouseholdID, cmd.UserID); err != nil {
		return nil, err
	}

	available, err := s.catalog.FindAvailableIngredients(ctx, cmd.HouseholdID)
	if err != nil {
		return nil, apperrors.Wrap(err, "loading available ingredients")
	}
	if len(available) == 0 && cmd.UseAvailableOnly {
		return nil, apperrors.NewBadRequestError(
			"No available ingredients found in your household inventory.\n\n" +
				"To generate a meal plan with available ingredients only, you need to:\n" +
				"• Add ingredients to your household\n" +
				"• Mark items as purchased in your grocery lists\n\n" +
				"Alternatively, disable the 'use available only' constraint to get suggestions for any meals.")
	}

	start := s.today()
	if cmd.StartDate != nil {
		start = dateOnly(*cmd.StartDate)
	}
	end := start.AddDate(0, 0, cmd.Days-1)

	past, err := s.meals.FindRecentMeals(ctx, cmd.HouseholdID,
		start.AddDate(0, 0, -pastMealsWindowDays), start.AddDate(0, 0, -1), pastMealsLimit)
	if err != nil {
		return nil, apperrors.Wrap(err, "loading recent meals")
	}

	prompt := buildMealPlanPrompt(cmd.Days, cmd.MealsPerDay, available, past,
		cmd.DietaryPreferences, cmd.PreferredMealTypes, cmd.UseAvailableOnly)
	raw, err := s.invokeModel(ctx, prompt, mealPlanTemperature, s.planModel())
	if err != nil {
		return nil, err
	}

	payload, err := extractJSON(raw)
	if err != nil {
		s.logger.Warn("unparsable meal plan reply",
			zap.String("household_id", cmd.HouseholdID.String()),
			zap.String("raw_reply", raw))
		return nil, err
	}
	body, ok := payload["meal_plan"]
	if !ok {
		return nil, apperrors.NewBadRequestError(
			"The AI couldn't generate a valid meal plan. This might be due to:\n" +
				"• Too many conflicting dietary preferences\n" +
				"• Not enough available ingredients for the constraints\n" +
				"• Service temporary unavailability\n\n" +
				"Please try again with:\n" +
				"• Fewer dietary restrictions\n" +
				"• Fewer days in the plan\n" +
				"• Disable 'use available only' if enabled")
	}
	var items []mealPlanEntryPayload
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("malformed meal plan: %v", err))
	}

	entries, err := s.catalog.FindIngredientsByHousehold(ctx, cmd.HouseholdID)
	if err != nil {
		return nil, apperrors.Wrap(err, "loading household catalog")
	}

	plan := &planning.MealPlan{
		HouseholdID:    cmd.HouseholdID,
		StartDate:      start,
		EndDate:        end,
		TotalDays:      cmd.Days,
		AvailableCount: len(available),
	}
	for _, item := range items {
		mealType, err := catalog.ParseMealType(item.MealType)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown meal type %q", item.MealType))
		}
		var matched []uuid.UUID
		for _, name := range item.IngredientsUsed {
			if id, _ := s.matcher.MatchIngredientAny(name, entries); id != nil {
				matched = append(matched, *id)
			}
		}
		entry := planning.MealPlanEntry{
			Day:              int(item.Day),
			Date:             start.AddDate(0, 0, int(item.Day)-1),
			MealType:         mealType,
			Name:             item.MealName,
			Description:      item.Description,
			IngredientsUsed:  item.IngredientsUsed,
			AdditionalNeeded: item.AdditionalIngredientsNeeded,
			PrepTimeMinutes:  int(item.EstimatedPrepTimeMinutes),
			Calories:         int(item.EstimatedCalories),
			MatchedIDs:       matched,
			RequiresShopping: len(item.AdditionalIngredientsNeeded) > 0,
		}
		if err := entry.Validate(cmd.Days); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if entry.RequiresShopping {
			plan.ShoppingNeededMeals++
		} else {
			plan.FullyStockedMeals++
		}
		plan.Entries = append(plan.Entries, entry)
	}
	plan.TotalMeals = len(plan.Entries)

	s.logger.Info("meal plan generated",
		zap.String("household_id", cmd.HouseholdID.String()),
		zap.Int("days", cmd.Days),
		zap.Int("total_meals", plan.TotalMeals),
		zap.Int("requiring_shopping", plan.ShoppingNeededMeals))
	return plan, nil
}

// buildGeneratedIngredient parses one suggested ingredient and matches it to
// the catalog. Field coercion is parse-or-fail: an out-of-vocabulary unit or
// category rejects the whole generation rather than defaulting silently.
// Quantities must be positive except under unmeasured units, which carry
// zero naturally.
func (s *Service) buildGeneratedIngredient(item ingredientPayload, entries []catalog.Ingredient) (planning.GeneratedIngredient, error) {
	if strings.TrimSpace(item.Name) == "" {
		return planning.GeneratedIngredient{}, apperrors.NewValidationError("generated ingredient has no name")
	}
	unit, err := catalog.ParseUnit(item.Unit)
	if err != nil {
		return planning.GeneratedIngredient{}, apperrors.NewValidationError(fmt.Sprintf("unknown unit %q for ingredient %q", item.Unit, item.Name))
	}
	category, err := catalog.ParseCategory(item.Category)
	if err != nil {
		return planning.GeneratedIngredient{}, apperrors.NewValidationError(fmt.Sprintf("unknown category %q for ingredient %q", item.Category, item.Name))
	}
	if item.Quantity < 0 || (item.Quantity == 0 && !unit.Unmeasured()) {
		return planning.GeneratedIngredient{}, apperrors.NewValidationError(fmt.Sprintf("non-positive quantity for ingredient %q", item.Name))
	}

	ing := planning.GeneratedIngredient{
		Name:     item.Name,
		Quantity: float64(item.Quantity),
		Unit:     unit,
		Category: category,
		Notes:    item.Notes,
	}
	id, confidence := s.matcher.MatchIngredient(item.Name, category, entries)
	ing.SetMatch(id, confidence)
	return ing, nil
}

// invokeModel performs one bounded model call, with an optional read-through
// response cache in front of it.
func (s *Service) invokeModel(ctx context.Context, prompt string, temperature float64, model string) (string, error) {
	// Ollama talks to a local daemon and needs no credentials; every other
	// provider requires a configured key.
	if s.cfg.AI.Provider != "ollama" {
		if key := strings.TrimSpace(s.cfg.AI.APIKey); key == "" || key == "your_api_key_here" {
			return "", apperrors.NewGenerationMisconfigError(fmt.Errorf("api key not configured"))
		}
	}
	if model == "" {
		model = s.cfg.AI.Model
	}

	var cacheKey string
	if s.cfg.AI.EnableCache && s.cache != nil {
		sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%.2f|%s", model, temperature, prompt)))
		cacheKey = "ai:reply:" + hex.EncodeToString(sum[:])
		if data, err := s.cache.Get(ctx, cacheKey); err == nil && len(data) > 0 {
			s.logger.Debug("model reply served from cache", zap.String("model", model))
			return string(data), nil
		}
	}

	callCtx := ctx
	if s.cfg.AI.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.AI.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	reply, err := s.gen.Generate(callCtx, prompt, outbound.GenerateOptions{
		Model:       model,
		Temperature: temperature,
		MaxTokens:   s.cfg.AI.MaxTokens,
	})
	if err != nil {
		s.logger.Warn("model call failed", zap.String("model", model), zap.Error(err))
		return "", classifyGenerationError(err)
	}
	if strings.TrimSpace(reply) == "" {
		return "", apperrors.NewInternalError("AI service returned empty response")
	}

	if cacheKey != "" {
		if err := s.cache.Set(ctx, cacheKey, []byte(reply), s.cfg.AI.CacheTTL); err != nil {
			s.logger.Debug("reply cache write failed", zap.Error(err))
		}
	}
	return reply, nil
}

func (s *Service) requireMember(ctx context.Context, householdID, userID uuid.UUID) error {
	ok, err := s.households.IsMember(ctx, householdID, userID)
	if err != nil {
		return apperrors.Wrap(err, "membership lookup failed")
	}
	if !ok {
		return apperrors.NewHouseholdAccessError(householdID.String())
	}
	return nil
}

func (s *Service) planModel() string {
	if s.cfg.AI.PlanModel != "" {
		return s.cfg.AI.PlanModel
	}
	return s.cfg.AI.Model
}

func (s *Service) today() time.Time {
	return dateOnly(s.now())
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// unmarshalObject reassembles an extracted JSON object into a typed payload.
func unmarshalObject(payload map[string]json.RawMessage, dst interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return apperrors.Wrap(err, "reassembling extracted payload")
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return apperrors.NewValidationError(fmt.Sprintf("malformed generation payload: %v", err))
	}
	return nil
}
