package planning

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/platewise/v1/internal/domain/catalog"
)

func TestSetMatchKeepsIsNewInvariant(t *testing.T) {
	var ing GeneratedIngredient

	id := uuid.New()
	ing.SetMatch(&id, 0.92)
	assert.False(t, ing.IsNew)
	assert.Equal(t, &id, ing.MatchedID)
	assert.Equal(t, 0.92, ing.Confidence)

	ing.SetMatch(nil, 0)
	assert.True(t, ing.IsNew)
	assert.Nil(t, ing.MatchedID)
	assert.Zero(t, ing.Confidence)
}

func TestMealPlanEntryValidate(t *testing.T) {
	valid := MealPlanEntry{
		Day:      2,
		MealType: catalog.MealTypeDinner,
		Name:     "Lentil soup",
	}

	tests := []struct {
		name    string
		mutate  func(*MealPlanEntry)
		wantErr error
	}{
		{"valid entry", func(e *MealPlanEntry) {}, nil},
		{"day below range", func(e *MealPlanEntry) { e.Day = 0 }, ErrDayOutOfRange},
		{"day above range", func(e *MealPlanEntry) { e.Day = 4 }, ErrDayOutOfRange},
		{"bad meal type", func(e *MealPlanEntry) { e.MealType = "brunch" }, catalog.ErrUnknownMealType},
		{"empty name", func(e *MealPlanEntry) { e.Name = "" }, ErrEmptyMealName},
		{
			"shopping flag not set",
			func(e *MealPlanEntry) { e.AdditionalNeeded = []string{"cumin"} },
			ErrShoppingFlagMismatch,
		},
		{
			"shopping flag set without needs",
			func(e *MealPlanEntry) { e.RequiresShopping = true },
			ErrShoppingFlagMismatch,
		},
		{
			"shopping flag consistent",
			func(e *MealPlanEntry) {
				e.AdditionalNeeded = []string{"cumin"}
				e.RequiresShopping = true
			},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := valid
			tt.mutate(&entry)

			err := entry.Validate(3)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
