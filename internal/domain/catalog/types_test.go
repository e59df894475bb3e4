package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{"exact", "produce", CategoryProduce, false},
		{"mixed case", "Dairy", CategoryDairy, false},
		{"surrounding whitespace", "  meat  ", CategoryMeat, false},
		{"empty falls back to other", "", CategoryOther, false},
		{"unknown", "grains", "", true},
		{"unknown condiments", "condiments", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Unit
		wantErr bool
	}{
		{"weight", "gram", UnitGram, false},
		{"mixed case", "Cup", UnitCup, false},
		{"unmeasured", "to_taste", UnitToTaste, false},
		{"empty", "", "", true},
		{"unknown bottle", "bottle", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUnit(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownUnit)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMealType(t *testing.T) {
	got, err := ParseMealType("Dinner")
	require.NoError(t, err)
	assert.Equal(t, MealTypeDinner, got)

	_, err = ParseMealType("brunch")
	assert.ErrorIs(t, err, ErrUnknownMealType)
}

func TestDifficultyAndCuisineValid(t *testing.T) {
	assert.True(t, DifficultyMedium.Valid())
	assert.False(t, DifficultyLevel("expert").Valid())

	assert.True(t, CuisineMediterranean.Valid())
	assert.False(t, CuisineType("fusion").Valid())
}

func TestParseDifficulty(t *testing.T) {
	got, err := ParseDifficulty("Easy")
	require.NoError(t, err)
	assert.Equal(t, DifficultyEasy, got)

	got, err = ParseDifficulty("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseDifficulty("expert")
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
}

func TestParseCuisine(t *testing.T) {
	got, err := ParseCuisine("  Thai ")
	require.NoError(t, err)
	assert.Equal(t, CuisineThai, got)

	got, err = ParseCuisine("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseCuisine("fusion")
	assert.ErrorIs(t, err, ErrUnknownCuisine)
}

func TestUnitUnmeasured(t *testing.T) {
	assert.True(t, UnitToTaste.Unmeasured())
	assert.True(t, UnitAsNeeded.Unmeasured())
	assert.False(t, UnitGram.Unmeasured())
}
