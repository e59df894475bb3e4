package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{"identical", "garlic", "garlic", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "garlic", "", 0.0},
		{"no overlap", "abc", "xyz", 0.0},
		{"partial", "garlic cloves", "garlic", 2.0 * 6.0 / 19.0},
		{"transposed words", "chicken breast", "breast chicken", 2.0 * 7.0 / 28.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilaritySymmetricRange(t *testing.T) {
	pairs := [][2]string{
		{"tomato", "tomatoes"},
		{"olive oil", "oil"},
		{"red onion", "onion"},
	}
	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		assert.InDelta(t, ab, ba, 1e-9)
		assert.GreaterOrEqual(t, ab, 0.0)
		assert.LessOrEqual(t, ab, 1.0)
	}
}

func TestSimilarityCloseVariants(t *testing.T) {
	// Minor spelling variants should clear the matching threshold.
	assert.Greater(t, Similarity("tomato", "tomatos"), 0.85)
	assert.Greater(t, Similarity("zucchini", "zuchini"), 0.85)
	// Different ingredients that share a word should not.
	assert.Less(t, Similarity("garlic cloves", "garlic"), 0.85)
}
