package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/platewise/v1/pkg/errors"
)

func TestExtractJSONDirect(t *testing.T) {
	payload, err := extractJSON(`{"ingredients": []}`)
	require.NoError(t, err)
	assert.Contains(t, payload, "ingredients")
}

func TestExtractJSONCodeFence(t *testing.T) {
	raw := "Sure! Here is the list:\n```json\n{\"ingredients\": [{\"name\": \"salt\"}]}\n```\nEnjoy!"
	payload, err := extractJSON(raw)
	require.NoError(t, err)
	assert.Contains(t, payload, "ingredients")

	// Fence without the json language tag works too.
	raw = "```\n{\"meal_plan\": []}\n```"
	payload, err = extractJSON(raw)
	require.NoError(t, err)
	assert.Contains(t, payload, "meal_plan")
}

func TestExtractJSONBraceScan(t *testing.T) {
	raw := `The plan you asked for: {"meal_plan": [{"day": 1}]} hope it helps`
	payload, err := extractJSON(raw)
	require.NoError(t, err)
	assert.Contains(t, payload, "meal_plan")
}

func TestExtractJSONFailure(t *testing.T) {
	for _, raw := range []string{
		"I'm sorry, I can't produce that.",
		"{broken json",
		"",
	} {
		_, err := extractJSON(raw)
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeUnparsableGeneration, apperrors.GetCode(err))
	}
}
