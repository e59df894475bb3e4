package planner

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/platewise/v1/pkg/errors"
)

func TestClassifyGenerationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected apperrors.ErrorCode
	}{
		{"invalid api key", errors.New("401: invalid API key provided"), apperrors.CodeGenerationMisconfig},
		{"rate limited", errors.New("429: rate limit exceeded"), apperrors.CodeGenerationBusy},
		{"quota exhausted", errors.New("quota exceeded for project"), apperrors.CodeGenerationBusy},
		{"timeout text", errors.New("request timeout after 30s"), apperrors.CodeBadRequest},
		{"deadline wrapped", fmt.Errorf("call failed: %w", context.DeadlineExceeded), apperrors.CodeBadRequest},
		{"unclassified", errors.New("connection reset by peer"), apperrors.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, apperrors.GetCode(classifyGenerationError(tt.err)))
		})
	}
}
