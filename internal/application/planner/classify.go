package planner

import (
	"context"
	"errors"
	"strings"

	apperrors "github.com/platewise/v1/pkg/errors"
)

// classifyGenerationError maps a raw provider error onto the caller-facing
// taxonomy by substring inspection. A single attempt is made per request;
// nothing here retries, the caller decides whether another call is worth it.
func classifyGenerationError(err error) *apperrors.AppError {
	if errors.Is(err, context.DeadlineExceeded) {
		return timeoutError()
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api") && strings.Contains(msg, "key"):
		return apperrors.NewGenerationMisconfigError(err)
	case strings.Contains(msg, "rate"), strings.Contains(msg, "limit"), strings.Contains(msg, "quota"):
		return apperrors.NewGenerationBusyError(err)
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline"):
		return timeoutError()
	default:
		return apperrors.NewInternalError("AI service error").WithCause(err)
	}
}

func timeoutError() *apperrors.AppError {
	return apperrors.NewBadRequestError("AI request timed out. Please try with a simpler request.")
}
