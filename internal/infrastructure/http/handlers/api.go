// Package handlers provides HTTP handlers for the JSON API
package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "github.com/platewise/v1/pkg/errors"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps an error onto the API error envelope. AppErrors carry
// their own status code; anything else is a 500.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := http.StatusInternalServerError
	var payload interface{} = map[string]string{
		"code":    string(apperrors.CodeInternal),
		"message": "An unexpected error occurred",
	}

	if appErr, ok := err.(*apperrors.AppError); ok {
		status = appErr.StatusCode()
		payload = apperrors.ToErrorResponse(appErr, "")
	} else {
		logger.Error("unclassified handler error", zap.Error(err))
	}

	writeJSON(w, logger, status, APIResponse{
		Success: false,
		Error:   payload,
	})
}
