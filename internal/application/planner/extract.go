package planner

import (
	"encoding/json"
	"regexp"
	"strings"

	apperrors "github.com/platewise/v1/pkg/errors"
)

var codeFencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// extractJSON pulls a JSON object out of a model reply that may wrap it in
// prose or a markdown code fence. Three passes, cheapest first:
//
//  1. parse the whole reply
//  2. parse the first fenced ```json block
//  3. parse from the first '{' to the last '}'
//
// All three failing means the reply is unusable; the caller gets a
// bad-request error and the raw reply stays in the logs only.
func extractJSON(raw string) (map[string]json.RawMessage, error) {
	var payload map[string]json.RawMessage

	if err := json.Unmarshal([]byte(raw), &payload); err == nil {
		return payload, nil
	}

	if m := codeFencePattern.FindStringSubmatch(raw); m != nil {
		if err := json.Unmarshal([]byte(m[1]), &payload); err == nil {
			return payload, nil
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err == nil {
			return payload, nil
		}
	}

	return nil, apperrors.NewUnparsableGenerationError()
}
