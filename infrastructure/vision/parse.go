package vision

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMissingMatchedIDs is returned when the model reply parses as JSON but
// carries no matchedIds array.
var ErrMissingMatchedIDs = errors.New("model output missing matchedIds")

// ParseMatchResponse extracts the matched photo IDs from a raw model reply.
// Replies wrapped in markdown code fences are unwrapped before parsing.
func ParseMatchResponse(raw string) ([]string, error) {
	cleaned := stripCodeFence(raw)

	var payload struct {
		MatchedIDs *[]string `json:"matchedIds"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("malformed model output: %w", err)
	}
	if payload.MatchedIDs == nil {
		return nil, ErrMissingMatchedIDs
	}
	return *payload.MatchedIDs, nil
}

// stripCodeFence removes a surrounding ```json ... ``` block if present.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
