package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/platefull/mealplanner/internal/ports/outbound"
)

// MalformedOutputError reports that the model's response text could not be
// turned into a meal record. It is distinct from transport errors so tests
// can target extraction logic without network mocking.
type MalformedOutputError struct {
	Reason string
	Cause  error
}

func (e *MalformedOutputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed model output: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("malformed model output: %s", e.Reason)
}

func (e *MalformedOutputError) Unwrap() error { return e.Cause }

var fencedJSON = regexp.MustCompile("(?s)```json(.*?)```")

// ParseMealRecord extracts a meal record from raw model output. Hosted
// backends wrap the object in a fenced code block; local backends return
// the JSON document directly. The fence wins when present.
func ParseMealRecord(raw string) (outbound.MealRecord, error) {
	payload := strings.TrimSpace(raw)
	if payload == "" {
		return outbound.MealRecord{}, &MalformedOutputError{Reason: "empty response"}
	}

	if m := fencedJSON.FindStringSubmatch(payload); m != nil {
		payload = strings.TrimSpace(m[1])
	} else if strings.Contains(payload, "```") {
		return outbound.MealRecord{}, &MalformedOutputError{Reason: "fenced block is not json"}
	}

	var record outbound.MealRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return outbound.MealRecord{}, &MalformedOutputError{Reason: "invalid json", Cause: err}
	}

	if strings.TrimSpace(record.Name) == "" {
		return outbound.MealRecord{}, &MalformedOutputError{Reason: "missing meal name"}
	}

	return record, nil
}
