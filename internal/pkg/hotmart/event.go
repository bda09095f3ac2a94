package hotmart

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/membergate/membergate/app/models"
)

// Hotmart delivers at least three payload nestings for the same purchase
// event (top-level, purchase.*, data.*). Each field is resolved by probing an
// ordered list of extraction strategies and taking the first non-empty match.
type extractor func(payload map[string]any) string

var emailExtractors = []extractor{
	pathString("buyer", "email"),
	pathString("purchase", "buyer", "email"),
	pathString("data", "buyer", "email"),
}

var statusExtractors = []extractor{
	pathString("purchase", "status"),
	pathString("data", "status"),
	pathString("status"),
}

var productExtractors = []extractor{
	pathString("product", "id"),
	pathString("data", "product", "id"),
	pathString("purchase", "product", "id"),
}

// ParseEvent normalizes a raw webhook body into a purchase event. It never
// fails on unknown shapes: unextractable fields stay empty and the caller
// decides whether the event is actionable.
func ParseEvent(body []byte) models.PurchaseEvent {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return models.PurchaseEvent{}
	}
	return models.PurchaseEvent{
		PurchaserEmail: strings.ToLower(firstMatch(payload, emailExtractors)),
		Status:         strings.ToLower(firstMatch(payload, statusExtractors)),
		ProductID:      firstMatch(payload, productExtractors),
	}
}

func firstMatch(payload map[string]any, extractors []extractor) string {
	for _, extract := range extractors {
		if v := extract(payload); v != "" {
			return v
		}
	}
	return ""
}

// pathString builds a strategy that walks nested objects along path and
// stringifies the leaf value. Hotmart sends product IDs as JSON numbers.
func pathString(path ...string) extractor {
	return func(payload map[string]any) string {
		var current any = payload
		for _, key := range path {
			obj, ok := current.(map[string]any)
			if !ok {
				return ""
			}
			current, ok = obj[key]
			if !ok {
				return ""
			}
		}
		return stringify(current)
	}
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}
