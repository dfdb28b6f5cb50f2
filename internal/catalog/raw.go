package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RawProduct is a product record as received from the API. List fields may
// arrive either as native JSON arrays or as JSON-encoded strings, so they are
// kept undecoded until normalization.
type RawProduct struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Price               int64           `json:"price"`
	OriginalPrice       *int64          `json:"originalPrice"`
	Category            string          `json:"category"`
	ImageURL            string          `json:"imageUrl"`
	Images              json.RawMessage `json:"images"`
	InStock             bool            `json:"inStock"`
	Badge               *string         `json:"badge"`
	Specifications      json.RawMessage `json:"specifications"`
	ProtectionLevels    json.RawMessage `json:"protectionLevels"`
	ComplianceStandards json.RawMessage `json:"complianceStandards"`
	HazardClasses       json.RawMessage `json:"hazardClasses"`
	OptimizedMedia      json.RawMessage `json:"optimizedMedia"`
}

// decodeList decodes a field that holds either a JSON array of T or a string
// containing one. Absent, null and empty-string values decode to an empty list.
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	out := make([]T, 0)

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return out, nil
	}

	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return make([]T, 0), fmt.Errorf("failed to decode array: %w", err)
		}
	case '"':
		var encoded string
		if err := json.Unmarshal(trimmed, &encoded); err != nil {
			return make([]T, 0), fmt.Errorf("failed to decode string: %w", err)
		}
		encoded = string(bytes.TrimSpace([]byte(encoded)))
		if encoded == "" {
			return out, nil
		}
		if err := json.Unmarshal([]byte(encoded), &out); err != nil {
			return make([]T, 0), fmt.Errorf("failed to decode embedded JSON %q: %w", encoded, err)
		}
	default:
		return out, fmt.Errorf("unexpected JSON value %s", truncate(trimmed, 40))
	}

	if out == nil {
		out = make([]T, 0)
	}
	return out, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
