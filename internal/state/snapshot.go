package state

import (
	"encoding/json"
	"fmt"

	"mitrasafety/storefront/internal/domain"
)

const (
	DefaultCartKey  = "mitra-safety-cart"
	snapshotVersion = 1
)

// cartSnapshot is the persisted record. Only line items are stored; totals
// are always recomputed.
type cartSnapshot struct {
	Version int               `json:"version"`
	Items   []domain.LineItem `json:"items"`
}

func encodeSnapshot(items []domain.LineItem) ([]byte, error) {
	if items == nil {
		items = []domain.LineItem{}
	}
	data, err := json.Marshal(cartSnapshot{Version: snapshotVersion, Items: items})
	if err != nil {
		return nil, fmt.Errorf("failed to encode cart snapshot: %w", err)
	}
	return data, nil
}

func decodeSnapshot(data []byte) ([]domain.LineItem, error) {
	var snapshot cartSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode cart snapshot: %w", err)
	}
	if snapshot.Version > snapshotVersion {
		return nil, fmt.Errorf("unsupported cart snapshot version %d", snapshot.Version)
	}
	if snapshot.Items == nil {
		snapshot.Items = []domain.LineItem{}
	}
	return snapshot.Items, nil
}
