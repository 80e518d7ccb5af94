package store

import (
	"context"

	model "auction-house/internal/models"
)

// Snapshot carries the three named auction records as one unit: the catalog,
// the bid ledger, and the credential map.
type Snapshot struct {
	Items []model.Item      `json:"items"`
	Bids  []model.Bid       `json:"bids"`
	Users map[string]string `json:"users"`
}

// Store persists auction state as whole snapshots: Load once at startup,
// SaveAll after every mutating engine operation.
type Store interface {
	// Load reads the persisted snapshot. The boolean is false when no
	// catalog record has been persisted yet.
	Load(ctx context.Context) (Snapshot, bool, error)
	// SaveAll overwrites all three records with the snapshot contents.
	SaveAll(ctx context.Context, snap Snapshot) error
}
