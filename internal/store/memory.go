package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	model "auction-house/internal/models"
)

// MemoryStore is an in-memory Store for tests and standalone runs. It keeps
// the marshaled form of each record so loading exercises the same JSON
// round-trip as the Redis-backed store.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

// Load decodes the stored snapshot, if one has been saved.
func (s *MemoryStore) Load(ctx context.Context) (Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	itemsJSON, ok := s.records[keyItems]
	if !ok {
		return Snapshot{}, false, nil
	}

	var snap Snapshot
	if err := json.Unmarshal(itemsJSON, &snap.Items); err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to decode %s: %w", keyItems, err)
	}
	if raw, ok := s.records[keyBids]; ok {
		if err := json.Unmarshal(raw, &snap.Bids); err != nil {
			return Snapshot{}, false, fmt.Errorf("failed to decode %s: %w", keyBids, err)
		}
	}
	if raw, ok := s.records[keyUsers]; ok {
		if err := json.Unmarshal(raw, &snap.Users); err != nil {
			return Snapshot{}, false, fmt.Errorf("failed to decode %s: %w", keyUsers, err)
		}
	}
	if snap.Bids == nil {
		snap.Bids = []model.Bid{}
	}
	if snap.Users == nil {
		snap.Users = map[string]string{}
	}
	return snap, true, nil
}

// SaveAll overwrites all three records under one lock.
func (s *MemoryStore) SaveAll(ctx context.Context, snap Snapshot) error {
	itemsJSON, err := json.Marshal(snap.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal items: %w", err)
	}
	bidsJSON, err := json.Marshal(snap.Bids)
	if err != nil {
		return fmt.Errorf("failed to marshal bids: %w", err)
	}
	usersJSON, err := json.Marshal(snap.Users)
	if err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[keyItems] = itemsJSON
	s.records[keyBids] = bidsJSON
	s.records[keyUsers] = usersJSON
	return nil
}
