package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	model "auction-house/internal/models"
)

// Redis key per named record.
const (
	keyItems = "auction:items"
	keyBids  = "auction:bids"
	keyUsers = "auction:users"
)

// RedisStore persists auction snapshots in Redis, one JSON value per record.
type RedisStore struct {
	client *redis.Client
}

// NewRedisClient connects to Redis and verifies the connection with a ping.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// NewRedisStore creates a RedisStore on an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// Load reads the three records. A missing items key means no snapshot has
// been persisted yet; missing bids or users records load as empty.
func (s *RedisStore) Load(ctx context.Context) (Snapshot, bool, error) {
	raw, err := s.client.Get(ctx, keyItems).Result()
	if errors.Is(err, redis.Nil) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to read %s: %w", keyItems, err)
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap.Items); err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to decode %s: %w", keyItems, err)
	}
	if err := s.loadRecord(ctx, keyBids, &snap.Bids); err != nil {
		return Snapshot{}, false, err
	}
	if err := s.loadRecord(ctx, keyUsers, &snap.Users); err != nil {
		return Snapshot{}, false, err
	}
	if snap.Bids == nil {
		snap.Bids = []model.Bid{}
	}
	if snap.Users == nil {
		snap.Users = map[string]string{}
	}
	return snap, true, nil
}

// SaveAll overwrites all three records inside a single MULTI/EXEC pipeline so
// readers never observe a partially written snapshot.
func (s *RedisStore) SaveAll(ctx context.Context, snap Snapshot) error {
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

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, keyItems, itemsJSON, 0)
	pipe.Set(ctx, keyBids, bidsJSON, 0)
	pipe.Set(ctx, keyUsers, usersJSON, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save snapshot to redis: %w", err)
	}
	return nil
}

func (s *RedisStore) loadRecord(ctx context.Context, key string, dst any) error {
	raw, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}
