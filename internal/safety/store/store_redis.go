package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"trailtail/internal/safety"
)

const controlsKeyPrefix = "ptc:family:"

// RedisControlsStore shares parental controls across instances through
// Redis. Controls are stored as JSON under one key per family.
type RedisControlsStore struct {
	client *redis.Client
}

// NewRedisControlsStore constructs a Redis-backed controls store.
func NewRedisControlsStore(client *redis.Client) *RedisControlsStore {
	return &RedisControlsStore{client: client}
}

func (s *RedisControlsStore) Get(ctx context.Context, familyID string) (*safety.Controls, error) {
	raw, err := s.client.Get(ctx, controlsKeyPrefix+familyID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get controls for %s: %w", familyID, err)
	}

	var c safety.Controls
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode controls for %s: %w", familyID, err)
	}
	return &c, nil
}

func (s *RedisControlsStore) Put(ctx context.Context, familyID string, controls safety.Controls) error {
	raw, err := json.Marshal(controls)
	if err != nil {
		return fmt.Errorf("encode controls for %s: %w", familyID, err)
	}
	if err := s.client.Set(ctx, controlsKeyPrefix+familyID, raw, 0).Err(); err != nil {
		return fmt.Errorf("put controls for %s: %w", familyID, err)
	}
	return nil
}
