package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"trailtail/internal/narratives"
)

const historyKeyPrefix = "narrative:history:"

// RedisHistoryStore shares narrative history across instances through Redis.
// Entries live in one list per user, oldest first.
type RedisHistoryStore struct {
	client *redis.Client
}

// NewRedisHistoryStore constructs a Redis-backed history store.
func NewRedisHistoryStore(client *redis.Client) *RedisHistoryStore {
	return &RedisHistoryStore{client: client}
}

func (s *RedisHistoryStore) Record(ctx context.Context, userID string, entry narratives.HistoryEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode history entry for %s: %w", userID, err)
	}
	if err := s.client.RPush(ctx, historyKeyPrefix+userID, raw).Err(); err != nil {
		return fmt.Errorf("record history for %s: %w", userID, err)
	}
	return nil
}

func (s *RedisHistoryStore) List(ctx context.Context, userID string, limit int) ([]narratives.HistoryEntry, error) {
	start := int64(0)
	if limit > 0 {
		start = int64(-limit)
	}
	raws, err := s.client.LRange(ctx, historyKeyPrefix+userID, start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list history for %s: %w", userID, err)
	}

	entries := make([]narratives.HistoryEntry, 0, len(raws))
	for _, raw := range raws {
		var e narratives.HistoryEntry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("decode history entry for %s: %w", userID, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
