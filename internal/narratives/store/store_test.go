package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailtail/internal/narratives"
	"trailtail/pkg/domain"
)

// The two implementations must agree on the contract: entries come back
// oldest first, List honors the limit by keeping the most recent entries,
// and users never bleed into each other.
func runHistoryStoreContract(t *testing.T, s narratives.HistoryStore) {
	ctx := context.Background()

	entries, err := s.List(ctx, "user_empty", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)

	for i := 0; i < 5; i++ {
		entry := narratives.HistoryEntry{
			RouteID:   fmt.Sprintf("route_easy_%d", i),
			Mode:      domain.ModeHistory,
			Timestamp: time.Date(2026, 8, 30, 10+i, 0, 0, 0, time.UTC),
			Preview:   "The Old Bridge",
		}
		require.NoError(t, s.Record(ctx, "user_42", entry))
	}
	require.NoError(t, s.Record(ctx, "user_other", narratives.HistoryEntry{
		RouteID:   "route_hard_24680",
		Mode:      domain.ModeFantasy,
		Timestamp: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
		Preview:   "The Dragon's Cave",
	}))

	entries, err = s.List(ctx, "user_42", 10)
	require.NoError(t, err)
	require.Len(t, entries, 5)
	assert.Equal(t, "route_easy_0", entries[0].RouteID)
	assert.Equal(t, "route_easy_4", entries[4].RouteID)

	entries, err = s.List(ctx, "user_42", 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "route_easy_3", entries[0].RouteID)
	assert.Equal(t, "route_easy_4", entries[1].RouteID)

	entries, err = s.List(ctx, "user_other", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "route_hard_24680", entries[0].RouteID)
}

func TestInMemoryHistoryStore(t *testing.T) {
	runHistoryStoreContract(t, NewInMemoryHistoryStore())
}

func TestRedisHistoryStore(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	runHistoryStoreContract(t, NewRedisHistoryStore(client))
}
