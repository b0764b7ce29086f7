//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"referral-engine/internal/infra/cache"
	"referral-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:         "127.0.0.1:1",
		DialTimeout:  50 * time.Millisecond,
		ReadTimeout:  50 * time.Millisecond,
		WriteTimeout: 50 * time.Millisecond,
		MaxRetries:   -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisCounterCache_UnavailableServerMisses(t *testing.T) {
	ctx := context.Background()
	c := cache.NewRedisCounterCache(unreachableClient(t), "referral", time.Hour)
	id := uuid.New()

	assert.NotPanics(t, func() {
		c.Seed(ctx, id, 0, shared.Counters{Visits: 3, Conversions: 1})
		c.IncrVisits(ctx, id)
		c.IncrConversions(ctx, id)
	})

	counters, epoch, ok := c.Get(ctx, id)
	assert.False(t, ok)
	assert.Zero(t, epoch)
	assert.Equal(t, shared.Counters{}, counters)
}

func TestNoopCounterCache(t *testing.T) {
	ctx := context.Background()
	var c shared.CounterCache = cache.NoopCounterCache{}
	id := uuid.New()

	c.Seed(ctx, id, 0, shared.Counters{Visits: 1})
	c.IncrVisits(ctx, id)

	_, _, ok := c.Get(ctx, id)
	assert.False(t, ok)
}
