//go:build e2e

package cache_test

import (
	"context"
	"testing"

	"referral-engine/internal/infra/cache"
	"referral-engine/internal/usecase/shared"
	"referral-engine/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CounterCacheE2ETestSuite struct {
	e2e.SharedSuite
	counters *cache.RedisCounterCache
}

func TestCounterCacheE2ESuite(t *testing.T) {
	suite.Run(t, new(CounterCacheE2ETestSuite))
}

func (s *CounterCacheE2ETestSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()

	client, cleanup, err := cache.Connect(context.Background(), s.Config.Redis)
	s.Require().NoError(err)
	s.T().Cleanup(cleanup)
	s.counters = cache.NewRedisCounterCache(client, s.Config.Redis.KeySpace, s.Config.Redis.KeyTTL)
}

func (s *CounterCacheE2ETestSuite) TestSeed() {
	ctx := context.Background()

	s.Run("increment between read and seed drops the stale seed", func() {
		id := uuid.New()

		_, epoch, ok := s.counters.Get(ctx, id)
		s.Require().False(ok)

		// a visit commits after the database read and misses the cache
		s.counters.IncrVisits(ctx, id)
		s.counters.Seed(ctx, id, epoch, shared.Counters{Visits: 5})

		_, next, ok := s.counters.Get(ctx, id)
		s.False(ok)
		s.Greater(next, epoch)

		s.counters.Seed(ctx, id, next, shared.Counters{Visits: 6})
		got, _, ok := s.counters.Get(ctx, id)
		s.Require().True(ok)
		s.Equal(shared.Counters{Visits: 6}, got)
	})

	s.Run("seeded counters follow increments and are not overwritten", func() {
		id := uuid.New()

		_, epoch, ok := s.counters.Get(ctx, id)
		s.Require().False(ok)
		s.counters.Seed(ctx, id, epoch, shared.Counters{Visits: 2, Conversions: 1})

		s.counters.IncrVisits(ctx, id)
		s.counters.IncrConversions(ctx, id)
		s.counters.Seed(ctx, id, epoch, shared.Counters{})

		got, _, ok := s.counters.Get(ctx, id)
		s.Require().True(ok)
		s.Equal(shared.Counters{Visits: 3, Conversions: 2}, got)
	})
}
