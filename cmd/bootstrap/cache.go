package bootstrap

import (
	"context"
	"log/slog"

	"referral-engine/internal/infra/cache"
	"referral-engine/internal/pkg/config"
	"referral-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCounterCache,
	),
)

// NewCounterCache falls back to a no-op cache when REDIS_URL is unset.
// Stats are then always read from Postgres.
func NewCounterCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.CounterCache, error) {
	if cfg.Redis.URL == "" {
		logger.Info("Counter cache disabled", "reason", "REDIS_URL not set")
		return cache.NoopCounterCache{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout*5)
	defer cancel()

	client, cleanup, err := cache.Connect(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return cache.NewRedisCounterCache(client, cfg.Redis.KeySpace, cfg.Redis.KeyTTL), nil
}
