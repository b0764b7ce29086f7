package cache

import (
	"context"
	"strings"

	"referral-engine/internal/pkg/config"
	"referral-engine/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Connect accepts either a redis:// URL or a bare host:port.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	var opt *redis.Options
	if strings.HasPrefix(cfg.URL, "redis://") || strings.HasPrefix(cfg.URL, "rediss://") {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, nil, errs.Wrap(err, "parse redis url")
		}
		opt = parsed
	} else {
		opt = &redis.Options{Addr: cfg.URL}
	}
	opt.DialTimeout = cfg.Timeout
	opt.ReadTimeout = cfg.Timeout
	opt.WriteTimeout = cfg.Timeout

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrap(err, "ping redis")
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}
