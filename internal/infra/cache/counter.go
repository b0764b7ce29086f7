package cache

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"referral-engine/internal/pkg/errs"
	"referral-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	fieldVisits      = "visits"
	fieldConversions = "conversions"
)

// incrIfPresent bumps a field only on a seeded hash and refreshes its TTL.
// Without a hash it advances the miss epoch so a pending seed is dropped.
var incrIfPresent = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
  redis.call("HINCRBY", KEYS[1], ARGV[1], 1)
  redis.call("PEXPIRE", KEYS[1], ARGV[2])
  return 1
end
redis.call("INCR", KEYS[2])
redis.call("PEXPIRE", KEYS[2], ARGV[2])
return 0
`)

// seedIfQuiet writes the hash only when it is still absent and no increment
// missed it since the caller read the epoch.
var seedIfQuiet = redis.NewScript(`
if tonumber(redis.call("GET", KEYS[2]) or "0") ~= tonumber(ARGV[1]) then
  return 0
end
if redis.call("EXISTS", KEYS[1]) == 1 then
  return 0
end
redis.call("HSET", KEYS[1], "visits", ARGV[2], "conversions", ARGV[3])
redis.call("PEXPIRE", KEYS[1], ARGV[4])
return 1
`)

// RedisCounterCache keeps per-assignment visit and conversion counts in a hash.
type RedisCounterCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedisCounterCache(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisCounterCache {
	return &RedisCounterCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// keys share a hash tag so both scripts stay on one cluster slot.
func (c *RedisCounterCache) keys(assignmentID uuid.UUID) []string {
	base := c.prefix + ":assignment:{" + assignmentID.String() + "}"
	return []string{base + ":counters", base + ":misses"}
}

func (c *RedisCounterCache) Get(ctx context.Context, assignmentID uuid.UUID) (shared.Counters, int64, bool) {
	keys := c.keys(assignmentID)
	var (
		hash  *redis.MapStringStringCmd
		epoch *redis.StringCmd
	)
	_, err := c.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		hash = p.HGetAll(ctx, keys[0])
		epoch = p.Get(ctx, keys[1])
		return nil
	})
	if err != nil && !errs.Is(err, redis.Nil) {
		slog.Warn("counter cache read failed", "assignment_id", assignmentID, "error", err.Error())
		return shared.Counters{}, 0, false
	}

	data := hash.Val()
	visits, okV := parseCount(data[fieldVisits])
	conversions, okC := parseCount(data[fieldConversions])
	if okV && okC {
		return shared.Counters{Visits: visits, Conversions: conversions}, 0, true
	}
	misses, _ := parseCount(epoch.Val())
	return shared.Counters{}, misses, false
}

func (c *RedisCounterCache) Seed(ctx context.Context, assignmentID uuid.UUID, epoch int64, counters shared.Counters) {
	seeded, err := seedIfQuiet.Run(ctx, c.client, c.keys(assignmentID),
		epoch, counters.Visits, counters.Conversions, c.ttl.Milliseconds()).Int()
	if err != nil {
		slog.Warn("counter cache seed failed", "assignment_id", assignmentID, "error", err.Error())
		return
	}
	if seeded == 0 {
		slog.Debug("counter cache seed skipped", "assignment_id", assignmentID, "epoch", epoch)
	}
}

func (c *RedisCounterCache) IncrVisits(ctx context.Context, assignmentID uuid.UUID) {
	c.incr(ctx, assignmentID, fieldVisits)
}

func (c *RedisCounterCache) IncrConversions(ctx context.Context, assignmentID uuid.UUID) {
	c.incr(ctx, assignmentID, fieldConversions)
}

func (c *RedisCounterCache) incr(ctx context.Context, assignmentID uuid.UUID, field string) {
	err := incrIfPresent.Run(ctx, c.client, c.keys(assignmentID), field, c.ttl.Milliseconds()).Err()
	if err != nil {
		slog.Warn("counter cache increment failed", "assignment_id", assignmentID, "field", field, "error", err.Error())
	}
}

func parseCount(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// NoopCounterCache is used when Redis is not configured; every read misses.
type NoopCounterCache struct{}

func (NoopCounterCache) Get(context.Context, uuid.UUID) (shared.Counters, int64, bool) {
	return shared.Counters{}, 0, false
}

func (NoopCounterCache) Seed(context.Context, uuid.UUID, int64, shared.Counters) {}

func (NoopCounterCache) IncrVisits(context.Context, uuid.UUID) {}

func (NoopCounterCache) IncrConversions(context.Context, uuid.UUID) {}
