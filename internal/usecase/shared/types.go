package shared

import (
	"context"
	"time"

	"referral-engine/internal/domain/attribution"

	"github.com/google/uuid"
)

// Counters is the cached visit and conversion tally of one assignment.
type Counters struct {
	Visits      int64
	Conversions int64
}

// CounterCache holds per-assignment counters next to the database. Every method
// is best effort: callers fall back to the database when ok is false.
//
// A miss returns the epoch of increments that found no counters. Seed only
// writes when that epoch is unchanged, so counts read from the database are
// never stored once a newer event has slipped past the cache.
type CounterCache interface {
	Get(ctx context.Context, assignmentID uuid.UUID) (c Counters, epoch int64, ok bool)
	Seed(ctx context.Context, assignmentID uuid.UUID, epoch int64, c Counters)
	IncrVisits(ctx context.Context, assignmentID uuid.UUID)
	IncrConversions(ctx context.Context, assignmentID uuid.UUID)
}

// TokenCarrier stores the signed attribution token on the client.
type TokenCarrier interface {
	Read() (string, bool)
	Write(value string, maxAge time.Duration)
	Clear()
}

type TokenCodec interface {
	Encode(t attribution.Token) (string, error)
	Decode(value string) (attribution.Token, error)
}
