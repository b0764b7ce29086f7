package repository

import (
	"context"
	"time"

	"referral-engine/internal/infra"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OutboxWriteQueries interface {
	CreateOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOutboxEventParams) error
	ClaimQueuedOutboxEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimQueuedOutboxEventsParams) ([]sqlc.OutboxEvents, error)
	MarkOutboxEventPublished(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkOutboxEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventFailedParams) error
}

type OutboxEvent struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Key      string
	Payload  []byte
	Attempts int32
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, kind, topic, key string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateOutboxEventParams{
		Kind:     kind,
		Topic:    topic,
		EventKey: key,
		Payload:  payload,
		RunAt:    pgconv.TimeToPgtype(runAt),
	}

	err := r.queries.CreateOutboxEvent(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox event", err)
	}

	return nil
}

// Claim locks up to limit due events; the locks hold until tx ends.
func (r *OutboxRepository) Claim(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]OutboxEvent, error) {
	rows, err := r.queries.ClaimQueuedOutboxEvents(ctx, tx, sqlc.ClaimQueuedOutboxEventsParams{
		Now: pgconv.TimeToPgtype(now),
		Lim: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox events", err)
	}

	events := make([]OutboxEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, OutboxEvent{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Key:      row.EventKey,
			Payload:  row.Payload,
			Attempts: row.Attempts,
		})
	}
	return events, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.MarkOutboxEventPublished(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event published", err)
	}
	return nil
}

// MarkFailed schedules a retry at nextRunAt, or parks the event once maxAttempts is reached.
func (r *OutboxRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, cause string, maxAttempts int32, nextRunAt time.Time) error {
	params := sqlc.MarkOutboxEventFailedParams{
		LastError:   pgconv.OptionalStringToPgtype(cause),
		MaxAttempts: maxAttempts,
		NextRunAt:   pgconv.TimeToPgtype(nextRunAt),
		ID:          id,
	}
	if err := r.queries.MarkOutboxEventFailed(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event failed", err)
	}
	return nil
}
