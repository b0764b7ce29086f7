package outbox

import (
	"context"
	"log/slog"
	"time"

	"referral-engine/internal/infra/events"
	"referral-engine/internal/infra/repository"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/pkg/clock"
	"referral-engine/internal/pkg/config"
	"referral-engine/internal/pkg/errs"
	"referral-engine/internal/usecase/shared"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

const maxRetryDelay = time.Hour

type Store interface {
	Claim(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]repository.OutboxEvent, error)
	MarkPublished(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, cause string, maxAttempts int32, nextRunAt time.Time) error
}

// Dispatcher drains the outbox table to a Publisher on a fixed interval.
type Dispatcher struct {
	uow       shared.UnitOfWork
	store     Store
	publisher events.Publisher
	clock     clock.Clock
	cfg       config.OutboxConfig
}

func NewDispatcher(uow shared.UnitOfWork, store Store, publisher events.Publisher, clk clock.Clock, cfg config.OutboxConfig) *Dispatcher {
	return &Dispatcher{
		uow:       uow,
		store:     store,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
	}
}

// Schedule registers the drain job. Runs never overlap.
func (d *Dispatcher) Schedule(s gocron.Scheduler) (gocron.Job, error) {
	job, err := s.NewJob(
		gocron.DurationJob(d.cfg.Interval),
		gocron.NewTask(func(ctx context.Context) {
			if _, err := d.RunOnce(ctx); err != nil {
				slog.Error("outbox dispatch failed", "error", err.Error())
			}
		}),
		gocron.WithName("outbox-dispatcher"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, errs.Wrap(err, "schedule outbox dispatcher")
	}
	return job, nil
}

// RunOnce claims one batch and returns how many events were published.
func (d *Dispatcher) RunOnce(ctx context.Context) (int, error) {
	published := 0
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0
		now := d.clock.Now()

		batch, err := d.store.Claim(ctx, tx.DB(), now, d.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, ev := range batch {
			if perr := d.publisher.Publish(ctx, ev.Topic, ev.Key, ev.Payload); perr != nil {
				slog.Warn("outbox publish failed",
					"event_id", ev.ID,
					"kind", ev.Kind,
					"attempt", ev.Attempts+1,
					"error", perr.Error())
				next := now.Add(retryDelay(d.cfg.Interval, ev.Attempts))
				if err := d.store.MarkFailed(ctx, tx.DB(), ev.ID, perr.Error(), d.cfg.MaxAttempts, next); err != nil {
					return err
				}
				continue
			}
			if err := d.store.MarkPublished(ctx, tx.DB(), ev.ID); err != nil {
				return err
			}
			published++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if published > 0 {
		slog.Debug("outbox batch dispatched", "published", published)
	}
	return published, nil
}

func retryDelay(base time.Duration, attempts int32) time.Duration {
	if attempts < 0 {
		attempts = 0
	}
	delay := base
	for i := int32(0); i < attempts; i++ {
		delay *= 2
		if delay >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return delay
}
