package bootstrap

import (
	"context"
	"log/slog"

	"referral-engine/internal/infra/events"
	"referral-engine/internal/infra/outbox"
	"referral-engine/internal/pkg/clock"
	"referral-engine/internal/pkg/config"
	"referral-engine/internal/usecase/shared"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
)

var OutboxModule = fx.Module("outbox",
	fx.Provide(
		NewScheduler,
		NewDispatcher,
	),
	fx.Invoke(scheduleDispatcher),
)

func NewScheduler(lc fx.Lifecycle, logger *slog.Logger) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("Stopping scheduler")
			return s.Shutdown()
		},
	})

	return s, nil
}

func NewDispatcher(uow shared.UnitOfWork, store outbox.Store, publisher events.Publisher, clk clock.Clock, cfg config.Config) *outbox.Dispatcher {
	return outbox.NewDispatcher(uow, store, publisher, clk, cfg.Outbox)
}

func scheduleDispatcher(s gocron.Scheduler, d *outbox.Dispatcher) error {
	_, err := d.Schedule(s)
	return err
}
