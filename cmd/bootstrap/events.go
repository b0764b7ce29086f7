package bootstrap

import (
	"context"
	"log/slog"

	"referral-engine/internal/infra/events"
	"referral-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewPublisher,
	),
)

// NewPublisher writes to Kafka when brokers are configured and to the log otherwise.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (events.Publisher, error) {
	var publisher events.Publisher
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("Kafka disabled, outbox events go to the log")
		publisher = events.NewLogPublisher(logger)
	} else {
		kp, err := events.NewKafkaPublisher(cfg.Kafka)
		if err != nil {
			return nil, err
		}
		publisher = kp
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
