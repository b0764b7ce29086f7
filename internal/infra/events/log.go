package events

import (
	"context"
	"log/slog"
)

// LogPublisher writes events to the structured log. Used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	p.logger.InfoContext(ctx, "event published",
		"topic", topic,
		"key", key,
		"payload", string(payload))
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
