package events

import "context"

// Publisher delivers one outbox event to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
	Close() error
}
