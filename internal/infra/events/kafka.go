package events

import (
	"context"
	"time"

	"referral-engine/internal/pkg/config"
	"referral-engine/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

var ErrNoBrokers = errs.New("kafka publisher requires at least one broker")

// MessageWriter is the subset of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer      MessageWriter
	topicPrefix string
	now         func() time.Time
}

func NewKafkaPublisher(cfg config.KafkaConfig) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		RequiredAcks:           kafka.RequireAll,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	return NewKafkaPublisherWithWriter(writer, cfg.TopicPrefix), nil
}

func NewKafkaPublisherWithWriter(writer MessageWriter, topicPrefix string) *KafkaPublisher {
	return &KafkaPublisher{
		writer:      writer,
		topicPrefix: topicPrefix,
		now:         time.Now,
	}
}

// Publish keys messages by aggregate id so one aggregate's events stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.Topic(topic),
		Key:   []byte(key),
		Value: payload,
		Time:  p.now().UTC(),
	})
	if err != nil {
		return errs.Wrapf(err, "publish to %s", p.Topic(topic))
	}
	return nil
}

func (p *KafkaPublisher) Topic(topic string) string {
	if p.topicPrefix == "" {
		return topic
	}
	return p.topicPrefix + "." + topic
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
