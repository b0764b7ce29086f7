//go:build unit

package events_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"referral-engine/internal/infra/events"
	"referral-engine/internal/pkg/config"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &recordingWriter{}
	p := events.NewKafkaPublisherWithWriter(w, "referral")

	err := p.Publish(context.Background(), "conversions", "purchase-1", []byte(`{"ok":true}`))

	require.NoError(t, err)
	require.Len(t, w.messages, 1)
	assert.Equal(t, "referral.conversions", w.messages[0].Topic)
	assert.Equal(t, []byte("purchase-1"), w.messages[0].Key)
	assert.JSONEq(t, `{"ok":true}`, string(w.messages[0].Value))
	assert.False(t, w.messages[0].Time.IsZero())
}

func TestKafkaPublisher_PublishError(t *testing.T) {
	w := &recordingWriter{err: errors.New("leader not available")}
	p := events.NewKafkaPublisherWithWriter(w, "")

	err := p.Publish(context.Background(), "conversions", "k", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish to conversions")
	assert.Contains(t, err.Error(), "leader not available")
}

func TestKafkaPublisher_Close(t *testing.T) {
	w := &recordingWriter{}
	p := events.NewKafkaPublisherWithWriter(w, "referral")

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestNewKafkaPublisher_RequiresBrokers(t *testing.T) {
	_, err := events.NewKafkaPublisher(config.KafkaConfig{})

	assert.ErrorIs(t, err, events.ErrNoBrokers)
}

func TestLogPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	p := events.NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := p.Publish(context.Background(), "partnerships", "p-1", []byte(`{"status":"pending"}`))

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"topic":"partnerships"`)
	assert.Contains(t, buf.String(), `"key":"p-1"`)
}
