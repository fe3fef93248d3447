//go:build unit

package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	domorder "orders-service/internal/domain/order"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *capturingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *capturingWriter) Close() error {
	w.closed = true
	return nil
}

func sampleEvent() domorder.CreatedEvent {
	return domorder.CreatedEvent{
		OrderID:   uuid.New(),
		Status:    "created",
		UserID:    uuid.New(),
		ExpiresAt: time.Date(2025, 3, 14, 9, 45, 0, 0, time.UTC).Format(time.RFC3339),
		Product: domorder.CreatedEventProduct{
			ID:    uuid.New(),
			Price: 7500,
		},
	}
}

func TestPublishOrderCreated(t *testing.T) {
	t.Run("writes one message keyed by order id", func(t *testing.T) {
		writer := &capturingWriter{}
		publisher := newWithWriter(writer)
		event := sampleEvent()

		err := publisher.PublishOrderCreated(context.Background(), event)
		require.NoError(t, err)
		require.Len(t, writer.messages, 1)

		msg := writer.messages[0]
		assert.Equal(t, event.OrderID.String(), string(msg.Key))

		var decoded domorder.CreatedEvent
		require.NoError(t, json.Unmarshal(msg.Value, &decoded))
		assert.Equal(t, event, decoded)
	})

	t.Run("payload carries the published field names", func(t *testing.T) {
		writer := &capturingWriter{}
		publisher := newWithWriter(writer)

		err := publisher.PublishOrderCreated(context.Background(), sampleEvent())
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(writer.messages[0].Value, &raw))
		for _, key := range []string{"orderId", "status", "userId", "expiresAt", "product"} {
			assert.Contains(t, raw, key)
		}
		product, ok := raw["product"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, product, "id")
		assert.Contains(t, product, "price")
	})

	t.Run("write failure is reported", func(t *testing.T) {
		writer := &capturingWriter{err: errors.New("broker unavailable")}
		publisher := newWithWriter(writer)

		err := publisher.PublishOrderCreated(context.Background(), sampleEvent())
		assert.Error(t, err)
		assert.Empty(t, writer.messages)
	})

	t.Run("close shuts the writer", func(t *testing.T) {
		writer := &capturingWriter{}
		publisher := newWithWriter(writer)

		require.NoError(t, publisher.Close())
		assert.True(t, writer.closed)
	})
}
