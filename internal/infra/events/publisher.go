package events

import (
	"context"
	"encoding/json"
	"time"

	domorder "orders-service/internal/domain/order"
	"orders-service/internal/pkg/config"
	"orders-service/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the slice of kafka.Writer this publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEventPublisher serializes order events and hands them to Kafka.
// Delivery semantics (retries, ordering across partitions) belong to
// the transport configuration, not to this publisher.
type OrderEventPublisher struct {
	writer messageWriter
}

func NewOrderEventPublisher(cfg config.KafkaConfig) *OrderEventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.OrderCreatedTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
	return &OrderEventPublisher{writer: writer}
}

func newWithWriter(writer messageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer}
}

func (p *OrderEventPublisher) PublishOrderCreated(ctx context.Context, event domorder.CreatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal order created event")
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: data,
		Time:  time.Now(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to write order created event")
	}

	return nil
}

func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
