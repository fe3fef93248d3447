package bootstrap

import (
	"context"

	"orders-service/internal/infra/events"
	"orders-service/internal/pkg/config"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		NewOrderEventPublisher,
	),
)

func NewOrderEventPublisher(lc fx.Lifecycle, cfg config.Config) *events.OrderEventPublisher {
	publisher := events.NewOrderEventPublisher(cfg.Kafka)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher
}
