package components

import (
	"orders-service/internal/infra/events"
	"orders-service/internal/infra/readstore"
	"orders-service/internal/infra/repository"
	"orders-service/internal/usecase/commands"
	"orders-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repository.NewProductRepository,
			fx.As(new(commands.ProductReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			func(p *events.OrderEventPublisher) *events.OrderEventPublisher { return p },
			fx.As(new(commands.EventPublisher)),
		),
	),
)
