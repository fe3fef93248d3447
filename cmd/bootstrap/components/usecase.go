package components

import (
	domorder "orders-service/internal/domain/order"
	"orders-service/internal/pkg/clock"
	"orders-service/internal/pkg/config"
	"orders-service/internal/usecase"
	"orders-service/internal/usecase/commands"
	"orders-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clock clock.Clock, cfg config.Config) *domorder.Factory {
		return domorder.NewFactory(clock, cfg.Order.ExpirationWindow)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
