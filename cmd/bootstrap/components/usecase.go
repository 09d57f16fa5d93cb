package components

import (
	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/usecase"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewSystemClock,
	fx.Annotate(
		NewPriceCalculator,
		fx.As(new(room.PriceCalculator)),
	),
	func(clock clock.Clock, calc room.PriceCalculator) *hotel.Services {
		return &hotel.Services{
			Clock:           clock,
			PriceCalculator: calc,
		}
	},
)

func NewPriceCalculator(cfg config.Config) *room.DefaultPriceCalculator {
	return &room.DefaultPriceCalculator{
		DiscountMinNights: cfg.Pricing.DiscountMinNights,
		DiscountPercent:   cfg.Pricing.DiscountPercent,
		TaxPercent:        cfg.Pricing.TaxPercent,
	}
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSessionCommands,
		commands.NewRoomCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewHotelQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
