package components

import (
	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/infra/uow"
	"hotel-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewHotel,
		uow.NewMemoryUoW,
	),
)

// NewHotel creates the single in-process hotel; rooms are added by InventoryModule.
func NewHotel(cfg config.Config, services *hotel.Services) *hotel.Hotel {
	return hotel.NewHotel(cfg.Hotel.Name, services)
}
