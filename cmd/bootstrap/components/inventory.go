package components

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/commands"

	"go.uber.org/fx"
)

var InventoryModule = fx.Module("inventory",
	fx.Invoke(SeedInventory),
)

// SeedInventory adds the configured rooms before the server starts accepting requests.
func SeedInventory(lc fx.Lifecycle, cfg config.Config, rooms commands.RoomCommands, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			for _, seed := range cfg.Hotel.Rooms {
				_, err := rooms.AddRoom(ctx, commands.AddRoomRequest{
					ID:                 seed.ID,
					Type:               seed.Type,
					PricePerNightCents: seed.PricePerNightCents,
				})
				if err != nil {
					return errs.Wrapf(err, "seed room %s", seed.ID)
				}
			}
			logger.Info("客室在庫を登録しました", "hotel", cfg.Hotel.Name, "rooms", len(cfg.Hotel.Rooms))
			return nil
		},
	})
}
