package bootstrap

import (
	"hotel-reservation/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.UseCaseModule,
	SessionModule,
	NotifyModule,
	components.RepositoryModule,
	components.InventoryModule,
	components.HandlerModule,
)
