package bootstrap

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/infra/notify"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewEventPublisher,
	),
)

type closablePublisher interface {
	commands.EventPublisher
	Close() error
}

// NewEventPublisher falls back to a no-op publisher when the broker is not
// configured or cannot be reached.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) commands.EventPublisher {
	var publisher closablePublisher = notify.NewNoopPublisher(logger)

	if cfg.Notify.Enabled() {
		p, err := notify.Dial(cfg.Notify, logger)
		if err != nil {
			logger.Warn("イベント通知を無効化します", "error", err.Error())
		} else {
			logger.Info("イベント通知を有効化しました", "queue", cfg.Notify.Queue)
			publisher = p
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher
}
