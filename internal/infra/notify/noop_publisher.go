package notify

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/usecase/commands"
)

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

func (p *NoopPublisher) Publish(ctx context.Context, event commands.ReservationEvent) error {
	p.logger.DebugContext(ctx, "reservation event dropped, publisher disabled",
		slog.String("kind", string(event.Kind)),
		slog.String("room_id", event.RoomID))
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}
