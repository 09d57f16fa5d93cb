package shared

import (
	"context"

	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/room"
)

type UnitOfWork interface {
	// Within: exclusive access for write operations
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: shared access for consistent multi-read views
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, view View) error) error
}

type Tx interface {
	Hotel() *hotel.Hotel
}

type View interface {
	Hotel() HotelReader
}

// HotelReader is the read-only face of the hotel aggregate.
type HotelReader interface {
	Name() string
	Rooms() []room.Snapshot
	AvailableRooms() []room.Snapshot
	Reservations() []hotel.Reservation
	PriceOf(res hotel.Reservation) room.Breakdown
	Revenue() money.Money
	AverageRoomPrice() money.Money
}
