//go:build unit

package builder

import (
	"time"

	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ReservationID uuid.UUID
	Room          *RoomBuilder
	Guest         *UserBuilder
	Nights        int
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ReservationID: uuid.New(),
		Room:          NewRoomBuilder(),
		Guest:         NewUserBuilder(),
		Nights:        5,
		CreatedAt:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) WithRoom(r *RoomBuilder) *BookingBuilder {
	b.Room = r
	return b
}

func (b *BookingBuilder) WithNights(n int) *BookingBuilder {
	b.Nights = n
	return b
}

func (b *BookingBuilder) breakdown() room.Breakdown {
	n, err := room.NewNights(b.Nights)
	if err != nil {
		panic(err)
	}
	return room.NewDefaultPriceCalculator().Calculate(money.FromCents(b.Room.PricePerNightCents), n)
}

func (b *BookingBuilder) BuildBookRoomDTO() map[string]any {
	return map[string]any{
		"room_id": b.Room.ID,
		"nights":  b.Nights,
	}
}

func (b *BookingBuilder) BuildBookRoomCommand() commands.BookRoomRequest {
	return commands.BookRoomRequest{
		RoomID: b.Room.ID,
		Nights: b.Nights,
	}
}

func (b *BookingBuilder) BuildResult() *commands.BookingResult {
	return &commands.BookingResult{
		ReservationID: b.ReservationID,
		RoomID:        b.Room.ID,
		RoomType:      b.Room.Type,
		PricePerNight: money.FromCents(b.Room.PricePerNightCents),
		Nights:        b.Nights,
		Guest:         b.Guest.MustBuildDomain(),
		Price:         b.breakdown(),
		CreatedAt:     b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCancellation(cancelledAt time.Time) *commands.CancellationResult {
	return &commands.CancellationResult{
		ReservationID: b.ReservationID,
		RoomID:        b.Room.ID,
		Nights:        b.Nights,
		Guest:         b.Guest.MustBuildDomain(),
		CancelledAt:   cancelledAt,
	}
}

func (b *BookingBuilder) BuildView() queries.ReservationView {
	price := b.breakdown()
	return queries.ReservationView{
		ID:                 b.ReservationID,
		RoomID:             b.Room.ID,
		RoomType:           b.Room.Type,
		PricePerNightCents: b.Room.PricePerNightCents,
		Nights:             b.Nights,
		Guest:              b.Guest.BuildGuestView(),
		BaseCents:          price.Base.Cents(),
		DiscountCents:      price.Discount.Cents(),
		TaxCents:           price.Tax.Cents(),
		TotalCents:         price.Total.Cents(),
		CreatedAt:          b.CreatedAt,
	}
}
