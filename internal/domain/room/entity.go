package room

import (
	"strings"

	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/user"
)

// Room is a bookable unit. A room is booked exactly when it holds a guest,
// so IsBooked and BookedBy cannot disagree.
type Room struct {
	id            string
	roomType      Type
	pricePerNight money.Money
	bookedBy      *user.User
}

func NewRoom(id, roomType string, pricePerNight money.Money) (*Room, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyRoomID
	}

	t, err := NewType(roomType)
	if err != nil {
		return nil, err
	}

	if pricePerNight.IsNegative() {
		return nil, ErrNegativePrice
	}
	if pricePerNight.Cents() > MaxPricePerNightCents {
		return nil, ErrPriceTooHigh
	}

	return &Room{
		id:            id,
		roomType:      t,
		pricePerNight: pricePerNight,
	}, nil
}

func (r *Room) CalculatePrice(calc PriceCalculator, nights Nights) Breakdown {
	return calc.Calculate(r.pricePerNight, nights)
}

// Book does not check availability; the hotel guards that.
func (r *Room) Book(guest user.User) {
	r.bookedBy = &guest
}

func (r *Room) CancelBooking() {
	r.bookedBy = nil
}

func (r *Room) IsBooked() bool {
	return r.bookedBy != nil
}

func (r *Room) BookedBy() (user.User, bool) {
	if r.bookedBy == nil {
		return user.User{}, false
	}
	return *r.bookedBy, true
}

func (r *Room) ID() string                 { return r.id }
func (r *Room) Type() Type                 { return r.roomType }
func (r *Room) PricePerNight() money.Money { return r.pricePerNight }

// Snapshot is a detached copy for read paths.
type Snapshot struct {
	ID            string
	Type          Type
	PricePerNight money.Money
	IsBooked      bool
	BookedBy      *user.User
}

func (r *Room) Snapshot() Snapshot {
	s := Snapshot{
		ID:            r.id,
		Type:          r.roomType,
		PricePerNight: r.pricePerNight,
		IsBooked:      r.IsBooked(),
	}
	if guest, ok := r.BookedBy(); ok {
		s.BookedBy = &guest
	}
	return s
}
