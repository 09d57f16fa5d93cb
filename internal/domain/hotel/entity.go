package hotel

import (
	"errors"
	"time"

	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomAlreadyBooked   = errors.New("room is already booked")
	ErrNoActiveReservation = errors.New("no active reservation for room")
)

type Services struct {
	Clock           clock.Clock
	PriceCalculator room.PriceCalculator
}

// Hotel owns the room inventory and the active reservations.
// Every reservation points at a booked room in the inventory and every
// booked room has exactly one reservation. Not safe for concurrent use.
type Hotel struct {
	name         string
	services     *Services
	rooms        []*room.Room
	reservations []Reservation
}

func NewHotel(name string, services *Services) *Hotel {
	return &Hotel{
		name:     name,
		services: services,
	}
}

func (h *Hotel) Name() string { return h.name }

// AddRoom appends without a duplicate check; lookups return the first match.
func (h *Hotel) AddRoom(r *room.Room) {
	h.rooms = append(h.rooms, r)
}

func (h *Hotel) HasRoom(roomID string) bool {
	return h.findRoom(roomID) != nil
}

func (h *Hotel) Rooms() []room.Snapshot {
	out := make([]room.Snapshot, 0, len(h.rooms))
	for _, r := range h.rooms {
		out = append(out, r.Snapshot())
	}
	return out
}

func (h *Hotel) AvailableRooms() []room.Snapshot {
	out := make([]room.Snapshot, 0, len(h.rooms))
	for _, r := range h.rooms {
		if !r.IsBooked() {
			out = append(out, r.Snapshot())
		}
	}
	return out
}

// Booking is the outcome of a successful BookRoom.
type Booking struct {
	Reservation Reservation
	Price       room.Breakdown
}

func (h *Hotel) BookRoom(roomID string, guest user.User, nights int) (*Booking, error) {
	n, err := room.NewNights(nights)
	if err != nil {
		return nil, err
	}

	r := h.findRoom(roomID)
	if r == nil {
		return nil, ErrRoomNotFound
	}
	if r.IsBooked() {
		return nil, ErrRoomAlreadyBooked
	}

	r.Book(guest)
	price := r.CalculatePrice(h.services.PriceCalculator, n)

	res := Reservation{
		id:        uuid.New(),
		guest:     guest,
		room:      r,
		nights:    n,
		createdAt: h.services.Clock.Now(),
	}
	h.reservations = append(h.reservations, res)

	return &Booking{Reservation: res, Price: price}, nil
}

// CancelReservation frees the room and drops its reservation, returning
// the removed entry.
func (h *Hotel) CancelReservation(roomID string) (Reservation, error) {
	for i, res := range h.reservations {
		if res.room.ID() != roomID {
			continue
		}
		res.room.CancelBooking()
		h.reservations = append(h.reservations[:i:i], h.reservations[i+1:]...)
		return res, nil
	}
	return Reservation{}, ErrNoActiveReservation
}

func (h *Hotel) Reservations() []Reservation {
	out := make([]Reservation, len(h.reservations))
	copy(out, h.reservations)
	return out
}

func (h *Hotel) PriceOf(res Reservation) room.Breakdown {
	return res.room.CalculatePrice(h.services.PriceCalculator, res.nights)
}

// Revenue is recomputed from the live reservations on every call.
func (h *Hotel) Revenue() money.Money {
	total := money.Zero()
	for _, res := range h.reservations {
		total = total.Add(h.PriceOf(res).Total)
	}
	return total
}

// AverageRoomPrice is the mean nightly rate over every room, booked or not.
func (h *Hotel) AverageRoomPrice() money.Money {
	prices := make([]money.Money, 0, len(h.rooms))
	for _, r := range h.rooms {
		prices = append(prices, r.PricePerNight())
	}
	return money.Average(prices)
}

func (h *Hotel) findRoom(roomID string) *room.Room {
	for _, r := range h.rooms {
		if r.ID() == roomID {
			return r
		}
	}
	return nil
}

type Reservation struct {
	id        uuid.UUID
	guest     user.User
	room      *room.Room
	nights    room.Nights
	createdAt time.Time
}

func (r Reservation) ID() uuid.UUID        { return r.id }
func (r Reservation) Guest() user.User     { return r.guest }
func (r Reservation) Room() room.Snapshot  { return r.room.Snapshot() }
func (r Reservation) RoomID() string       { return r.room.ID() }
func (r Reservation) Nights() room.Nights  { return r.nights }
func (r Reservation) CreatedAt() time.Time { return r.createdAt }
