package queries

import (
	"time"

	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/domain/user"

	"github.com/google/uuid"
)

// GuestView represents the identity a room is booked under
type GuestView struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// RoomView represents read-optimized room data
type RoomView struct {
	ID                 string     `json:"id"`
	Type               string     `json:"type"`
	PricePerNightCents int64      `json:"price_per_night_cents"`
	IsBooked           bool       `json:"is_booked"`
	BookedBy           *GuestView `json:"booked_by,omitempty"`
}

// ReservationView represents an active reservation with its current price
type ReservationView struct {
	ID                 uuid.UUID `json:"id"`
	RoomID             string    `json:"room_id"`
	RoomType           string    `json:"room_type"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	Nights             int       `json:"nights"`
	Guest              GuestView `json:"guest"`
	BaseCents          int64     `json:"base_cents"`
	DiscountCents      int64     `json:"discount_cents"`
	TaxCents           int64     `json:"tax_cents"`
	TotalCents         int64     `json:"total_cents"`
	CreatedAt          time.Time `json:"created_at"`
}

// HotelSummary aggregates the figures shown on the report screen
type HotelSummary struct {
	Name                  string `json:"name"`
	TotalRooms            int    `json:"total_rooms"`
	AvailableRooms        int    `json:"available_rooms"`
	ActiveReservations    int    `json:"active_reservations"`
	RevenueCents          int64  `json:"revenue_cents"`
	AverageRoomPriceCents int64  `json:"average_room_price_cents"`
}

func toGuestView(u user.User) GuestView {
	return GuestView{
		Name:  u.Name(),
		Email: u.Email().Value(),
		Phone: u.Phone().Value(),
	}
}

func toRoomView(s room.Snapshot) RoomView {
	v := RoomView{
		ID:                 s.ID,
		Type:               s.Type.String(),
		PricePerNightCents: s.PricePerNight.Cents(),
		IsBooked:           s.IsBooked,
	}
	if s.BookedBy != nil {
		g := toGuestView(*s.BookedBy)
		v.BookedBy = &g
	}
	return v
}

func toRoomViews(snaps []room.Snapshot) []RoomView {
	out := make([]RoomView, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, toRoomView(s))
	}
	return out
}

func toReservationView(res hotel.Reservation, price room.Breakdown) ReservationView {
	snap := res.Room()
	return ReservationView{
		ID:                 res.ID(),
		RoomID:             snap.ID,
		RoomType:           snap.Type.String(),
		PricePerNightCents: snap.PricePerNight.Cents(),
		Nights:             res.Nights().Int(),
		Guest:              toGuestView(res.Guest()),
		BaseCents:          price.Base.Cents(),
		DiscountCents:      price.Discount.Cents(),
		TaxCents:           price.Tax.Cents(),
		TotalCents:         price.Total.Cents(),
		CreatedAt:          res.CreatedAt(),
	}
}
