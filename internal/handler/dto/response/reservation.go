package response

import (
	"time"

	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ReservationID uuid.UUID              `json:"reservation_id"`
	RoomID        string                 `json:"room_id"`
	RoomType      string                 `json:"room_type"`
	PricePerNight Amount                 `json:"price_per_night"`
	Nights        int                    `json:"nights"`
	Guest         GuestResponse          `json:"guest"`
	Price         PriceBreakdownResponse `json:"price"`
	CreatedAt     time.Time              `json:"created_at"`
}

func FromBookingResult(r *commands.BookingResult, currency string) *BookingResponse {
	return &BookingResponse{
		ReservationID: r.ReservationID,
		RoomID:        r.RoomID,
		RoomType:      r.RoomType,
		PricePerNight: NewAmount(r.PricePerNight.Cents(), currency),
		Nights:        r.Nights,
		Guest:         FromGuest(r.Guest),
		Price: PriceBreakdownResponse{
			Base:     NewAmount(r.Price.Base.Cents(), currency),
			Discount: NewAmount(r.Price.Discount.Cents(), currency),
			Tax:      NewAmount(r.Price.Tax.Cents(), currency),
			Total:    NewAmount(r.Price.Total.Cents(), currency),
		},
		CreatedAt: r.CreatedAt,
	}
}

type CancellationResponse struct {
	ReservationID uuid.UUID     `json:"reservation_id"`
	RoomID        string        `json:"room_id"`
	Nights        int           `json:"nights"`
	Guest         GuestResponse `json:"guest"`
	CancelledAt   time.Time     `json:"cancelled_at"`
}

func FromCancellationResult(r *commands.CancellationResult) *CancellationResponse {
	return &CancellationResponse{
		ReservationID: r.ReservationID,
		RoomID:        r.RoomID,
		Nights:        r.Nights,
		Guest:         FromGuest(r.Guest),
		CancelledAt:   r.CancelledAt,
	}
}

type ReservationResponse struct {
	ID            uuid.UUID              `json:"id"`
	RoomID        string                 `json:"room_id"`
	RoomType      string                 `json:"room_type"`
	PricePerNight Amount                 `json:"price_per_night"`
	Nights        int                    `json:"nights"`
	Guest         GuestResponse          `json:"guest"`
	Price         PriceBreakdownResponse `json:"price"`
	CreatedAt     time.Time              `json:"created_at"`
}

func FromReservationViews(views []queries.ReservationView, currency string) ([]*ReservationResponse, error) {
	res := make([]*ReservationResponse, 0, len(views))
	for _, v := range views {
		var r ReservationResponse
		if err := copier.Copy(&r, &v); err != nil {
			return nil, err
		}
		r.Guest = GuestResponse(v.Guest)
		r.PricePerNight = NewAmount(v.PricePerNightCents, currency)
		r.Price = PriceBreakdownResponse{
			Base:     NewAmount(v.BaseCents, currency),
			Discount: NewAmount(v.DiscountCents, currency),
			Tax:      NewAmount(v.TaxCents, currency),
			Total:    NewAmount(v.TotalCents, currency),
		}
		res = append(res, &r)
	}
	return res, nil
}
