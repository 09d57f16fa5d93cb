package response

import (
	"hotel-reservation/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID            string         `json:"id"`
	Type          string         `json:"type"`
	PricePerNight Amount         `json:"price_per_night"`
	IsBooked      bool           `json:"is_booked"`
	BookedBy      *GuestResponse `json:"booked_by,omitempty"`
}

func FromRoomView(v queries.RoomView, currency string) (*RoomResponse, error) {
	var res RoomResponse
	if err := copier.Copy(&res, &v); err != nil {
		return nil, err
	}
	res.PricePerNight = NewAmount(v.PricePerNightCents, currency)
	res.BookedBy = nil
	if v.BookedBy != nil {
		g := GuestResponse(*v.BookedBy)
		res.BookedBy = &g
	}
	return &res, nil
}

func FromRoomViews(views []queries.RoomView, currency string) ([]*RoomResponse, error) {
	res := make([]*RoomResponse, 0, len(views))
	for _, v := range views {
		r, err := FromRoomView(v, currency)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}
