package response

import (
	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/usecase/queries"
)

type RevenueResponse struct {
	Revenue Amount `json:"revenue"`
}

type AverageRoomPriceResponse struct {
	AverageRoomPrice Amount `json:"average_room_price"`
}

type SummaryResponse struct {
	Name               string `json:"name"`
	TotalRooms         int    `json:"total_rooms"`
	AvailableRooms     int    `json:"available_rooms"`
	ActiveReservations int    `json:"active_reservations"`
	Revenue            Amount `json:"revenue"`
	AverageRoomPrice   Amount `json:"average_room_price"`
}

func FromRevenue(m money.Money, currency string) *RevenueResponse {
	return &RevenueResponse{Revenue: NewAmount(m.Cents(), currency)}
}

func FromAverageRoomPrice(m money.Money, currency string) *AverageRoomPriceResponse {
	return &AverageRoomPriceResponse{AverageRoomPrice: NewAmount(m.Cents(), currency)}
}

func FromHotelSummary(s *queries.HotelSummary, currency string) *SummaryResponse {
	return &SummaryResponse{
		Name:               s.Name,
		TotalRooms:         s.TotalRooms,
		AvailableRooms:     s.AvailableRooms,
		ActiveReservations: s.ActiveReservations,
		Revenue:            NewAmount(s.RevenueCents, currency),
		AverageRoomPrice:   NewAmount(s.AverageRoomPriceCents, currency),
	}
}
