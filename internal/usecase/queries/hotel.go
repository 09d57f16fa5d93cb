package queries

import (
	"context"

	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/usecase/shared"
)

type HotelQueries interface {
	ListRooms(ctx context.Context) ([]RoomView, error)
	AvailableRooms(ctx context.Context) ([]RoomView, error)
	Reservations(ctx context.Context) ([]ReservationView, error)
	Revenue(ctx context.Context) (money.Money, error)
	AverageRoomPrice(ctx context.Context) (money.Money, error)
	Summary(ctx context.Context) (*HotelSummary, error)
}

type hotelQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewHotelQueries(uow shared.UnitOfWork) HotelQueries {
	return &hotelQueriesImpl{uow: uow}
}

func (q *hotelQueriesImpl) ListRooms(ctx context.Context) ([]RoomView, error) {
	var out []RoomView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, view shared.View) error {
		out = toRoomViews(view.Hotel().Rooms())
		return nil
	})
	return out, err
}

func (q *hotelQueriesImpl) AvailableRooms(ctx context.Context) ([]RoomView, error) {
	var out []RoomView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, view shared.View) error {
		out = toRoomViews(view.Hotel().AvailableRooms())
		return nil
	})
	return out, err
}

func (q *hotelQueriesImpl) Reservations(ctx context.Context) ([]ReservationView, error) {
	var out []ReservationView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, view shared.View) error {
		h := view.Hotel()
		reservations := h.Reservations()
		out = make([]ReservationView, 0, len(reservations))
		for _, res := range reservations {
			out = append(out, toReservationView(res, h.PriceOf(res)))
		}
		return nil
	})
	return out, err
}

func (q *hotelQueriesImpl) Revenue(ctx context.Context) (money.Money, error) {
	var revenue money.Money
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, view shared.View) error {
		revenue = view.Hotel().Revenue()
		return nil
	})
	return revenue, err
}

func (q *hotelQueriesImpl) AverageRoomPrice(ctx context.Context) (money.Money, error) {
	var avg money.Money
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, view shared.View) error {
		avg = view.Hotel().AverageRoomPrice()
		return nil
	})
	return avg, err
}

func (q *hotelQueriesImpl) Summary(ctx context.Context) (*HotelSummary, error) {
	var summary *HotelSummary
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, view shared.View) error {
		h := view.Hotel()
		summary = &HotelSummary{
			Name:                  h.Name(),
			TotalRooms:            len(h.Rooms()),
			AvailableRooms:        len(h.AvailableRooms()),
			ActiveReservations:    len(h.Reservations()),
			RevenueCents:          h.Revenue().Cents(),
			AverageRoomPriceCents: h.AverageRoomPrice().Cents(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}
