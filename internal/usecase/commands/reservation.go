package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/domain/session"
	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookRoomRequest struct {
	RoomID string
	Nights int
}

type BookingResult struct {
	ReservationID uuid.UUID
	RoomID        string
	RoomType      string
	PricePerNight money.Money
	Nights        int
	Guest         user.User
	Price         room.Breakdown
	CreatedAt     time.Time
}

type CancellationResult struct {
	ReservationID uuid.UUID
	RoomID        string
	Nights        int
	Guest         user.User
	CancelledAt   time.Time
}

type ReservationCommands interface {
	BookRoom(ctx context.Context, sess session.Session, req BookRoomRequest) (*BookingResult, error)
	CancelReservation(ctx context.Context, sess session.Session, roomID string) (*CancellationResult, error)
}

type reservationUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	clock     clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, publisher EventPublisher, clk clock.Clock) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
	}
}

func (uc *reservationUseCaseImpl) BookRoom(ctx context.Context, sess session.Session, req BookRoomRequest) (*BookingResult, error) {
	roomID := strings.TrimSpace(req.RoomID)

	var booking *hotel.Booking
	err := uc.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		b, derr := tx.Hotel().BookRoom(roomID, sess.Guest(), req.Nights)
		if derr != nil {
			return derr
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, classify(err, "book room")
	}

	res := booking.Reservation
	snap := res.Room()
	result := &BookingResult{
		ReservationID: res.ID(),
		RoomID:        snap.ID,
		RoomType:      snap.Type.String(),
		PricePerNight: snap.PricePerNight,
		Nights:        res.Nights().Int(),
		Guest:         res.Guest(),
		Price:         booking.Price,
		CreatedAt:     res.CreatedAt(),
	}

	slog.InfoContext(ctx, "room booked",
		"session_id", sess.ID().String(),
		"reservation_id", result.ReservationID.String(),
		"room_id", result.RoomID,
		"nights", result.Nights,
		"total_cents", result.Price.Total.Cents())

	uc.publish(ctx, ReservationEvent{
		Kind:          EventReservationConfirmed,
		ReservationID: result.ReservationID,
		SessionID:     sess.ID(),
		RoomID:        result.RoomID,
		RoomType:      result.RoomType,
		GuestName:     result.Guest.Name(),
		GuestEmail:    result.Guest.Email().Value(),
		Nights:        result.Nights,
		TotalCents:    result.Price.Total.Cents(),
		OccurredAt:    result.CreatedAt,
	})

	return result, nil
}

// CancelReservation has no ownership check: any session may cancel any room.
func (uc *reservationUseCaseImpl) CancelReservation(ctx context.Context, sess session.Session, roomID string) (*CancellationResult, error) {
	roomID = strings.TrimSpace(roomID)

	var (
		cancelled hotel.Reservation
		price     room.Breakdown
	)
	err := uc.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		res, derr := tx.Hotel().CancelReservation(roomID)
		if derr != nil {
			return derr
		}
		cancelled = res
		price = tx.Hotel().PriceOf(res)
		return nil
	})
	if err != nil {
		return nil, classify(err, "cancel reservation")
	}

	result := &CancellationResult{
		ReservationID: cancelled.ID(),
		RoomID:        cancelled.RoomID(),
		Nights:        cancelled.Nights().Int(),
		Guest:         cancelled.Guest(),
		CancelledAt:   uc.clock.Now(),
	}

	slog.InfoContext(ctx, "reservation cancelled",
		"session_id", sess.ID().String(),
		"reservation_id", result.ReservationID.String(),
		"room_id", result.RoomID)

	uc.publish(ctx, ReservationEvent{
		Kind:          EventReservationCancelled,
		ReservationID: result.ReservationID,
		SessionID:     sess.ID(),
		RoomID:        result.RoomID,
		RoomType:      cancelled.Room().Type.String(),
		GuestName:     result.Guest.Name(),
		GuestEmail:    result.Guest.Email().Value(),
		Nights:        result.Nights,
		TotalCents:    price.Total.Cents(),
		OccurredAt:    result.CancelledAt,
	})

	return result, nil
}

// publish never fails the command; the state change has already been applied.
func (uc *reservationUseCaseImpl) publish(ctx context.Context, event ReservationEvent) {
	if err := uc.publisher.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish reservation event",
			"kind", string(event.Kind),
			"reservation_id", event.ReservationID.String(),
			"error", err.Error())
	}
}
