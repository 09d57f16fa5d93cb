package commands

import (
	"errors"

	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/pkg/errs"
)

var validationErrors = []error{
	room.ErrInvalidNights,
	room.ErrEmptyRoomID,
	room.ErrEmptyRoomType,
	room.ErrRoomTypeTooLong,
	room.ErrNegativePrice,
	room.ErrPriceTooHigh,
	money.ErrNegativeAmount,
	user.ErrEmptyName,
	user.ErrNameTooLong,
	user.ErrInvalidEmail,
	user.ErrPhoneTooLong,
}

// classify marks domain errors with the usecase-level sentinel the
// handlers switch on. Unknown errors are wrapped with msg.
func classify(err error, msg string) error {
	switch {
	case errors.Is(err, hotel.ErrRoomNotFound):
		return errs.Mark(err, errs.ErrRoomNotFound)
	case errors.Is(err, hotel.ErrRoomAlreadyBooked):
		return errs.Mark(err, errs.ErrRoomAlreadyBooked)
	case errors.Is(err, hotel.ErrNoActiveReservation):
		return errs.Mark(err, errs.ErrReservationNotFound)
	}
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return errs.Mark(err, errs.ErrInvalidInput)
		}
	}
	return errs.Wrap(err, msg)
}
