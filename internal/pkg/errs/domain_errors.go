package errs

import "errors"

// Usecase-level markers. Handlers translate these into HTTP statuses.
var (
	// Room errors
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomAlreadyBooked = errors.New("room already booked")

	// Reservation errors
	ErrReservationNotFound = errors.New("no active reservation")

	// Session errors
	ErrSessionInvalid  = errors.New("session invalid")
	ErrTokenGeneration = errors.New("token generation failed")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)
