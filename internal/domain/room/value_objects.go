package room

import (
	"errors"
	"strings"
)

var (
	ErrEmptyRoomID     = errors.New("room id cannot be empty")
	ErrEmptyRoomType   = errors.New("room type cannot be empty")
	ErrRoomTypeTooLong = errors.New("room type is too long (max 50 characters)")
	ErrNegativePrice   = errors.New("price per night cannot be negative")
	ErrPriceTooHigh    = errors.New("price per night exceeds the supported maximum")
	ErrInvalidNights   = errors.New("nights must be between 1 and 365")
)

const (
	MaxRoomTypeLength = 50
	// MaxNights and MaxPricePerNightCents keep every breakdown inside int64 cents.
	MaxNights             = 365
	MaxPricePerNightCents = 10_000_000_000
)

// Type is open-ended free text such as "Single" or "Suite".
type Type string

func NewType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyRoomType
	}
	if len(s) > MaxRoomTypeLength {
		return "", ErrRoomTypeTooLong
	}
	return Type(s), nil
}

func (t Type) String() string {
	return string(t)
}

// Nights is the length of a stay, within 1..MaxNights once constructed.
type Nights int

func NewNights(n int) (Nights, error) {
	if n <= 0 || n > MaxNights {
		return 0, ErrInvalidNights
	}
	return Nights(n), nil
}

func (n Nights) Int() int {
	return int(n)
}
