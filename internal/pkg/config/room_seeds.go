package config

import (
	"math"
	"strconv"
	"strings"

	"hotel-reservation/internal/pkg/errs"
)

// RoomSeed is one entry of the initial inventory.
type RoomSeed struct {
	ID                 string
	Type               string
	PricePerNightCents int64
}

// RoomSeeds decodes "id:type:price" entries separated by commas,
// e.g. "101:Single:100,102:Double:150.50".
type RoomSeeds []RoomSeed

func (s *RoomSeeds) Decode(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		*s = nil
		return nil
	}

	entries := strings.Split(value, ",")
	seeds := make(RoomSeeds, 0, len(entries))
	for _, entry := range entries {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) != 3 {
			return errs.Newf("invalid room seed %q: expected id:type:price", entry)
		}

		id := strings.TrimSpace(parts[0])
		roomType := strings.TrimSpace(parts[1])
		if id == "" || roomType == "" {
			return errs.Newf("invalid room seed %q: id and type are required", entry)
		}

		cents, err := parsePriceCents(parts[2])
		if err != nil {
			return errs.Wrapf(err, "invalid room seed %q", entry)
		}

		seeds = append(seeds, RoomSeed{ID: id, Type: roomType, PricePerNightCents: cents})
	}

	*s = seeds
	return nil
}

func parsePriceCents(raw string) (int64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errs.Wrap(err, "price is not a number")
	}
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, errs.New("price must be a non-negative number")
	}
	// float64(math.MaxInt64) is 2^63, the first cent value int64 cannot hold
	if price*100 >= math.MaxInt64 {
		return 0, errs.Newf("price %g is too large", price)
	}
	return int64(math.Round(price * 100)), nil
}
