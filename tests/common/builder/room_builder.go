//go:build unit

package builder

import (
	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"
)

type RoomBuilder struct {
	ID                 string
	Type               string
	PricePerNightCents int64
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:                 "101",
		Type:               "Single",
		PricePerNightCents: 10000,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(b.ID, b.Type, money.FromCents(b.PricePerNightCents))
}

func (b *RoomBuilder) MustBuildDomain() *room.Room {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}

func (b *RoomBuilder) BuildAddRoomCommand() commands.AddRoomRequest {
	return commands.AddRoomRequest{
		ID:                 b.ID,
		Type:               b.Type,
		PricePerNightCents: b.PricePerNightCents,
	}
}

func (b *RoomBuilder) BuildView() queries.RoomView {
	return queries.RoomView{
		ID:                 b.ID,
		Type:               b.Type,
		PricePerNightCents: b.PricePerNightCents,
	}
}

// Fluent builder methods
func (b *RoomBuilder) WithID(id string) *RoomBuilder {
	b.ID = id
	return b
}

func (b *RoomBuilder) WithType(roomType string) *RoomBuilder {
	b.Type = roomType
	return b
}

func (b *RoomBuilder) WithPriceCents(cents int64) *RoomBuilder {
	b.PricePerNightCents = cents
	return b
}

// StandardRooms returns the three rooms the hotel opens with.
func StandardRooms() []*RoomBuilder {
	return []*RoomBuilder{
		NewRoomBuilder(),
		NewRoomBuilder().WithID("102").WithType("Double").WithPriceCents(15000),
		NewRoomBuilder().WithID("103").WithType("Suite").WithPriceCents(25000),
	}
}
