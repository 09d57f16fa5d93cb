package request

import (
	"strings"

	"hotel-reservation/internal/usecase/commands"
)

type BookRoomRequest struct {
	RoomID string `json:"room_id" binding:"required,notblank"`
	Nights int    `json:"nights" binding:"required,min=1,max=365"`
}

func (r BookRoomRequest) ToCommand() commands.BookRoomRequest {
	return commands.BookRoomRequest{
		RoomID: strings.TrimSpace(r.RoomID),
		Nights: r.Nights,
	}
}
