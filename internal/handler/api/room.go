package api

import (
	"net/http"

	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	q        queries.HotelQueries
	currency string
}

func NewRoomHandler(q queries.HotelQueries, cfg config.Config) *RoomHandler {
	return &RoomHandler{
		q:        q,
		currency: cfg.Hotel.Currency,
	}
}

// @Summary List rooms
// @Description List every room in insertion order with its booking state
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	views, err := h.q.ListRooms(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.render(c, views)
}

// @Summary List available rooms
// @Description List rooms that are not booked
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms/available [get]
func (h *RoomHandler) Available(c *gin.Context) {
	views, err := h.q.AvailableRooms(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.render(c, views)
}

func (h *RoomHandler) render(c *gin.Context, views []queries.RoomView) {
	res, err := resdto.FromRoomViews(views, h.currency)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
