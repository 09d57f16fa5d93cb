package api

import (
	"net/http"

	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds     commands.ReservationCommands
	q        queries.HotelQueries
	currency string
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.HotelQueries, cfg config.Config) *ReservationHandler {
	return &ReservationHandler{
		cmds:     cmds,
		q:        q,
		currency: cfg.Hotel.Currency,
	}
}

// @Summary Book room
// @Description Book an available room for the session guest
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookRoomRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Book(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrSessionInvalid, "Session required", nil)
		return
	}

	var req reqdto.BookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.cmds.BookRoom(c.Request.Context(), sess, req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingResult(result, h.currency))
}

// @Summary List reservations
// @Description List active reservations with their current price
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	views, err := h.q.Reservations(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromReservationViews(views, h.currency)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Cancel reservation
// @Description Cancel the active reservation on a room
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Success 200 {object} resdto.CancellationResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{roomId} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrSessionInvalid, "Session required", nil)
		return
	}

	result, err := h.cmds.CancelReservation(c.Request.Context(), sess, c.Param("roomId"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancellationResult(result))
}
