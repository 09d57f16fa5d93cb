package api

import (
	"net/http"

	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/handler/validation"
	"hotel-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps usecase markers to HTTP statuses.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No active reservation for room", nil)
	case errs.Is(err, errs.ErrRoomAlreadyBooked):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room is already booked", nil)
	case errs.Is(err, errs.ErrInvalidInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func abortWithBindError(c *gin.Context, err error) {
	var detail any
	if fields := validation.FieldErrors(err); len(fields) > 0 {
		detail = fields
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", detail)
}
