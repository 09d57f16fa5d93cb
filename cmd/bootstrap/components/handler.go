package components

import (
	"hotel-reservation/internal/handler"
	"hotel-reservation/internal/handler/api"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/handler/validation"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSessionHandler,
		api.NewRoomHandler,
		api.NewReservationHandler,
		api.NewReportHandler,
		middleware.NewSessionMiddleware,
		NewHandlers,
	),
	fx.Invoke(
		validation.RegisterBindingRules,
		handler.NewRouter,
	),
)

func NewHandlers(
	session *api.SessionHandler,
	room *api.RoomHandler,
	reservation *api.ReservationHandler,
	report *api.ReportHandler,
) handler.Handlers {
	return handler.Handlers{
		Session:     session,
		Room:        room,
		Reservation: reservation,
		Report:      report,
	}
}
