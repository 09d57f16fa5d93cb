//go:build unit

package handler_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/handler"
	"hotel-reservation/internal/handler/api"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/handler/validation"
	"hotel-reservation/internal/infra/notify"
	"hotel-reservation/internal/infra/uow"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/usecase"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/tests/common/builder"
	"hotel-reservation/tests/common/httptest"
	"hotel-reservation/tests/common/sessiontest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type RouterTestSuite struct {
	suite.Suite
	router *gin.Engine
	cfg    config.Config
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupSuite() {
	s.Require().NoError(validation.RegisterBindingRules())
}

// SetupTest wires the same graph as the fx modules, with a fixed clock and no broker.
func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.cfg = config.NewTestConfig()

	clk := clock.NewFixedClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	services := &hotel.Services{
		Clock: clk,
		PriceCalculator: &room.DefaultPriceCalculator{
			DiscountMinNights: s.cfg.Pricing.DiscountMinNights,
			DiscountPercent:   s.cfg.Pricing.DiscountPercent,
			TaxPercent:        s.cfg.Pricing.TaxPercent,
		},
	}
	unit := uow.NewMemoryUoW(hotel.NewHotel(s.cfg.Hotel.Name, services))

	roomCmds := commands.NewRoomCommands(unit)
	for _, seed := range s.cfg.Hotel.Rooms {
		_, err := roomCmds.AddRoom(context.Background(), commands.AddRoomRequest{
			ID:                 seed.ID,
			Type:               seed.Type,
			PricePerNightCents: seed.PricePerNightCents,
		})
		s.Require().NoError(err)
	}

	jwtService := sessiontest.NewTokenHelper(s.cfg.Session, clk).Service(s.T())
	publisher := notify.NewNoopPublisher(slog.Default())
	q := queries.NewHotelQueries(unit)

	h := handler.Handlers{
		Session:     api.NewSessionHandler(commands.NewSessionCommands(jwtService, clk), s.cfg),
		Room:        api.NewRoomHandler(q, s.cfg),
		Reservation: api.NewReservationHandler(commands.NewReservationCommands(unit, publisher, clk), q, s.cfg),
		Report:      api.NewReportHandler(q, s.cfg),
	}

	s.router = gin.New()
	handler.NewRouter(s.router, s.cfg, middleware.NewLogger(s.cfg.Log), h,
		middleware.NewSessionMiddleware(usecase.NewTokenValidator(jwtService)))
}

func (s *RouterTestSuite) book(cookie *http.Cookie, roomID string, nights int) *resdto.BookingResponse {
	rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/reservations",
		map[string]any{"room_id": roomID, "nights": nights}, []*http.Cookie{cookie}, "")

	var response resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
	return &response
}

func (s *RouterTestSuite) TestHealth() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil, "")

	s.Equal(http.StatusOK, rec.Code)
	httptest.AssertHeaderPresent(s.T(), rec, "X-Request-ID")
}

func (s *RouterTestSuite) TestRequestIDIsEchoed() {
	req := map[string]string{"X-Request-ID": "req-123"}
	rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/health", nil, req)

	httptest.AssertHeaders(s.T(), rec, req)
}

func (s *RouterTestSuite) TestBookingLifecycle() {
	alice := sessiontest.StartSession(s.T(), s.router, builder.NewUserBuilder().BuildStartSessionRequestDTO())
	bob := sessiontest.StartSession(s.T(), s.router,
		builder.NewUserBuilder().WithName("Bob Lee").WithEmail("bob@example.com").BuildStartSessionRequestDTO())

	s.Run("all rooms start available", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/available", nil, "")

		var rooms []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &rooms)
		s.Len(rooms, 3)
	})

	s.Run("alice books 101 for five nights with the long stay discount", func() {
		res := s.book(alice, "101", 5)

		s.Equal("Alice Tan", res.Guest.Name)
		s.Equal(int64(50000), res.Price.Base.Cents)
		s.Equal(int64(2500), res.Price.Discount.Cents)
		s.Equal(int64(4750), res.Price.Tax.Cents)
		s.Equal(int64(52250), res.Price.Total.Cents)
	})

	s.Run("a booked room cannot be booked again", func() {
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/reservations",
			map[string]any{"room_id": "101", "nights": 1}, []*http.Cookie{bob}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Room is already booked")
	})

	s.Run("unknown room is a 404", func() {
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/reservations",
			map[string]any{"room_id": "999", "nights": 1}, []*http.Cookie{bob}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("bob books 103 for two nights without discount", func() {
		res := s.book(bob, "103", 2)

		s.Equal("Bob Lee", res.Guest.Name)
		s.Equal(int64(0), res.Price.Discount.Cents)
		s.Equal(int64(55000), res.Price.Total.Cents)
	})

	s.Run("rooms report who booked them", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms", nil, "")

		var rooms []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &rooms)
		s.Require().Len(rooms, 3)
		s.Require().NotNil(rooms[0].BookedBy)
		s.Equal("Alice Tan", rooms[0].BookedBy.Name)
		s.False(rooms[1].IsBooked)
		s.Require().NotNil(rooms[2].BookedBy)
		s.Equal("Bob Lee", rooms[2].BookedBy.Name)
	})

	s.Run("summary aggregates active reservations", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reports/summary", nil, "")

		var summary resdto.SummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &summary)
		s.Equal("Grand Plaza", summary.Name)
		s.Equal(3, summary.TotalRooms)
		s.Equal(1, summary.AvailableRooms)
		s.Equal(2, summary.ActiveReservations)
		s.Equal(int64(107250), summary.Revenue.Cents)
		s.Equal(int64(16667), summary.AverageRoomPrice.Cents)
	})

	s.Run("any session may cancel a reservation", func() {
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodDelete, "/api/reservations/101", nil, []*http.Cookie{bob}, "")

		var response resdto.CancellationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Alice Tan", response.Guest.Name)
		s.Equal(5, response.Nights)
	})

	s.Run("cancelling twice is a 404", func() {
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodDelete, "/api/reservations/101", nil, []*http.Cookie{alice}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No active reservation for room")
	})

	s.Run("revenue drops the cancelled reservation", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reports/revenue", nil, "")

		var revenue resdto.RevenueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &revenue)
		s.Equal(int64(55000), revenue.Revenue.Cents)
	})

	s.Run("reservations list only the active one", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations", nil, "")

		var list []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &list)
		s.Require().Len(list, 1)
		s.Equal("103", list[0].RoomID)
	})

	s.Run("ending the session clears the cookie", func() {
		sessiontest.EndSession(s.T(), s.router, []*http.Cookie{alice})
	})
}

func (s *RouterTestSuite) TestStayLongerThanAYearIsRejected() {
	cookie := sessiontest.StartSession(s.T(), s.router, builder.NewUserBuilder().BuildStartSessionRequestDTO())

	rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/reservations",
		map[string]any{"room_id": "103", "nights": 1_000_000_000_000_000}, []*http.Cookie{cookie}, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	httptest.AssertErrorRequestID(s.T(), rec)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reports/revenue", nil, "")
	var revenue resdto.RevenueResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &revenue)
	s.Equal(int64(0), revenue.Revenue.Cents)
}

func (s *RouterTestSuite) TestPublicReadsTolerateSessionTokens() {
	cookie := sessiontest.StartSession(s.T(), s.router, builder.NewUserBuilder().BuildStartSessionRequestDTO())

	for _, path := range []string{"/api/rooms", "/api/rooms/available", "/api/reservations", "/api/reports/revenue", "/api/reports/average-room-price", "/api/reports/summary"} {
		s.Run(path, func() {
			rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, path, nil, []*http.Cookie{cookie}, "")
			s.Equal(http.StatusOK, rec.Code)

			rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "not-a-jwt")
			s.Equal(http.StatusOK, rec.Code)
		})
	}
}

func (s *RouterTestSuite) TestBookingRequiresSession() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations",
		map[string]any{"room_id": "101", "nights": 1}, "")

	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Session token required")
}

func (s *RouterTestSuite) TestAverageRoomPriceWithoutBookings() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reports/average-room-price", nil, "")

	var response resdto.AverageRoomPriceResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(int64(16667), response.AverageRoomPrice.Cents)
	s.Equal("166.67", response.AverageRoomPrice.Formatted)
}
