//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotel-reservation/internal/handler/api"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/tests/common/builder"
	"hotel-reservation/tests/common/httptest"
	queriesmock "hotel-reservation/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	handlerSuite
	mockQueries *queriesmock.MockHotelQueries
	handler     *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	s.setupBase()
	s.mockQueries = queriesmock.NewMockHotelQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockQueries, s.cfg)

	s.router.GET("/rooms", s.handler.List)
	s.router.GET("/rooms/available", s.handler.Available)
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestList() {
	s.Run("success: rooms in insertion order with booking state", func() {
		views := make([]queries.RoomView, 0, 3)
		for _, rb := range builder.StandardRooms() {
			views = append(views, rb.BuildView())
		}
		guest := builder.NewUserBuilder().BuildGuestView()
		views[1].IsBooked = true
		views[1].BookedBy = &guest

		s.mockQueries.EXPECT().ListRooms(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 3)
		s.Equal([]string{"101", "102", "103"}, []string{response[0].ID, response[1].ID, response[2].ID})

		s.False(response[0].IsBooked)
		s.Nil(response[0].BookedBy)

		s.True(response[1].IsBooked)
		s.Require().NotNil(response[1].BookedBy)
		s.Equal("Alice Tan", response[1].BookedBy.Name)

		s.Equal(int64(15000), response[1].PricePerNight.Cents)
		s.Equal("150.00", response[1].PricePerNight.Formatted)
		s.Equal("RM", response[1].PricePerNight.Currency)
	})

	s.Run("success: empty hotel renders an empty array", func() {
		s.mockQueries.EXPECT().ListRooms(gomock.Any()).Return([]queries.RoomView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: query failure is a 500", func() {
		s.mockQueries.EXPECT().ListRooms(gomock.Any()).Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *RoomHandlerTestSuite) TestAvailable() {
	views := []queries.RoomView{
		builder.NewRoomBuilder().WithID("103").WithType("Suite").WithPriceCents(25000).BuildView(),
	}
	s.mockQueries.EXPECT().AvailableRooms(gomock.Any()).Return(views, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/available", nil, "")

	var response []resdto.RoomResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, 1)
	s.Equal("103", response[0].ID)
	s.Equal("Suite", response[0].Type)
	s.False(response[0].IsBooked)
}
