package api

import (
	"net/http"

	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	q        queries.HotelQueries
	currency string
}

func NewReportHandler(q queries.HotelQueries, cfg config.Config) *ReportHandler {
	return &ReportHandler{
		q:        q,
		currency: cfg.Hotel.Currency,
	}
}

// @Summary Total revenue
// @Description Sum of the totals of all active reservations
// @Tags reports
// @Produce json
// @Success 200 {object} resdto.RevenueResponse
// @Router /reports/revenue [get]
func (h *ReportHandler) Revenue(c *gin.Context) {
	revenue, err := h.q.Revenue(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRevenue(revenue, h.currency))
}

// @Summary Average room price
// @Description Mean nightly rate over every room, booked or not
// @Tags reports
// @Produce json
// @Success 200 {object} resdto.AverageRoomPriceResponse
// @Router /reports/average-room-price [get]
func (h *ReportHandler) AverageRoomPrice(c *gin.Context) {
	avg, err := h.q.AverageRoomPrice(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAverageRoomPrice(avg, h.currency))
}

// @Summary Hotel summary
// @Description Room counts, reservation count, revenue and average price
// @Tags reports
// @Produce json
// @Success 200 {object} resdto.SummaryResponse
// @Router /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.q.Summary(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelSummary(summary, h.currency))
}
