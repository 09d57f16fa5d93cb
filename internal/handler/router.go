package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-reservation/internal/handler/api"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Session     *api.SessionHandler
	Room        *api.RoomHandler
	Reservation *api.ReservationHandler
	Report      *api.ReportHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, sessionMiddleware *middleware.SessionMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, sessionMiddleware *middleware.SessionMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireSession := sessionMiddleware.RequireSession()
	// public reads still attribute the caller in request logs when a token is sent
	optionalSession := []gin.HandlerFunc{sessionMiddleware.OptionalSession()}

	apiGroup := engine.Group("/api")
	{
		sessions := apiGroup.Group("/sessions")
		addRoutes(sessions, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Session.Start},
			{Method: http.MethodDelete, Path: "", Handler: h.Session.End},
			{Method: http.MethodGet, Path: "/me", Handler: h.Session.Me, Mw: []gin.HandlerFunc{requireSession}},
		})

		rooms := apiGroup.Group("/rooms")
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Room.List, Mw: optionalSession},
			{Method: http.MethodGet, Path: "/available", Handler: h.Room.Available, Mw: optionalSession},
		})

		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List, Mw: optionalSession},
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Book, Mw: []gin.HandlerFunc{requireSession}},
			{Method: http.MethodDelete, Path: "/:roomId", Handler: h.Reservation.Cancel, Mw: []gin.HandlerFunc{requireSession}},
		})

		reports := apiGroup.Group("/reports")
		addRoutes(reports, []route{
			{Method: http.MethodGet, Path: "/revenue", Handler: h.Report.Revenue, Mw: optionalSession},
			{Method: http.MethodGet, Path: "/average-room-price", Handler: h.Report.AverageRoomPrice, Mw: optionalSession},
			{Method: http.MethodGet, Path: "/summary", Handler: h.Report.Summary, Mw: optionalSession},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		hs := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, hs...)
		case http.MethodPost:
			g.POST(r.Path, hs...)
		case http.MethodPut:
			g.PUT(r.Path, hs...)
		case http.MethodDelete:
			g.DELETE(r.Path, hs...)
		default:
			g.Handle(r.Method, r.Path, hs...)
		}
	}
}
