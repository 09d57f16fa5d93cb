package api

import (
	"net/http"

	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/cookie"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	cmds commands.SessionCommands
	cfg  config.Config
}

func NewSessionHandler(cmds commands.SessionCommands, cfg config.Config) *SessionHandler {
	return &SessionHandler{
		cmds: cmds,
		cfg:  cfg,
	}
}

// @Summary Start session
// @Description Register the guest identity used for later bookings
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body reqdto.StartSessionRequest true "Guest details"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Router /sessions [post]
func (h *SessionHandler) Start(c *gin.Context) {
	var req reqdto.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.cmds.StartSession(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	cookie.SetSessionCookie(c, h.cfg.Cookie, result.Token, result.ExpiresAt.Sub(result.Session.StartedAt()))

	res := resdto.FromSession(result.Session)
	res.AccessToken = result.Token
	res.ExpiresAt = &result.ExpiresAt
	c.JSON(http.StatusCreated, res)
}

// @Summary Current session
// @Description Return the guest bound to the presented session token
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} httperr.Response
// @Router /sessions/me [get]
func (h *SessionHandler) Me(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrSessionInvalid, "Session required", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(sess))
}

// @Summary End session
// @Description Clear the session cookie. Tokens are stateless and expire on their own.
// @Tags sessions
// @Success 204 "No Content"
// @Router /sessions [delete]
func (h *SessionHandler) End(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}
