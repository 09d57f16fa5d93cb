//go:build unit

package api_test

import (
	"net/http"
	"time"

	"hotel-reservation/internal/domain/session"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/handler/validation"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/usecase"
	"hotel-reservation/tests/common/builder"
	"hotel-reservation/tests/common/sessiontest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// handlerSuite carries the wiring shared by every handler suite.
type handlerSuite struct {
	suite.Suite
	router            *gin.Engine
	mockCtrl          *gomock.Controller
	cfg               config.Config
	tokens            *sessiontest.TokenHelper
	sessionMiddleware *middleware.SessionMiddleware
}

func (s *handlerSuite) SetupSuite() {
	s.Require().NoError(validation.RegisterBindingRules())
}

func (s *handlerSuite) setupBase() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())
	s.mockCtrl = gomock.NewController(s.T())
	s.cfg = config.NewTestConfig()

	clk := clock.NewFixedClock(fixedNow)
	s.tokens = sessiontest.NewTokenHelper(s.cfg.Session, clk)
	s.sessionMiddleware = middleware.NewSessionMiddleware(usecase.NewTokenValidator(s.tokens.Service(s.T())))
}

func (s *handlerSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *handlerSuite) newSession() (session.Session, string) {
	sess := builder.NewUserBuilder().BuildSession(fixedNow)
	return sess, s.tokens.IssueToken(s.T(), sess)
}

func (s *handlerSuite) sessionCookie(token string) []*http.Cookie {
	return []*http.Cookie{{Name: "hotel_session", Value: token}}
}
