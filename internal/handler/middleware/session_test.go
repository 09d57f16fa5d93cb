//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/usecase"
	"hotel-reservation/tests/common/builder"
	"hotel-reservation/tests/common/httptest"
	"hotel-reservation/tests/common/sessiontest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newSessionRouter(t *testing.T) (*gin.Engine, *sessiontest.TokenHelper) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	tokens := sessiontest.NewTokenHelper(cfg.Session, clock.NewFixedClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)))
	m := middleware.NewSessionMiddleware(usecase.NewTokenValidator(tokens.Service(t)))

	whoami := func(c *gin.Context) {
		sess, ok := middleware.GetSession(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"guest": ""})
			return
		}
		c.JSON(http.StatusOK, gin.H{"guest": sess.Guest().Name()})
	}

	r := gin.New()
	r.GET("/required", m.RequireSession(), whoami)
	r.GET("/optional", m.OptionalSession(), whoami)
	return r, tokens
}

func TestRequireSession(t *testing.T) {
	router, tokens := newSessionRouter(t)
	sess := builder.NewUserBuilder().BuildSession(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	testCases := []struct {
		name       string
		token      string
		cookies    []*http.Cookie
		expectCode int
	}{
		{name: "bearer token", token: tokens.IssueToken(t, sess), expectCode: http.StatusOK},
		{name: "cookie", cookies: []*http.Cookie{{Name: "hotel_session", Value: tokens.IssueToken(t, sess)}}, expectCode: http.StatusOK},
		{name: "no token", expectCode: http.StatusUnauthorized},
		{name: "garbage token", token: "not-a-jwt", expectCode: http.StatusUnauthorized},
		{name: "expired token", token: tokens.ExpiredToken(t, sess), expectCode: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/required", nil, tc.cookies, tc.token)

			assert.Equal(t, tc.expectCode, rec.Code)
			if tc.expectCode == http.StatusOK {
				assert.JSONEq(t, `{"guest":"Alice Tan"}`, rec.Body.String())
			}
		})
	}
}

func TestOptionalSession(t *testing.T) {
	router, tokens := newSessionRouter(t)
	sess := builder.NewUserBuilder().BuildSession(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	t.Run("valid token attaches the guest", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/optional", nil, tokens.IssueToken(t, sess))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"guest":"Alice Tan"}`, rec.Body.String())
	})

	t.Run("invalid token is ignored", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/optional", nil, "not-a-jwt")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"guest":""}`, rec.Body.String())
	})
}
