//go:build unit

package sessiontest

import (
	"net/http"
	"testing"

	"hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/pkg/cookie"
	"hotel-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// StartSession registers a guest through the API and returns the session cookie.
func StartSession(t *testing.T, router *gin.Engine, req request.StartSessionRequest) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/sessions", req, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, sessionCookie, "Session token not found in cookies")
	require.NotEmpty(t, sessionCookie.Value, "Session token cookie is empty")

	return sessionCookie
}

func EndSession(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodDelete, "/api/sessions", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
