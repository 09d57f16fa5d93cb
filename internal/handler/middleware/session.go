package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hotel-reservation/internal/domain/session"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/pkg/cookie"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SessionMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxSessionKey = "session"
	ctxClaimsKey  = "session_claims"
)

var errSessionTokenMissing = errs.New("session token missing")

func NewSessionMiddleware(tokenValidator usecase.TokenValidator) *SessionMiddleware {
	return &SessionMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireSession restores the guest session from the cookie or a Bearer header.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errSessionTokenMissing, "Session token required", nil)
			return
		}

		sess, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in session middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired session", nil)
			return
		}

		setSession(c, sess)
		c.Next()
	}
}

// OptionalSession attaches the session when a valid token is present and never aborts.
func (m *SessionMiddleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		if sess, err := m.tokenValidator.ValidateToken(token); err == nil {
			setSession(c, sess)
		}
		c.Next()
	}
}

func GetSession(c *gin.Context) (session.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return session.Session{}, false
	}

	sess, ok := v.(session.Session)
	return sess, ok
}

func setSession(c *gin.Context, sess session.Session) {
	c.Set(ctxSessionKey, sess)
	c.Set(ctxClaimsKey, map[string]any{
		"session_id": sess.ID().String(),
		"guest":      sess.Guest().Name(),
	})
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
