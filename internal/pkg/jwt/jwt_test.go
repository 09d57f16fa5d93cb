//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"hotel-reservation/internal/domain/session"
	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, now time.Time) session.Session {
	t.Helper()
	guest, err := user.NewUser("Aisyah", "aisyah@example.com", "+60 12-345 6789")
	require.NoError(t, err)
	return session.Start(*guest, now)
}

func TestService(t *testing.T) {
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	t.Run("round trip keeps the guest identity", func(t *testing.T) {
		clk := clock.NewFixedClock(now)
		svc := jwt.NewService("secret", time.Hour, clk)
		sess := newSession(t, now)

		token, expiresAt, err := svc.GenerateToken(sess)
		require.NoError(t, err)
		assert.Equal(t, now.Add(time.Hour), expiresAt)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, sess.ID(), claims.SessionID)
		assert.Equal(t, "Aisyah", claims.Name)
		assert.Equal(t, "aisyah@example.com", claims.Email)
		assert.Equal(t, "+60 12-345 6789", claims.Phone)
		assert.True(t, claims.IssuedAt.Time.Equal(now))
	})

	t.Run("expired token", func(t *testing.T) {
		clk := clock.NewFixedClock(now)
		svc := jwt.NewService("secret", time.Hour, clk)

		token, _, err := svc.GenerateToken(newSession(t, now))
		require.NoError(t, err)

		clk.Advance(2 * time.Hour)
		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		clk := clock.NewFixedClock(now)
		issuer := jwt.NewService("secret-a", time.Hour, clk)
		verifier := jwt.NewService("secret-b", time.Hour, clk)

		token, _, err := issuer.GenerateToken(newSession(t, now))
		require.NoError(t, err)

		_, err = verifier.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour, clock.NewFixedClock(now))
		_, err := svc.ValidateToken("not-a-token")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
