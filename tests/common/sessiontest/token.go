//go:build unit

package sessiontest

import (
	"testing"
	"time"

	"hotel-reservation/internal/domain/session"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type TokenHelper struct {
	cfg   config.SessionConfig
	clock clock.Clock
}

func NewTokenHelper(cfg config.SessionConfig, clk clock.Clock) *TokenHelper {
	return &TokenHelper{cfg: cfg, clock: clk}
}

func (h *TokenHelper) Service(t *testing.T) *jwt.Service {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, duration, h.clock)
}

func (h *TokenHelper) IssueToken(t *testing.T, sess session.Session) string {
	t.Helper()
	token, _, err := h.Service(t).GenerateToken(sess)
	require.NoError(t, err)
	return token
}

// ExpiredToken signs a token whose session started well before its lifetime.
func (h *TokenHelper) ExpiredToken(t *testing.T, sess session.Session) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)

	stale := session.Reconstruct(sess.ID(), sess.Guest(), h.clock.Now().Add(-2*duration))
	return h.IssueToken(t, stale)
}
