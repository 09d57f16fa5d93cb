package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-reservation/internal/domain/session"
	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/errs"
)

type StartSessionRequest struct {
	Name  string
	Email string
	Phone string
}

type SessionResult struct {
	Session   session.Session
	Token     string
	ExpiresAt time.Time
}

type SessionCommands interface {
	StartSession(ctx context.Context, req StartSessionRequest) (*SessionResult, error)
}

type sessionUseCaseImpl struct {
	issuer SessionTokenIssuer
	clock  clock.Clock
}

func NewSessionCommands(issuer SessionTokenIssuer, clk clock.Clock) SessionCommands {
	return &sessionUseCaseImpl{
		issuer: issuer,
		clock:  clk,
	}
}

func (uc *sessionUseCaseImpl) StartSession(ctx context.Context, req StartSessionRequest) (*SessionResult, error) {
	guest, err := user.NewUser(req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, classify(err, "start session")
	}

	sess := session.Start(*guest, uc.clock.Now())

	token, expiresAt, err := uc.issuer.GenerateToken(sess)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "sign session token"), errs.ErrTokenGeneration)
	}

	slog.InfoContext(ctx, "session started",
		"session_id", sess.ID().String(),
		"guest", guest.Name())

	return &SessionResult{
		Session:   sess,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
