package usecase

import (
	"hotel-reservation/internal/domain/session"
	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/pkg/jwt"
)

// TokenValidator provides session restoration for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (session.Session, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (session.Session, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return session.Session{}, errs.Mark(err, errs.ErrSessionInvalid)
	}

	guest, err := user.NewUser(claims.Name, claims.Email, claims.Phone)
	if err != nil {
		return session.Session{}, errs.Mark(err, errs.ErrSessionInvalid)
	}

	var startedAt = claims.IssuedAt
	if startedAt == nil {
		return session.Session{}, errs.Mark(errs.New("token has no issue time"), errs.ErrSessionInvalid)
	}

	return session.Reconstruct(claims.SessionID, *guest, startedAt.Time), nil
}
