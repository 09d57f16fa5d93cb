package bootstrap

import (
	"time"

	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/pkg/jwt"
	"hotel-reservation/internal/usecase/commands"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewJWTService,
		func(s *jwt.Service) commands.SessionTokenIssuer { return s },
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.Session.Duration)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid SESSION_DURATION %q", cfg.Session.Duration)
	}
	if duration <= 0 {
		return nil, errs.New("SESSION_DURATION must be positive")
	}

	return jwt.NewService(cfg.Session.Secret, duration, clk), nil
}
