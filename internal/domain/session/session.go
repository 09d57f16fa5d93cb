package session

import (
	"time"

	"hotel-reservation/internal/domain/user"

	"github.com/google/uuid"
)

// Session binds one guest identity to the calls made under it.
type Session struct {
	id        uuid.UUID
	guest     user.User
	startedAt time.Time
}

func Start(guest user.User, now time.Time) Session {
	return Session{
		id:        uuid.New(),
		guest:     guest,
		startedAt: now,
	}
}

// Reconstruct rebuilds a session from a verified token.
func Reconstruct(id uuid.UUID, guest user.User, startedAt time.Time) Session {
	return Session{
		id:        id,
		guest:     guest,
		startedAt: startedAt,
	}
}

func (s Session) ID() uuid.UUID        { return s.id }
func (s Session) Guest() user.User     { return s.guest }
func (s Session) StartedAt() time.Time { return s.startedAt }
