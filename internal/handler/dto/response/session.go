package response

import (
	"time"

	"hotel-reservation/internal/domain/session"
	"hotel-reservation/internal/domain/user"

	"github.com/google/uuid"
)

type GuestResponse struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type SessionResponse struct {
	SessionID   uuid.UUID     `json:"session_id"`
	Guest       GuestResponse `json:"guest"`
	StartedAt   time.Time     `json:"started_at"`
	AccessToken string        `json:"access_token,omitempty"`
	ExpiresAt   *time.Time    `json:"expires_at,omitempty"`
}

func FromGuest(u user.User) GuestResponse {
	return GuestResponse{
		Name:  u.Name(),
		Email: u.Email().Value(),
		Phone: u.Phone().Value(),
	}
}

func FromSession(sess session.Session) *SessionResponse {
	return &SessionResponse{
		SessionID: sess.ID(),
		Guest:     FromGuest(sess.Guest()),
		StartedAt: sess.StartedAt(),
	}
}
