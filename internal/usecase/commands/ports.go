package commands

import (
	"context"
	"time"

	"hotel-reservation/internal/domain/session"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventReservationConfirmed EventKind = "reservation.confirmed"
	EventReservationCancelled EventKind = "reservation.cancelled"
)

// ReservationEvent is published after a booking or cancellation has been applied.
type ReservationEvent struct {
	Kind          EventKind `json:"kind"`
	ReservationID uuid.UUID `json:"reservation_id"`
	SessionID     uuid.UUID `json:"session_id"`
	RoomID        string    `json:"room_id"`
	RoomType      string    `json:"room_type"`
	GuestName     string    `json:"guest_name"`
	GuestEmail    string    `json:"guest_email,omitempty"`
	Nights        int       `json:"nights"`
	TotalCents    int64     `json:"total_cents"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event ReservationEvent) error
}

// SessionTokenIssuer signs the token a client presents on later calls.
type SessionTokenIssuer interface {
	GenerateToken(sess session.Session) (string, time.Time, error)
}
