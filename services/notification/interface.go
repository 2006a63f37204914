package notification

import (
	"context"

	"tutorhive/models"
)

// Service observes booking lifecycle transitions for user-facing
// messaging. Implementations must never fail the transition that fired
// the event: delivery problems are theirs to log and absorb.
type Service interface {
	NotifyBookingEvent(ctx context.Context, event string, b models.Booking)
}
