package bookingRepo

import (
	"time"

	"tutorhive/models"
)

// BookingRepository defines persistence operations for booking records.
// The conditional transition methods report whether the guarded update
// matched, so callers can distinguish "already transitioned" from
// "missing" without a second read.
type BookingRepository interface {
	Create(b *models.Booking) error
	// GetByID returns (nil, nil) when no booking matches.
	GetByID(id string) (*models.Booking, error)
	Delete(id string) error

	// ConfirmPending flips pending -> confirmed.
	ConfirmPending(id string, at time.Time) (bool, error)
	// RejectPending flips pending -> rejected with an optional note.
	RejectPending(id, note string, at time.Time) (bool, error)
	// FinishConfirmed flips confirmed -> finished, stamping finishedAt.
	FinishConfirmed(id string, at time.Time) (bool, error)
	// ExpirePending flips pending -> expired.
	ExpirePending(id string, at time.Time) (bool, error)

	// Role-scoped listings, sorted ascending by (date, startTime).
	ListByTutor(tutorID string) ([]models.Booking, error)
	ListByStudent(studentID string) ([]models.Booking, error)

	// ListInFlight returns every booking still pending or confirmed;
	// the sweep's sole selection mechanism.
	ListInFlight() ([]models.Booking, error)
}
