package booking

import (
	"time"

	bookingRepo "tutorhive/database/repository/booking"
	tutorRepo "tutorhive/database/repository/tutor"
	"tutorhive/services/notification"
)

// How many times a slot-grid write is retried after losing the
// optimistic-concurrency race before the request is failed back to the
// caller.
const maxLockAttempts = 3

// DefaultBookingService is the concrete BookingService implementation.
type DefaultBookingService struct {
	Tutors   tutorRepo.TutorRepository
	Bookings bookingRepo.BookingRepository
	Notifier notification.Service

	// Now is the clock used for the sweep and the active/inactive
	// partition; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
