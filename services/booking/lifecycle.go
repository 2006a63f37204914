package booking

import (
	"context"
	"fmt"

	"tutorhive/models"
)

// Cancel releases the booking's locked slots and deletes the record.
// Only the owning student may cancel, and only while the booking is still
// pending or confirmed.
func (s *DefaultBookingService) Cancel(studentID, bookingID string) error {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return err
	}
	if b == nil {
		return NewNotFoundError("booking not found")
	}
	if b.StudentID != studentID {
		return NewForbiddenError("booking belongs to another student")
	}
	if b.Status != models.BookingPending && b.Status != models.BookingConfirmed {
		return NewValidationError(fmt.Sprintf("a %s booking cannot be cancelled", b.Status))
	}

	if err := s.releaseSlots(b.TutorID, b.Date, b.StartTime, b.EndTime); err != nil {
		return err
	}
	if err := s.Bookings.Delete(b.ID); err != nil {
		return err
	}

	if s.Notifier != nil {
		s.Notifier.NotifyBookingEvent(context.Background(), models.EventBookingCancelled, *b)
	}
	return nil
}

// Confirm flips a pending booking to confirmed. The slots stay locked.
func (s *DefaultBookingService) Confirm(tutorID, bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, NewNotFoundError("booking not found")
	}
	if b.TutorID != tutorID {
		return nil, NewForbiddenError("booking belongs to another tutor")
	}

	now := s.now()
	ok, err := s.Bookings.ConfirmPending(b.ID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewValidationError("only a pending booking can be confirmed")
	}
	b.Status = models.BookingConfirmed
	b.UpdatedAt = now

	if s.Notifier != nil {
		s.Notifier.NotifyBookingEvent(context.Background(), models.EventBookingConfirmed, *b)
	}
	return b, nil
}

// Reject declines a pending booking and releases its slots, symmetric
// with cancellation, so declined time immediately becomes bookable again.
func (s *DefaultBookingService) Reject(tutorID, bookingID, note string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, NewNotFoundError("booking not found")
	}
	if b.TutorID != tutorID {
		return nil, NewForbiddenError("booking belongs to another tutor")
	}

	now := s.now()
	ok, err := s.Bookings.RejectPending(b.ID, note, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewValidationError("only a pending booking can be rejected")
	}

	// The guarded transition above is the commit point; the release can
	// only free slots this booking held, so retrying it is safe.
	if err := s.releaseSlots(b.TutorID, b.Date, b.StartTime, b.EndTime); err != nil {
		return nil, err
	}

	b.Status = models.BookingRejected
	b.RejectNote = note
	b.UpdatedAt = now

	if s.Notifier != nil {
		s.Notifier.NotifyBookingEvent(context.Background(), models.EventBookingRejected, *b)
	}
	return b, nil
}
