package booking

import "tutorhive/models"

// BookingService governs the booking lifecycle: creation with atomic slot
// locking, the student/tutor transitions, the role-scoped listing, and the
// time-driven sweep.
type BookingService interface {
	Create(studentID string, req models.CreateBookingRequest) (*models.Booking, error)
	Cancel(studentID, bookingID string) error
	Confirm(tutorID, bookingID string) (*models.Booking, error)
	Reject(tutorID, bookingID, note string) (*models.Booking, error)
	// ListMine returns the caller's bookings; statusFilter is "",
	// "active", or "inactive" (a wall-clock partition, not a status one).
	ListMine(userID, role, statusFilter string) ([]models.Booking, error)
	// SweepOnce advances every in-flight booking whose end instant has
	// passed and reports how many were finished and expired.
	SweepOnce() (finished, expired int, err error)
}
