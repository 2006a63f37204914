package booking

import (
	"tutorhive/models"
)

// Listing filters. "Active" means the booked range has not yet ended
// relative to the wall clock; the status field plays no part, so a
// pending booking whose time already passed lists as inactive even before
// the sweep expires it.
const (
	FilterActive   = "active"
	FilterInactive = "inactive"
)

// ListMine returns the caller's bookings: a tutor sees bookings made with
// them, anyone else the bookings they made. Results arrive sorted
// ascending by (date, startTime) from the repository.
func (s *DefaultBookingService) ListMine(userID, role, statusFilter string) ([]models.Booking, error) {
	var (
		bookings []models.Booking
		err      error
	)
	if role == models.RoleTutor {
		bookings, err = s.Bookings.ListByTutor(userID)
	} else {
		bookings, err = s.Bookings.ListByStudent(userID)
	}
	if err != nil {
		return nil, err
	}

	switch statusFilter {
	case "":
		return bookings, nil
	case FilterActive, FilterInactive:
	default:
		return nil, NewValidationError("status filter must be \"active\" or \"inactive\"")
	}

	now := s.now()
	filtered := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		past := b.EndsBefore(now)
		if (statusFilter == FilterActive && !past) || (statusFilter == FilterInactive && past) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}
