package booking

import (
	"context"
	"fmt"

	tutorRepo "tutorhive/database/repository/tutor"
	"tutorhive/models"
	"tutorhive/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create validates a booking request against the tutor's slot grid and,
// if the requested range is exactly covered by free contiguous slots,
// locks those slots and inserts a pending booking. The whole operation
// either completes or leaves no trace: the slot lock is a version-guarded
// write, and a failed booking insert rolls the lock back.
func (s *DefaultBookingService) Create(studentID string, req models.CreateBookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	date, err := models.NormalizeDate(req.Date)
	if err != nil {
		return nil, NewValidationError("invalid date")
	}
	expected, err := models.HoursBetween(req.StartTime, req.EndTime)
	if err != nil {
		return nil, NewValidationError("invalid start or end time")
	}
	if expected <= 0 {
		return nil, NewValidationError("end time must be after start time")
	}
	if req.SessionID == "" {
		return nil, NewValidationError("session reference is required")
	}

	for attempt := 0; attempt < maxLockAttempts; attempt++ {
		tutor, err := s.Tutors.GetByID(req.TutorID)
		if err != nil {
			return nil, err
		}
		if tutor == nil {
			return nil, NewNotFoundError("tutor not found")
		}

		di := models.FindDay(tutor.Availability, date)
		if di < 0 {
			return nil, NewValidationError("no availability on this date")
		}

		candidates := models.SlotsInRange(tutor.Availability[di].Slots, req.StartTime, req.EndTime)

		// Continuity check: the candidate count matches the requested
		// duration only when the range is gaplessly covered, one slot
		// per unit.
		if float64(len(candidates)) != expected {
			return nil, NewValidationError("slots are not continuous or partially booked")
		}
		for _, si := range candidates {
			if tutor.Availability[di].Slots[si].Booked {
				return nil, NewValidationError("one or more slots are already booked")
			}
		}

		grid := cloneGrid(tutor.Availability)
		for _, si := range candidates {
			grid[di].Slots[si].Booked = true
		}

		err = s.Tutors.ReplaceAvailability(tutor.ID, grid, tutor.AvailabilityVersion)
		if err == tutorRepo.ErrVersionConflict {
			logger.Debug("slot lock lost version race, retrying",
				zap.String("tutorId", tutor.ID), zap.String("date", date))
			continue
		}
		if err != nil {
			return nil, err
		}

		now := s.now()
		booking := &models.Booking{
			ID:                uuid.New().String(),
			TutorID:           tutor.ID,
			StudentID:         studentID,
			SessionID:         req.SessionID,
			Date:              date,
			StartTime:         req.StartTime,
			EndTime:           req.EndTime,
			PreferredLocation: req.PreferredLocation,
			Note:              req.Note,
			Status:            models.BookingPending,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := s.Bookings.Create(booking); err != nil {
			// The slots are locked but the booking never landed; undo
			// the lock so no orphaned reservation survives.
			if relErr := s.releaseSlots(tutor.ID, date, req.StartTime, req.EndTime); relErr != nil {
				logger.Error("failed to roll back slot lock after booking insert failure",
					zap.String("tutorId", tutor.ID), zap.Error(relErr))
			}
			return nil, fmt.Errorf("failed to create booking: %w", err)
		}

		if s.Notifier != nil {
			s.Notifier.NotifyBookingEvent(context.Background(), models.EventBookingCreated, *booking)
		}
		return booking, nil
	}

	return nil, NewValidationError("one or more slots are already booked")
}
