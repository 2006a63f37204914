package booking

import (
	"fmt"

	tutorRepo "tutorhive/database/repository/tutor"
	"tutorhive/models"
	"tutorhive/utils"

	"go.uber.org/zap"
)

// cloneGrid deep-copies an availability grid so slot mutations never leak
// into state shared with the repository or other requests.
func cloneGrid(grid []models.DayAvailability) []models.DayAvailability {
	out := make([]models.DayAvailability, len(grid))
	for i, day := range grid {
		out[i] = models.DayAvailability{
			Date:  day.Date,
			Slots: append([]models.Slot(nil), day.Slots...),
		}
	}
	return out
}

// releaseSlots marks every slot of the tutor's grid inside
// [startTime, endTime] on the given date as free again, retrying the
// version-guarded write. Slots already free are left alone, so re-running
// a release is a no-op. A missing tutor or date entry is also a no-op:
// there is nothing left to unlock.
func (s *DefaultBookingService) releaseSlots(tutorID, date, startTime, endTime string) error {
	for attempt := 0; attempt < maxLockAttempts; attempt++ {
		tutor, err := s.Tutors.GetByID(tutorID)
		if err != nil {
			return err
		}
		if tutor == nil {
			return nil
		}

		di := models.FindDay(tutor.Availability, date)
		if di < 0 {
			return nil
		}

		grid := cloneGrid(tutor.Availability)
		changed := false
		for _, si := range models.SlotsInRange(grid[di].Slots, startTime, endTime) {
			if grid[di].Slots[si].Booked {
				grid[di].Slots[si].Booked = false
				changed = true
			}
		}
		if !changed {
			return nil
		}

		err = s.Tutors.ReplaceAvailability(tutorID, grid, tutor.AvailabilityVersion)
		if err == nil {
			return nil
		}
		if err != tutorRepo.ErrVersionConflict {
			return err
		}
		utils.GetLogger().Debug("slot release lost version race, retrying",
			zap.String("tutorId", tutorID), zap.String("date", date))
	}
	return fmt.Errorf("could not release slots for tutor %s on %s: too many conflicts", tutorID, date)
}
