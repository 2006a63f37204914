package availability

import (
	"fmt"
	"sort"

	tutorRepo "tutorhive/database/repository/tutor"
	"tutorhive/models"
	"tutorhive/utils"

	"go.uber.org/zap"
)

// SetAvailability merges tutor-submitted day entries into the stored grid
// and persists the result under the grid's version guard, retrying when a
// concurrent booking write got there first.
func (s *DefaultAvailabilityService) SetAvailability(tutorID string, entries []models.AvailabilityEntry) ([]models.DayAvailability, error) {
	if entries == nil {
		return nil, &ValidationError{Message: "availability entries must be a list"}
	}
	normalized, err := normalizeEntries(entries)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < 3; attempt++ {
		tutor, err := s.Tutors.GetByID(tutorID)
		if err != nil {
			return nil, err
		}
		if tutor == nil {
			return nil, &NotFoundError{TutorID: tutorID}
		}

		grid, err := mergeGrid(tutor.Availability, normalized)
		if err != nil {
			return nil, err
		}

		err = s.Tutors.ReplaceAvailability(tutorID, grid, tutor.AvailabilityVersion)
		if err == tutorRepo.ErrVersionConflict {
			utils.GetLogger().Debug("availability edit lost version race, retrying",
				zap.String("tutorId", tutorID))
			continue
		}
		if err != nil {
			return nil, err
		}

		s.invalidate(tutorID)
		return grid, nil
	}
	return nil, fmt.Errorf("could not persist availability for tutor %s: too many conflicts", tutorID)
}

// normalizeEntries validates dates and slot times up front so the merge
// below cannot half-apply a malformed payload.
func normalizeEntries(entries []models.AvailabilityEntry) ([]models.AvailabilityEntry, error) {
	out := make([]models.AvailabilityEntry, 0, len(entries))
	for _, e := range entries {
		date, err := models.NormalizeDate(e.Date)
		if err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("invalid date %q", e.Date)}
		}
		for _, slot := range e.Slots {
			start, err := models.MinuteOfDay(slot.StartTime)
			if err != nil {
				return nil, &ValidationError{Message: fmt.Sprintf("invalid slot start %q on %s", slot.StartTime, date)}
			}
			end, err := models.MinuteOfDay(slot.EndTime)
			if err != nil {
				return nil, &ValidationError{Message: fmt.Sprintf("invalid slot end %q on %s", slot.EndTime, date)}
			}
			if end <= start {
				return nil, &ValidationError{Message: fmt.Sprintf("slot %s-%s on %s ends before it starts", slot.StartTime, slot.EndTime, date)}
			}
		}
		out = append(out, models.AvailabilityEntry{Date: date, Slots: e.Slots})
	}
	return out, nil
}

// mergeGrid applies replace-or-delete-whole-day semantics: each incoming
// entry replaces (or, when empty, deletes) its date; dates the payload
// does not mention are carried over untouched. An edit that would silently
// drop a booked slot is rejected, since that would strand the booking that
// holds the lock.
func mergeGrid(existing []models.DayAvailability, entries []models.AvailabilityEntry) ([]models.DayAvailability, error) {
	byDate := make(map[string]models.DayAvailability, len(existing))
	for _, day := range existing {
		date, err := models.NormalizeDate(day.Date)
		if err != nil {
			continue
		}
		byDate[date] = models.DayAvailability{Date: date, Slots: day.Slots}
	}

	for _, e := range entries {
		if stored, ok := byDate[e.Date]; ok {
			if err := bookedSlotsRetained(stored.Slots, e.Slots, e.Date); err != nil {
				return nil, err
			}
		}
		if len(e.Slots) == 0 {
			delete(byDate, e.Date)
			continue
		}
		byDate[e.Date] = models.DayAvailability{Date: e.Date, Slots: e.Slots}
	}

	grid := make([]models.DayAvailability, 0, len(byDate))
	for _, day := range byDate {
		grid = append(grid, day)
	}
	sort.Slice(grid, func(i, j int) bool { return grid[i].Date < grid[j].Date })
	return grid, nil
}

// bookedSlotsRetained checks that every currently booked slot survives the
// replacement, still marked booked.
func bookedSlotsRetained(stored, incoming []models.Slot, date string) error {
	for _, old := range stored {
		if !old.Booked {
			continue
		}
		kept := false
		for _, slot := range incoming {
			if slot.StartTime == old.StartTime && slot.EndTime == old.EndTime && slot.Booked {
				kept = true
				break
			}
		}
		if !kept {
			return &ValidationError{Message: fmt.Sprintf(
				"edit for %s would overwrite booked slot %s-%s; resubmit the day including it",
				date, old.StartTime, old.EndTime)}
		}
	}
	return nil
}
