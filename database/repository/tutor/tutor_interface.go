package tutorRepo

import (
	"errors"

	"tutorhive/models"
)

// ErrVersionConflict is returned when an availability write loses the
// optimistic-concurrency race and must be retried against fresh state.
var ErrVersionConflict = errors.New("availability version conflict")

// TutorRepository defines persistence operations for tutor documents,
// including the embedded availability grid and session catalog.
type TutorRepository interface {
	Create(t *models.Tutor) error
	// GetByID returns (nil, nil) when no tutor matches.
	GetByID(id string) (*models.Tutor, error)
	GetByEmail(email string) (*models.Tutor, error)
	UpdateProfile(id string, upd models.TutorUpdate) error
	Delete(id string) error

	AddSession(tutorID string, s models.Session) error
	RemoveSession(tutorID, sessionID string) error

	// ReplaceAvailability swaps the whole grid under a version guard:
	// the write only lands if the stored availabilityVersion still equals
	// expectedVersion, and bumps it by one. Returns ErrVersionConflict
	// when another writer got there first.
	ReplaceAvailability(tutorID string, grid []models.DayAvailability, expectedVersion int64) error
}
