package booking

import (
	"errors"
	"sort"
	"sync"
	"time"

	tutorRepo "tutorhive/database/repository/tutor"
	"tutorhive/models"
)

var errInsertFailed = errors.New("insert failed")

// memTutorRepo is an in-memory TutorRepository with the same
// version-guard semantics as the Mongo implementation.
type memTutorRepo struct {
	mu     sync.Mutex
	tutors map[string]*models.Tutor

	// failNextReplace makes the next ReplaceAvailability lose the
	// version race without applying, to exercise the retry path.
	failNextReplace bool
}

func newMemTutorRepo(tutors ...*models.Tutor) *memTutorRepo {
	repo := &memTutorRepo{tutors: make(map[string]*models.Tutor)}
	for _, t := range tutors {
		repo.tutors[t.ID] = cloneTutor(t)
	}
	return repo
}

func cloneTutor(t *models.Tutor) *models.Tutor {
	cp := *t
	cp.Availability = cloneGrid(t.Availability)
	cp.Sessions = append([]models.Session(nil), t.Sessions...)
	return &cp
}

func (f *memTutorRepo) Create(t *models.Tutor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tutors[t.ID] = cloneTutor(t)
	return nil
}

func (f *memTutorRepo) GetByID(id string) (*models.Tutor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tutors[id]
	if !ok {
		return nil, nil
	}
	return cloneTutor(t), nil
}

func (f *memTutorRepo) GetByEmail(email string) (*models.Tutor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tutors {
		if t.Email == email {
			return cloneTutor(t), nil
		}
	}
	return nil, nil
}

func (f *memTutorRepo) UpdateProfile(id string, upd models.TutorUpdate) error { return nil }
func (f *memTutorRepo) Delete(id string) error                                { return nil }
func (f *memTutorRepo) AddSession(tutorID string, s models.Session) error     { return nil }
func (f *memTutorRepo) RemoveSession(tutorID, sessionID string) error         { return nil }

func (f *memTutorRepo) ReplaceAvailability(tutorID string, grid []models.DayAvailability, expectedVersion int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tutors[tutorID]
	if !ok {
		return tutorRepo.ErrVersionConflict
	}
	if f.failNextReplace {
		f.failNextReplace = false
		t.AvailabilityVersion++
		return tutorRepo.ErrVersionConflict
	}
	if t.AvailabilityVersion != expectedVersion {
		return tutorRepo.ErrVersionConflict
	}
	t.Availability = cloneGrid(grid)
	t.AvailabilityVersion++
	return nil
}

// grid returns the stored availability for assertions.
func (f *memTutorRepo) grid(tutorID string) []models.DayAvailability {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneGrid(f.tutors[tutorID].Availability)
}

// memBookingRepo is an in-memory BookingRepository with status-guarded
// transitions.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking

	failCreate bool
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (f *memBookingRepo) Create(b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		f.failCreate = false
		return errInsertFailed
	}
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *memBookingRepo) GetByID(id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *memBookingRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.bookings, id)
	return nil
}

func (f *memBookingRepo) transition(id, from string, apply func(*models.Booking)) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok || b.Status != from {
		return false, nil
	}
	apply(b)
	return true, nil
}

func (f *memBookingRepo) ConfirmPending(id string, at time.Time) (bool, error) {
	return f.transition(id, models.BookingPending, func(b *models.Booking) {
		b.Status = models.BookingConfirmed
		b.UpdatedAt = at
	})
}

func (f *memBookingRepo) RejectPending(id, note string, at time.Time) (bool, error) {
	return f.transition(id, models.BookingPending, func(b *models.Booking) {
		b.Status = models.BookingRejected
		b.RejectNote = note
		b.UpdatedAt = at
	})
}

func (f *memBookingRepo) FinishConfirmed(id string, at time.Time) (bool, error) {
	return f.transition(id, models.BookingConfirmed, func(b *models.Booking) {
		b.Status = models.BookingFinished
		finished := at
		b.FinishedAt = &finished
		b.UpdatedAt = at
	})
}

func (f *memBookingRepo) ExpirePending(id string, at time.Time) (bool, error) {
	return f.transition(id, models.BookingPending, func(b *models.Booking) {
		b.Status = models.BookingExpired
		b.UpdatedAt = at
	})
}

func (f *memBookingRepo) list(match func(models.Booking) bool) []models.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if match(*b) {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

func (f *memBookingRepo) ListByTutor(tutorID string) ([]models.Booking, error) {
	return f.list(func(b models.Booking) bool { return b.TutorID == tutorID }), nil
}

func (f *memBookingRepo) ListByStudent(studentID string) ([]models.Booking, error) {
	return f.list(func(b models.Booking) bool { return b.StudentID == studentID }), nil
}

func (f *memBookingRepo) ListInFlight() ([]models.Booking, error) {
	return f.list(func(b models.Booking) bool {
		return b.Status == models.BookingPending || b.Status == models.BookingConfirmed
	}), nil
}
